// models/client.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientStatus is the review state of a submission.
type ClientStatus string

const (
	StatusPending  ClientStatus = "pending"
	StatusApproved ClientStatus = "approved"
	StatusRejected ClientStatus = "rejected"
)

// IsTerminal reports whether an admin has already decided on the record.
func (s ClientStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ServiceType distinguishes a fresh sale from an upsale to an existing client.
type ServiceType string

const (
	ServiceTypeNewSale ServiceType = "new sale"
	ServiceTypeUpsale  ServiceType = "upsale"
)

// Payment modes accepted on the submission form.
const (
	PaymentCompanyScanner = "companyscanner"
	PaymentPhonePay       = "phonepay"
	PaymentGateway        = "gateway"
	PaymentBankTransfer   = "banktransfer"
)

// Payment stages accepted on the submission form.
const (
	StageToken  = "token"
	StageFirst  = "first"
	StageSecond = "second"
	StageThird  = "third"
	StageFinal  = "final"
)

// DateLayout is the calendar-date format used by the form's date inputs.
const DateLayout = "2006-01-02"

// ClientRecord is one sale submitted by an employee for admin review
type ClientRecord struct {
	ID                  primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EmployeePaymentName string             `json:"employeePaymentName" bson:"employeePaymentName"`
	EmployeeName        string             `json:"employeeName" bson:"employeeName"`
	SubmittedBy         primitive.ObjectID `json:"submittedBy,omitempty" bson:"submittedBy,omitempty"`
	ClientName          string             `json:"clientName" bson:"clientName"`
	CompanyName         string             `json:"companyName" bson:"companyName"`
	MobileNumber        string             `json:"mobileNumber" bson:"mobileNumber"`
	Email               string             `json:"email" bson:"email"`
	GSTNumber           string             `json:"gstNumber,omitempty" bson:"gstNumber,omitempty"`
	PaymentReceivedDate time.Time          `json:"paymentReceivedDate" bson:"paymentReceivedDate"`
	Amount              float64            `json:"amount" bson:"amount"`
	ServiceName         string             `json:"serviceName" bson:"serviceName"`
	ServiceType         ServiceType        `json:"serviceType" bson:"serviceType"`
	PaymentType         string             `json:"paymentType" bson:"paymentType"`
	PaymentStage        string             `json:"paymentStage,omitempty" bson:"paymentStage,omitempty"`
	TenureStartDate     *time.Time         `json:"tenureStartDate,omitempty" bson:"tenureStartDate,omitempty"`
	TenureEndDate       *time.Time         `json:"tenureEndDate,omitempty" bson:"tenureEndDate,omitempty"`
	Status              ClientStatus       `json:"status" bson:"status"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateClientRequest is the submission form payload. Identity, status and
// timestamps are never taken from the client.
type CreateClientRequest struct {
	EmployeePaymentName string   `json:"employeePaymentName" validate:"required"`
	ClientName          string   `json:"clientName" validate:"required"`
	CompanyName         string   `json:"companyName" validate:"required"`
	MobileNumber        string   `json:"mobileNumber" validate:"required,mobile"`
	Email               string   `json:"email" validate:"omitempty,formemail"`
	GSTNumber           string   `json:"gstNumber"`
	PaymentReceivedDate string   `json:"paymentReceivedDate" validate:"required,datetime=2006-01-02"`
	Amount              *float64 `json:"amount" validate:"required,gte=0"`
	ServiceName         string   `json:"serviceName" validate:"required,servicepackage"`
	ServiceType         string   `json:"serviceType" validate:"required,oneof='new sale' upsale"`
	PaymentType         string   `json:"paymentType" validate:"required,oneof=companyscanner phonepay gateway banktransfer"`
	PaymentStage        string   `json:"paymentStage" validate:"omitempty,oneof=token first second third final"`
	TenureStartDate     string   `json:"tenureStartDate" validate:"omitempty,datetime=2006-01-02"`
	TenureEndDate       string   `json:"tenureEndDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateStatusRequest is the body of PATCH /api/clients/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
