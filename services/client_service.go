package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HSouheill/client_desk/dashboard"
	"github.com/HSouheill/client_desk/logger"
	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/repositories"
	"github.com/HSouheill/client_desk/telemetry"
	"github.com/HSouheill/client_desk/validation"
)

// Events published to connected admin dashboards.
const (
	EventClientCreated       = "client_created"
	EventClientStatusUpdated = "client_status_updated"
)

// ClientStore persists client records.
type ClientStore interface {
	Create(ctx context.Context, record *models.ClientRecord) error
	FindAll(ctx context.Context) ([]models.ClientRecord, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ClientRecord, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status, from models.ClientStatus) (*models.ClientRecord, error)
}

// Publisher fans events out to live listeners.
type Publisher interface {
	Publish(event string, data interface{})
}

// ClientServiceOptions tunes ClientService.
type ClientServiceOptions struct {
	// StrictTransitions only lets pending records be approved or rejected.
	StrictTransitions bool
	// Location decides which calendar day a submitted date falls on.
	Location  *time.Location
	Publisher Publisher
}

// ClientService implements create, list and review of client records.
type ClientService struct {
	store     ClientStore
	validator *validation.Validator
	publisher Publisher
	strict    bool
	loc       *time.Location
	now       func() time.Time
}

func NewClientService(store ClientStore, v *validation.Validator, opts ClientServiceOptions) *ClientService {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &ClientService{
		store:     store,
		validator: v,
		publisher: opts.Publisher,
		strict:    opts.StrictTransitions,
		loc:       loc,
		now:       time.Now,
	}
}

// Location is the timezone used for calendar dates.
func (s *ClientService) Location() *time.Location {
	return s.loc
}

// Create validates the submission and stores it as pending. The employee name
// and submitter come from the signed-in account, never from the payload.
func (s *ClientService) Create(ctx context.Context, req models.CreateClientRequest, by *models.User) (*models.ClientRecord, error) {
	trimRequest(&req)

	if err := s.validator.Validate(req); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			return nil, &ValidationError{Fields: fields}
		}
		return nil, err
	}

	paid, err := time.ParseInLocation(models.DateLayout, req.PaymentReceivedDate, s.loc)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"paymentReceivedDate": validation.Message("paymentReceivedDate", "datetime")}}
	}

	now := s.now()
	record := &models.ClientRecord{
		EmployeePaymentName: req.EmployeePaymentName,
		ClientName:          req.ClientName,
		CompanyName:         req.CompanyName,
		MobileNumber:        req.MobileNumber,
		Email:               req.Email,
		GSTNumber:           req.GSTNumber,
		PaymentReceivedDate: paid,
		Amount:              *req.Amount,
		ServiceName:         req.ServiceName,
		ServiceType:         models.ServiceType(req.ServiceType),
		PaymentType:         req.PaymentType,
		PaymentStage:        req.PaymentStage,
		TenureStartDate:     s.optionalDate(req.TenureStartDate),
		TenureEndDate:       s.optionalDate(req.TenureEndDate),
		Status:              models.StatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if by != nil {
		record.SubmittedBy = by.ID
		record.EmployeeName = by.Name
	}

	if err := s.store.Create(ctx, record); err != nil {
		return nil, err
	}

	telemetry.RecordClientSubmitted()
	logger.Component("clients").Info().
		Str("id", record.ID.Hex()).
		Str("employee", record.EmployeeName).
		Str("service", record.ServiceName).
		Msg("client record submitted")
	s.publish(EventClientCreated, record)

	return record, nil
}

// List returns all records, newest first.
func (s *ClientService) List(ctx context.Context) ([]models.ClientRecord, error) {
	return s.store.FindAll(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (*models.ClientRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	rec, err := s.store.FindByID(ctx, oid)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrClientNotFound
	}
	return rec, err
}

// UpdateStatus records an admin decision. Only approved and rejected are
// accepted. Without strict transitions the last write wins.
func (s *ClientService) UpdateStatus(ctx context.Context, id, status string) (*models.ClientRecord, error) {
	next := models.ClientStatus(strings.TrimSpace(status))
	if !next.IsTerminal() {
		return nil, ErrInvalidStatus
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var from models.ClientStatus
	if s.strict {
		from = models.StatusPending
	}

	rec, err := s.store.UpdateStatus(ctx, oid, next, from)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrClientNotFound
	case errors.Is(err, repositories.ErrStatusConflict):
		return nil, ErrInvalidTransition
	case err != nil:
		return nil, err
	}

	telemetry.RecordStatusUpdate(string(next))
	logger.Component("clients").Info().
		Str("id", id).
		Str("status", string(next)).
		Msg("client status updated")
	s.publish(EventClientStatusUpdated, rec)

	return rec, nil
}

// Dashboard loads every record and builds the filtered admin view.
func (s *ClientService) Dashboard(ctx context.Context, fc dashboard.FilterCriteria) (dashboard.View, error) {
	records, err := s.store.FindAll(ctx)
	if err != nil {
		return dashboard.View{}, err
	}
	if fc.Location == nil {
		fc.Location = s.loc
	}
	return dashboard.Build(records, fc), nil
}

func (s *ClientService) publish(event string, data interface{}) {
	if s.publisher != nil {
		s.publisher.Publish(event, data)
	}
}

func (s *ClientService) optionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation(models.DateLayout, value, s.loc)
	if err != nil {
		return nil
	}
	return &t
}

func trimRequest(req *models.CreateClientRequest) {
	for _, f := range []*string{
		&req.EmployeePaymentName,
		&req.ClientName,
		&req.CompanyName,
		&req.MobileNumber,
		&req.Email,
		&req.GSTNumber,
		&req.PaymentReceivedDate,
		&req.ServiceName,
		&req.ServiceType,
		&req.PaymentType,
		&req.PaymentStage,
		&req.TenureStartDate,
		&req.TenureEndDate,
	} {
		*f = strings.TrimSpace(*f)
	}
}
