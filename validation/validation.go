// Package validation holds the declarative rules for request payloads and
// turns validator failures into field-level messages.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HSouheill/client_desk/models"
)

var (
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern  = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
)

// messages maps json field -> validator tag -> message shown next to the
// form field.
var messages = map[string]map[string]string{
	"employeePaymentName": {"required": "Employee name is required"},
	"clientName":          {"required": "Client name is required"},
	"companyName":         {"required": "Company name is required"},
	"mobileNumber": {
		"required": "Mobile number is required",
		"mobile":   "Please enter a valid 10-digit mobile number",
	},
	"email": {
		"required":  "Email is required",
		"email":     "Please enter a valid email address",
		"formemail": "Please enter a valid email address",
	},
	"paymentReceivedDate": {
		"required": "Payment received date is required",
		"datetime": "Payment received date must be a valid date (YYYY-MM-DD)",
	},
	"amount": {
		"required": "Amount is required",
		"gte":      "Amount cannot be negative",
	},
	"serviceName": {
		"required":       "Service package is required",
		"servicepackage": "Please select a valid service package",
	},
	"serviceType": {
		"required": "Service type is required",
		"oneof":    "Service type must be 'new sale' or 'upsale'",
	},
	"paymentType": {
		"required": "Payment type is required",
		"oneof":    "Please select a valid payment mode",
	},
	"paymentStage":    {"oneof": "Please select a valid payment stage"},
	"tenureStartDate": {"datetime": "Tenure start date must be a valid date (YYYY-MM-DD)"},
	"tenureEndDate": {
		"datetime":    "Tenure end date must be a valid date (YYYY-MM-DD)",
		"tenureorder": "End date must be after start date",
	},
	"password":   {"required": "Password is required", "min": "Password must be at least 8 characters"},
	"name":       {"required": "Name is required"},
	"role":       {"oneof": "Role must be admin or employee"},
	"status":     {"oneof": "Status must be approved or rejected"},
	"templateId": {"required": "Template is required"},
	"to":         {"required": "Recipient is required", "email": "Recipient must be a valid email address"},
	"subject":    {"required": "Subject is required"},
	"html":       {"required": "Body is required"},
	"clientId":   {"mongoid": "Client id is invalid"},
}

// FieldErrors maps json field names to a human readable message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator with the custom rules used by the
// submission form. It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with all custom tags registered.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return IsValidMobile(fl.Field().String())
	})
	_ = v.RegisterValidation("formemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("servicepackage", func(fl validator.FieldLevel) bool {
		return models.IsServicePackageName(fl.Field().String())
	})
	_ = v.RegisterValidation("mongoid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})

	v.RegisterStructValidation(tenureOrder, models.CreateClientRequest{})

	return &Validator{validate: v}
}

// Validate runs the struct rules and returns FieldErrors on failure.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = Message(field, fe.Tag())
	}
	return out
}

// Message resolves the user-facing text for a failed rule.
func Message(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	if tag == "required" {
		return field + " is required"
	}
	return field + " is invalid"
}

// IsValidMobile reports whether s is exactly ten digits.
func IsValidMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// IsValidEmail applies the submission form's address pattern.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// tenureOrder rejects a tenure that ends before it starts. Unparseable
// dates are left to the datetime rule.
func tenureOrder(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.CreateClientRequest)
	if req.TenureStartDate == "" || req.TenureEndDate == "" {
		return
	}

	start, err := time.Parse(models.DateLayout, req.TenureStartDate)
	if err != nil {
		return
	}
	end, err := time.Parse(models.DateLayout, req.TenureEndDate)
	if err != nil {
		return
	}

	if end.Before(start) {
		sl.ReportError(req.TenureEndDate, "tenureEndDate", "TenureEndDate", "tenureorder", "")
	}
}
