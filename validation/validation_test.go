package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HSouheill/client_desk/models"
)

func validRequest() models.CreateClientRequest {
	amount := 1500.0
	return models.CreateClientRequest{
		EmployeePaymentName: "Ravi",
		ClientName:          "Asha Traders",
		CompanyName:         "Asha Traders Pvt Ltd",
		MobileNumber:        "9876543210",
		Email:               "owner@ashatraders.in",
		PaymentReceivedDate: "2024-03-01",
		Amount:              &amount,
		ServiceName:         "Our SEO Package",
		ServiceType:         "new sale",
		PaymentType:         models.PaymentGateway,
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(FieldErrors)
	require.True(t, ok, "expected FieldErrors, got %T", err)
	return fe
}

func TestValidateClientRequest(t *testing.T) {
	v := New()

	t.Run("accepts a complete submission", func(t *testing.T) {
		require.NoError(t, v.Validate(validRequest()))
	})

	t.Run("accepts an upsale with optional fields", func(t *testing.T) {
		req := validRequest()
		req.ServiceType = "upsale"
		req.PaymentStage = models.StageFinal
		req.TenureStartDate = "2024-03-01"
		req.TenureEndDate = "2024-03-01"
		req.Email = ""
		require.NoError(t, v.Validate(req))
	})

	t.Run("rejects a five digit mobile number", func(t *testing.T) {
		req := validRequest()
		req.MobileNumber = "12345"
		fe := fieldErrors(t, v.Validate(req))
		assert.Equal(t, "Please enter a valid 10-digit mobile number", fe["mobileNumber"])
	})

	t.Run("rejects letters in the mobile number", func(t *testing.T) {
		req := validRequest()
		req.MobileNumber = "98765abcde"
		fe := fieldErrors(t, v.Validate(req))
		assert.Contains(t, fe, "mobileNumber")
	})

	t.Run("reports every missing required field", func(t *testing.T) {
		fe := fieldErrors(t, v.Validate(models.CreateClientRequest{}))
		for _, f := range []string{
			"employeePaymentName", "clientName", "companyName", "mobileNumber",
			"paymentReceivedDate", "amount", "serviceName", "serviceType", "paymentType",
		} {
			assert.Contains(t, fe, f)
		}
		assert.Equal(t, "Employee name is required", fe["employeePaymentName"])
		assert.NotContains(t, fe, "email")
		assert.NotContains(t, fe, "gstNumber")
	})

	t.Run("zero amount is allowed, negative is not", func(t *testing.T) {
		req := validRequest()
		zero := 0.0
		req.Amount = &zero
		require.NoError(t, v.Validate(req))

		neg := -1.0
		req.Amount = &neg
		fe := fieldErrors(t, v.Validate(req))
		assert.Equal(t, "Amount cannot be negative", fe["amount"])
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		req := validRequest()
		req.Email = "owner@ashatraders"
		fe := fieldErrors(t, v.Validate(req))
		assert.Equal(t, "Please enter a valid email address", fe["email"])
	})

	t.Run("rejects unknown enumerations", func(t *testing.T) {
		req := validRequest()
		req.ServiceType = "renewal"
		req.PaymentType = "cash"
		req.PaymentStage = "fourth"
		req.ServiceName = "Platinum"
		fe := fieldErrors(t, v.Validate(req))
		assert.Contains(t, fe, "serviceType")
		assert.Contains(t, fe, "paymentType")
		assert.Contains(t, fe, "paymentStage")
		assert.Contains(t, fe, "serviceName")
	})

	t.Run("rejects a tenure ending before it starts", func(t *testing.T) {
		req := validRequest()
		req.TenureStartDate = "2024-03-10"
		req.TenureEndDate = "2024-03-09"
		fe := fieldErrors(t, v.Validate(req))
		assert.Equal(t, "End date must be after start date", fe["tenureEndDate"])
	})

	t.Run("end date alone is fine", func(t *testing.T) {
		req := validRequest()
		req.TenureEndDate = "2024-03-09"
		require.NoError(t, v.Validate(req))
	})

	t.Run("rejects a non calendar date", func(t *testing.T) {
		req := validRequest()
		req.PaymentReceivedDate = "01/03/2024"
		fe := fieldErrors(t, v.Validate(req))
		assert.Contains(t, fe, "paymentReceivedDate")
	})
}

func TestFieldErrorsString(t *testing.T) {
	fe := FieldErrors{"b": "second", "a": "first"}
	assert.Equal(t, "a: first; b: second", fe.Error())
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "widget is required", Message("widget", "required"))
	assert.Equal(t, "widget is invalid", Message("widget", "max"))
}

func TestPatterns(t *testing.T) {
	assert.True(t, IsValidMobile("0123456789"))
	assert.False(t, IsValidMobile("012345678"))
	assert.False(t, IsValidMobile("01234567890"))
	assert.True(t, IsValidEmail("First.Last+tag@Example.CO"))
	assert.False(t, IsValidEmail("first@last"))
}

func TestSchemaRulesMatchPatterns(t *testing.T) {
	v := New()

	for _, mobile := range []string{"0123456789", "012345678", "01234567890", "98765abcde"} {
		req := validRequest()
		req.MobileNumber = mobile
		err := v.Validate(req)
		assert.Equal(t, IsValidMobile(mobile), err == nil, "mobile %q", mobile)
	}

	for _, email := range []string{"First.Last+tag@Example.CO", "first@last", "no-at-sign.com"} {
		req := validRequest()
		req.Email = email
		err := v.Validate(req)
		assert.Equal(t, IsValidEmail(email), err == nil, "email %q", email)
	}
}
