package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HSouheill/client_desk/dashboard"
	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/repositories"
	"github.com/HSouheill/client_desk/validation"
)

func validRequest() models.CreateClientRequest {
	amount := 25000.0
	return models.CreateClientRequest{
		EmployeePaymentName: "Ravi Kumar",
		ClientName:          "Meera Shah",
		CompanyName:         "Shah Exports",
		MobileNumber:        "9876543210",
		Email:               "meera@shahexports.in",
		PaymentReceivedDate: "2025-03-10",
		Amount:              &amount,
		ServiceName:         "Our SEO Package",
		ServiceType:         "new sale",
		PaymentType:         "gateway",
		PaymentStage:        "token",
		TenureStartDate:     "2025-03-10",
		TenureEndDate:       "2026-03-09",
	}
}

func newClientService(store ClientStore, opts ClientServiceOptions) *ClientService {
	return NewClientService(store, validation.New(), opts)
}

func TestClientServiceCreate(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	employee := &models.User{ID: primitive.NewObjectID(), Name: "Ravi", Role: models.RoleEmployee}

	t.Run("stores a pending record", func(t *testing.T) {
		store := new(MockClientStore)
		store.On("Create", mock.Anything, mock.AnythingOfType("*models.ClientRecord")).Return(nil)
		pub := &recordingPublisher{}
		svc := newClientService(store, ClientServiceOptions{Location: ist, Publisher: pub})

		req := validRequest()
		req.ClientName = "  Meera Shah  "
		rec, err := svc.Create(context.Background(), req, employee)
		require.NoError(t, err)

		assert.False(t, rec.ID.IsZero())
		assert.Equal(t, models.StatusPending, rec.Status)
		assert.Equal(t, "Meera Shah", rec.ClientName)
		assert.Equal(t, "Ravi", rec.EmployeeName)
		assert.Equal(t, employee.ID, rec.SubmittedBy)
		assert.Equal(t, 25000.0, rec.Amount)
		assert.Equal(t, models.ServiceTypeNewSale, rec.ServiceType)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, ist), rec.PaymentReceivedDate)
		require.NotNil(t, rec.TenureEndDate)
		assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, ist), *rec.TenureEndDate)
		assert.False(t, rec.CreatedAt.IsZero())
		assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)

		require.Len(t, pub.events, 1)
		assert.Equal(t, EventClientCreated, pub.events[0].name)
		store.AssertExpectations(t)
	})

	t.Run("rejects a short mobile number", func(t *testing.T) {
		store := new(MockClientStore)
		svc := newClientService(store, ClientServiceOptions{})

		req := validRequest()
		req.MobileNumber = "12345"
		_, err := svc.Create(context.Background(), req, employee)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Please enter a valid 10-digit mobile number", verr.Fields["mobileNumber"])
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		svc := newClientService(new(MockClientStore), ClientServiceOptions{})

		req := validRequest()
		req.Email = "not-an-email"
		req.ClientName = "   "
		req.TenureEndDate = "2025-01-01"
		_, err := svc.Create(context.Background(), req, employee)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "email")
		assert.Contains(t, verr.Fields, "clientName")
		assert.Equal(t, "End date must be after start date", verr.Fields["tenureEndDate"])
	})

	t.Run("store failure is returned", func(t *testing.T) {
		store := new(MockClientStore)
		store.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
		pub := &recordingPublisher{}
		svc := newClientService(store, ClientServiceOptions{Publisher: pub})

		_, err := svc.Create(context.Background(), validRequest(), employee)
		assert.EqualError(t, err, "connection reset")
		assert.Empty(t, pub.events)
	})
}

func TestClientServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("last write wins by default", func(t *testing.T) {
		store := new(MockClientStore)
		updated := &models.ClientRecord{ID: id, Status: models.StatusRejected}
		store.On("UpdateStatus", mock.Anything, id, models.StatusRejected, models.ClientStatus("")).Return(updated, nil)
		pub := &recordingPublisher{}
		svc := newClientService(store, ClientServiceOptions{Publisher: pub})

		rec, err := svc.UpdateStatus(ctx, id.Hex(), "rejected")
		require.NoError(t, err)
		assert.Equal(t, models.StatusRejected, rec.Status)
		require.Len(t, pub.events, 1)
		assert.Equal(t, EventClientStatusUpdated, pub.events[0].name)
	})

	t.Run("strict transitions require pending", func(t *testing.T) {
		store := new(MockClientStore)
		store.On("UpdateStatus", mock.Anything, id, models.StatusApproved, models.StatusPending).
			Return(nil, repositories.ErrStatusConflict)
		svc := newClientService(store, ClientServiceOptions{StrictTransitions: true})

		_, err := svc.UpdateStatus(ctx, id.Hex(), "approved")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown id", func(t *testing.T) {
		store := new(MockClientStore)
		store.On("UpdateStatus", mock.Anything, id, models.StatusApproved, models.ClientStatus("")).
			Return(nil, repositories.ErrNotFound)
		svc := newClientService(store, ClientServiceOptions{})

		_, err := svc.UpdateStatus(ctx, id.Hex(), "approved")
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	for _, status := range []string{"pending", "done", ""} {
		t.Run("rejects status "+status, func(t *testing.T) {
			store := new(MockClientStore)
			svc := newClientService(store, ClientServiceOptions{})

			_, err := svc.UpdateStatus(ctx, id.Hex(), status)
			assert.ErrorIs(t, err, ErrInvalidStatus)
			store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("malformed id", func(t *testing.T) {
		svc := newClientService(new(MockClientStore), ClientServiceOptions{})
		_, err := svc.UpdateStatus(ctx, "xyz", "approved")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestClientServiceGetAndList(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()
	store := new(MockClientStore)
	store.On("FindByID", mock.Anything, id).Return(nil, repositories.ErrNotFound)
	store.On("FindAll", mock.Anything).Return([]models.ClientRecord{{ID: id}}, nil)
	svc := newClientService(store, ClientServiceOptions{})

	_, err := svc.Get(ctx, id.Hex())
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidID)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestClientServiceDashboard(t *testing.T) {
	now := time.Now()
	store := new(MockClientStore)
	store.On("FindAll", mock.Anything).Return([]models.ClientRecord{
		{ID: primitive.NewObjectID(), Amount: 100, Status: models.StatusPending, CreatedAt: now},
		{ID: primitive.NewObjectID(), Amount: 200, Status: models.StatusApproved, CreatedAt: now},
		{ID: primitive.NewObjectID(), Amount: 300, Status: models.StatusRejected, CreatedAt: now},
	}, nil)
	svc := newClientService(store, ClientServiceOptions{})

	fc, err := dashboard.ParseCriteria("approved", "", "", "", "", nil)
	require.NoError(t, err)
	view, err := svc.Dashboard(context.Background(), fc)
	require.NoError(t, err)

	assert.Len(t, view.Records, 1)
	assert.Equal(t, "200", view.FilteredAmount.String())
	assert.Equal(t, "600", view.TotalAmount.String())
	assert.Equal(t, dashboard.Stats{Total: 3, Pending: 1, Approved: 1, Rejected: 1}, view.Stats)
}
