package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HSouheill/client_desk/models"
)

type MockClientStore struct {
	mock.Mock
}

func (m *MockClientStore) Create(ctx context.Context, record *models.ClientRecord) error {
	args := m.Called(ctx, record)
	if args.Error(0) == nil && record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockClientStore) FindAll(ctx context.Context) ([]models.ClientRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClientRecord), args.Error(1)
}

func (m *MockClientStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ClientRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClientRecord), args.Error(1)
}

func (m *MockClientStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, from models.ClientStatus) (*models.ClientRecord, error) {
	args := m.Called(ctx, id, status, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClientRecord), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(user *models.User) (string, time.Time, error) {
	return "token-for-" + user.Email, time.Now().Add(time.Hour), nil
}

type event struct {
	name string
	data interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event
}

func (p *recordingPublisher) Publish(name string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event{name, data})
}

func timeIn(minutes int) time.Time {
	return time.Now().Add(time.Duration(minutes) * time.Minute)
}
