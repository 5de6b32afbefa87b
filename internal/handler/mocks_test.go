package handler_test

import (
	"context"

	"planner/internal/auth"
	"planner/internal/model"
	"planner/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, owner auth.Identity, in service.EventInput) (*model.Event, error) {
	args := m.Called(ctx, owner, in)
	if e := args.Get(0); e != nil {
		return e.(*model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) GetEventDetail(ctx context.Context, eventID uint, owner auth.Identity) (*service.EventDetail, error) {
	args := m.Called(ctx, eventID, owner)
	if d := args.Get(0); d != nil {
		return d.(*service.EventDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) SetEventStatus(ctx context.Context, eventID uint, owner auth.Identity, newStatus string) (*model.Event, error) {
	args := m.Called(ctx, eventID, owner, newStatus)
	if e := args.Get(0); e != nil {
		return e.(*model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, eventID uint, owner auth.Identity, in service.EventInput) (*model.Event, error) {
	args := m.Called(ctx, eventID, owner, in)
	if e := args.Get(0); e != nil {
		return e.(*model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, eventID uint, owner auth.Identity) error {
	args := m.Called(ctx, eventID, owner)
	return args.Error(0)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) AddTask(ctx context.Context, eventID uint, owner auth.Identity, in service.TaskInput) (*model.Task, error) {
	args := m.Called(ctx, eventID, owner, in)
	if t := args.Get(0); t != nil {
		return t.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) SetTaskStatus(ctx context.Context, taskID uint, owner auth.Identity, newStatus string) (*model.Task, error) {
	args := m.Called(ctx, taskID, owner, newStatus)
	if t := args.Get(0); t != nil {
		return t.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}
