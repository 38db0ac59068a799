package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type BookingCounterMock struct {
	mock.Mock
}

func NewBookingCounterMock() *BookingCounterMock {
	return &BookingCounterMock{}
}

func (m *BookingCounterMock) Get(ctx context.Context, eventID string) (int64, bool, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *BookingCounterMock) Set(ctx context.Context, eventID string, count int64) error {
	args := m.Called(ctx, eventID, count)
	return args.Error(0)
}

func (m *BookingCounterMock) Incr(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
