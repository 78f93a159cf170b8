package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockProducer is a mock type for the Producer type
type MockProducer struct {
	mock.Mock
}

// Publish provides a mock function with given fields: ctx, topic, key, value
func (_m *MockProducer) Publish(ctx context.Context, topic string, key []byte, value []byte) error {
	ret := _m.Called(ctx, topic, key, value)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []byte, []byte) error); ok {
		r0 = rf(ctx, topic, key, value)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
