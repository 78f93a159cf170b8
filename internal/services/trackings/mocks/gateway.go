package mocks

import (
	context "context"

	models "github.com/BearBump/TrackLink/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// MockGateway is a mock type for the Gateway type
type MockGateway struct {
	mock.Mock
}

// ResolveReference provides a mock function with given fields: ctx, orderReference
func (_m *MockGateway) ResolveReference(ctx context.Context, orderReference string) (string, error) {
	ret := _m.Called(ctx, orderReference)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, orderReference)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, orderReference)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchProofOfDelivery provides a mock function with given fields: ctx, orderReference
func (_m *MockGateway) FetchProofOfDelivery(ctx context.Context, orderReference string) (*models.ProofOfDelivery, error) {
	ret := _m.Called(ctx, orderReference)

	var r0 *models.ProofOfDelivery
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.ProofOfDelivery); ok {
		r0 = rf(ctx, orderReference)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ProofOfDelivery)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, orderReference)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
