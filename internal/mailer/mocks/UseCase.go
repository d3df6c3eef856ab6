// Package mocks holds testify mocks of the mailer interfaces in the layout
// mockery writes them.
package mocks

import (
	"context"

	"admin-srv/internal/mailer"

	"github.com/stretchr/testify/mock"
)

// UseCase is a mock type for the mailer.UseCase type
type UseCase struct {
	mock.Mock
}

// SendResetPassword provides a mock function with given fields: ctx, input
func (_m *UseCase) SendResetPassword(ctx context.Context, input mailer.SendResetPasswordInput) error {
	ret := _m.Called(ctx, input)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, mailer.SendResetPasswordInput) error); ok {
		r0 = rf(ctx, input)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewUseCase creates a new instance of UseCase. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *UseCase {
	m := &UseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
