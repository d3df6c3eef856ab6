// Package mocks holds testify mocks of the query interfaces in the layout
// mockery writes them.
package mocks

import (
	"context"

	"admin-srv/internal/query"

	"github.com/stretchr/testify/mock"
)

// UseCase is a mock type for the query.UseCase type
type UseCase struct {
	mock.Mock
}

// Count provides a mock function with given fields: ctx, collection, opts
func (_m *UseCase) Count(ctx context.Context, collection string, opts query.Options) (int64, error) {
	ret := _m.Called(ctx, collection, opts)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, string, query.Options) int64); ok {
		r0 = rf(ctx, collection, opts)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, query.Options) error); ok {
		r1 = rf(ctx, collection, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchPage provides a mock function with given fields: ctx, collection, opts
func (_m *UseCase) FetchPage(ctx context.Context, collection string, opts query.Options) (query.Page, error) {
	ret := _m.Called(ctx, collection, opts)

	var r0 query.Page
	if rf, ok := ret.Get(0).(func(context.Context, string, query.Options) query.Page); ok {
		r0 = rf(ctx, collection, opts)
	} else {
		r0 = ret.Get(0).(query.Page)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, query.Options) error); ok {
		r1 = rf(ctx, collection, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Page provides a mock function with given fields: ctx, collection, opts
func (_m *UseCase) Page(ctx context.Context, collection string, opts query.Options) (query.PageOutput, error) {
	ret := _m.Called(ctx, collection, opts)

	var r0 query.PageOutput
	if rf, ok := ret.Get(0).(func(context.Context, string, query.Options) query.PageOutput); ok {
		r0 = rf(ctx, collection, opts)
	} else {
		r0 = ret.Get(0).(query.PageOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, query.Options) error); ok {
		r1 = rf(ctx, collection, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
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
