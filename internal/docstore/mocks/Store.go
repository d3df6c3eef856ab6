// Package mocks holds testify mocks of the docstore interfaces in the layout
// mockery writes them.
package mocks

import (
	"context"

	"admin-srv/internal/docstore"

	"github.com/stretchr/testify/mock"
)

// Store is a mock type for the docstore.Store type
type Store struct {
	mock.Mock
}

// Count provides a mock function with given fields: ctx, q
func (_m *Store) Count(ctx context.Context, q docstore.Query) (int64, error) {
	ret := _m.Called(ctx, q)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, docstore.Query) int64); ok {
		r0 = rf(ctx, q)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, docstore.Query) error); ok {
		r1 = rf(ctx, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, collection, id
func (_m *Store) Delete(ctx context.Context, collection string, id string) error {
	ret := _m.Called(ctx, collection, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, collection, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Get provides a mock function with given fields: ctx, collection, id
func (_m *Store) Get(ctx context.Context, collection string, id string) (docstore.Document, error) {
	ret := _m.Called(ctx, collection, id)

	var r0 docstore.Document
	if rf, ok := ret.Get(0).(func(context.Context, string, string) docstore.Document); ok {
		r0 = rf(ctx, collection, id)
	} else {
		r0 = ret.Get(0).(docstore.Document)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, collection, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Ping provides a mock function with given fields: ctx
func (_m *Store) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Run provides a mock function with given fields: ctx, q
func (_m *Store) Run(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	ret := _m.Called(ctx, q)

	var r0 []docstore.Document
	if rf, ok := ret.Get(0).(func(context.Context, docstore.Query) []docstore.Document); ok {
		r0 = rf(ctx, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]docstore.Document)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, docstore.Query) error); ok {
		r1 = rf(ctx, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Set provides a mock function with given fields: ctx, collection, id, fields
func (_m *Store) Set(ctx context.Context, collection string, id string, fields map[string]any) error {
	ret := _m.Called(ctx, collection, id, fields)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, map[string]any) error); ok {
		r0 = rf(ctx, collection, id, fields)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Update provides a mock function with given fields: ctx, collection, id, fields
func (_m *Store) Update(ctx context.Context, collection string, id string, fields map[string]any) error {
	ret := _m.Called(ctx, collection, id, fields)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, map[string]any) error); ok {
		r0 = rf(ctx, collection, id, fields)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewStore creates a new instance of Store. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *Store {
	m := &Store{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
