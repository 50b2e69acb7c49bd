// Package mocks holds testify mocks for the kv interfaces.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MockStore is a mock type for the kv.Store type
type MockStore struct {
	mock.Mock
}

// NewMockStore creates a new instance of MockStore. It also registers a cleanup function to assert the mocks expectations.
func NewMockStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStore {
	m := &MockStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Get provides a mock function for the type MockStore
func (_mock *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	ret := _mock.Called(ctx, key)

	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (string, bool, error)); ok {
		return returnFunc(ctx, key)
	}
	return ret.String(0), ret.Bool(1), ret.Error(2)
}

// Set provides a mock function for the type MockStore
func (_mock *MockStore) Set(ctx context.Context, key string, value string) error {
	ret := _mock.Called(ctx, key, value)

	if returnFunc, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		return returnFunc(ctx, key, value)
	}
	return ret.Error(0)
}

// Remove provides a mock function for the type MockStore
func (_mock *MockStore) Remove(ctx context.Context, keys ...string) error {
	ret := _mock.Called(ctx, keys)

	if returnFunc, ok := ret.Get(0).(func(context.Context, []string) error); ok {
		return returnFunc(ctx, keys)
	}
	return ret.Error(0)
}

// Close provides a mock function for the type MockStore
func (_mock *MockStore) Close() error {
	ret := _mock.Called()
	return ret.Error(0)
}
