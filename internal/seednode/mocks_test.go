package seednode

import (
	"context"

	"github.com/gabapcia/moneroscan/internal/probe"
	"github.com/gabapcia/moneroscan/internal/source"

	mock "github.com/stretchr/testify/mock"
)

// FetcherMock is a mock implementation of source.Fetcher.
type FetcherMock struct {
	mock.Mock
}

type FetcherMock_Expecter struct {
	mock *mock.Mock
}

func (_m *FetcherMock) EXPECT() *FetcherMock_Expecter {
	return &FetcherMock_Expecter{mock: &_m.Mock}
}

// Fetch provides a mock function with given fields: ctx, branch, path
func (_m *FetcherMock) Fetch(ctx context.Context, branch string, path string) (source.Document, error) {
	ret := _m.Called(ctx, branch, path)

	if len(ret) == 0 {
		panic("no return value specified for Fetch")
	}

	return ret.Get(0).(source.Document), ret.Error(1)
}

// FetcherMock_Fetch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Fetch'
type FetcherMock_Fetch_Call struct {
	*mock.Call
}

// Fetch is a helper method to define mock.On call
func (_e *FetcherMock_Expecter) Fetch(ctx interface{}, branch interface{}, path interface{}) *FetcherMock_Fetch_Call {
	return &FetcherMock_Fetch_Call{Call: _e.mock.On("Fetch", ctx, branch, path)}
}

func (_c *FetcherMock_Fetch_Call) Return(_a0 source.Document, _a1 error) *FetcherMock_Fetch_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewFetcherMock creates a new instance of FetcherMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewFetcherMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *FetcherMock {
	m := &FetcherMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// ProberMock is a mock implementation of probe.Prober.
type ProberMock struct {
	mock.Mock
}

type ProberMock_Expecter struct {
	mock *mock.Mock
}

func (_m *ProberMock) EXPECT() *ProberMock_Expecter {
	return &ProberMock_Expecter{mock: &_m.Mock}
}

// Probe provides a mock function with given fields: ctx, target
func (_m *ProberMock) Probe(ctx context.Context, target probe.Target) probe.Result {
	ret := _m.Called(ctx, target)

	if len(ret) == 0 {
		panic("no return value specified for Probe")
	}

	return ret.Get(0).(probe.Result)
}

// ProberMock_Probe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Probe'
type ProberMock_Probe_Call struct {
	*mock.Call
}

// Probe is a helper method to define mock.On call
func (_e *ProberMock_Expecter) Probe(ctx interface{}, target interface{}) *ProberMock_Probe_Call {
	return &ProberMock_Probe_Call{Call: _e.mock.On("Probe", ctx, target)}
}

func (_c *ProberMock_Probe_Call) Return(_a0 probe.Result) *ProberMock_Probe_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewProberMock creates a new instance of ProberMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewProberMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProberMock {
	m := &ProberMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
