package hardfork

import (
	"context"

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

// BlockHeaderSourceMock is a mock implementation of BlockHeaderSource.
type BlockHeaderSourceMock struct {
	mock.Mock
}

type BlockHeaderSourceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *BlockHeaderSourceMock) EXPECT() *BlockHeaderSourceMock_Expecter {
	return &BlockHeaderSourceMock_Expecter{mock: &_m.Mock}
}

// BlockTimestamp provides a mock function with given fields: ctx, height
func (_m *BlockHeaderSourceMock) BlockTimestamp(ctx context.Context, height uint64) (int64, error) {
	ret := _m.Called(ctx, height)

	if len(ret) == 0 {
		panic("no return value specified for BlockTimestamp")
	}

	return ret.Get(0).(int64), ret.Error(1)
}

// BlockHeaderSourceMock_BlockTimestamp_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BlockTimestamp'
type BlockHeaderSourceMock_BlockTimestamp_Call struct {
	*mock.Call
}

// BlockTimestamp is a helper method to define mock.On call
func (_e *BlockHeaderSourceMock_Expecter) BlockTimestamp(ctx interface{}, height interface{}) *BlockHeaderSourceMock_BlockTimestamp_Call {
	return &BlockHeaderSourceMock_BlockTimestamp_Call{Call: _e.mock.On("BlockTimestamp", ctx, height)}
}

func (_c *BlockHeaderSourceMock_BlockTimestamp_Call) Return(_a0 int64, _a1 error) *BlockHeaderSourceMock_BlockTimestamp_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewBlockHeaderSourceMock creates a new instance of BlockHeaderSourceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewBlockHeaderSourceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlockHeaderSourceMock {
	m := &BlockHeaderSourceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
