package cli

import (
	"context"

	"github.com/gabapcia/moneroscan/internal/config"
	"github.com/gabapcia/moneroscan/internal/hardfork"
	"github.com/gabapcia/moneroscan/internal/network"
	"github.com/gabapcia/moneroscan/internal/probe"
	"github.com/gabapcia/moneroscan/internal/seednode"

	mock "github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// HardForkServiceMock is a mock implementation of hardfork.Service.
type HardForkServiceMock struct {
	mock.Mock
}

type HardForkServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *HardForkServiceMock) EXPECT() *HardForkServiceMock_Expecter {
	return &HardForkServiceMock_Expecter{mock: &_m.Mock}
}

// Run provides a mock function with given fields: ctx, req
func (_m *HardForkServiceMock) Run(ctx context.Context, req hardfork.Request) (hardfork.Records, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	return ret.Get(0).(hardfork.Records), ret.Error(1)
}

// HardForkServiceMock_Run_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Run'
type HardForkServiceMock_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call
func (_e *HardForkServiceMock_Expecter) Run(ctx interface{}, req interface{}) *HardForkServiceMock_Run_Call {
	return &HardForkServiceMock_Run_Call{Call: _e.mock.On("Run", ctx, req)}
}

func (_c *HardForkServiceMock_Run_Call) Return(_a0 hardfork.Records, _a1 error) *HardForkServiceMock_Run_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewHardForkServiceMock creates a new instance of HardForkServiceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHardForkServiceMock(t testingT) *HardForkServiceMock {
	m := &HardForkServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// SeedNodeServiceMock is a mock implementation of seednode.Service.
type SeedNodeServiceMock struct {
	mock.Mock
}

type SeedNodeServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *SeedNodeServiceMock) EXPECT() *SeedNodeServiceMock_Expecter {
	return &SeedNodeServiceMock_Expecter{mock: &_m.Mock}
}

// Run provides a mock function with given fields: ctx, req
func (_m *SeedNodeServiceMock) Run(ctx context.Context, req seednode.Request) (seednode.Groups, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	return ret.Get(0).(seednode.Groups), ret.Error(1)
}

// SeedNodeServiceMock_Run_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Run'
type SeedNodeServiceMock_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call
func (_e *SeedNodeServiceMock_Expecter) Run(ctx interface{}, req interface{}) *SeedNodeServiceMock_Run_Call {
	return &SeedNodeServiceMock_Run_Call{Call: _e.mock.On("Run", ctx, req)}
}

func (_c *SeedNodeServiceMock_Run_Call) Return(_a0 seednode.Groups, _a1 error) *SeedNodeServiceMock_Run_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewSeedNodeServiceMock creates a new instance of SeedNodeServiceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSeedNodeServiceMock(t testingT) *SeedNodeServiceMock {
	m := &SeedNodeServiceMock{}
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
func NewProberMock(t testingT) *ProberMock {
	m := &ProberMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// stubBuilder hands out preset services and remembers the configuration
// each was built with.
type stubBuilder struct {
	hardForks hardfork.Service
	seedNodes seednode.Service
	prober    probe.Prober

	cfg     config.Config
	network network.Network
}

func (b *stubBuilder) HardForks(cfg config.Config, n network.Network) hardfork.Service {
	b.cfg, b.network = cfg, n
	return b.hardForks
}

func (b *stubBuilder) SeedNodes(cfg config.Config) seednode.Service {
	b.cfg = cfg
	return b.seedNodes
}

func (b *stubBuilder) Prober(cfg config.Config) probe.Prober {
	b.cfg = cfg
	return b.prober
}
