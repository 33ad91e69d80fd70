package batch_test

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/staked-chain/txvalidation/ids"
	"github.com/staked-chain/txvalidation/validation"
)

// MockResolver is a hand-written gomock-style fake for batch.Resolver,
// shaped the way `mockgen` would generate it, since code generation can't
// run as part of this build.
type MockResolver struct {
	ctrl     *gomock.Controller
	recorder *MockResolverRecorder
}

// MockResolverRecorder records expected calls on MockResolver.
type MockResolverRecorder struct {
	mock *MockResolver
}

// NewMockResolver returns a new mock bound to ctrl.
func NewMockResolver(ctrl *gomock.Controller) *MockResolver {
	m := &MockResolver{ctrl: ctrl}
	m.recorder = &MockResolverRecorder{mock: m}
	return m
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResolver) EXPECT() *MockResolverRecorder { return m.recorder }

// Resolve mocks base method.
func (m *MockResolver) Resolve(ctx context.Context, pointer ids.TxoPointer) (validation.ResolvedInput, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resolve", ctx, pointer)
	ret0, _ := ret[0].(validation.ResolvedInput)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Resolve indicates an expected call of Resolve.
func (mr *MockResolverRecorder) Resolve(ctx, pointer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resolve", reflect.TypeOf((*MockResolver)(nil).Resolve), ctx, pointer)
}
