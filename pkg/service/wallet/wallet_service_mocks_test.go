// Code generated by MockGen. DO NOT EDIT.
// Source: wallet_service.go

// Package wallet is a generated GoMock package.
package wallet

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	agent "github.com/credentia/platform/pkg/client/agent"
	gomock "github.com/golang/mock/gomock"
)

// MockAgentClient is a mock of agentClient interface.
type MockAgentClient struct {
	ctrl     *gomock.Controller
	recorder *MockAgentClientMockRecorder
}

// MockAgentClientMockRecorder is the mock recorder for MockAgentClient.
type MockAgentClientMockRecorder struct {
	mock *MockAgentClient
}

// NewMockAgentClient creates a new mock instance.
func NewMockAgentClient(ctrl *gomock.Controller) *MockAgentClient {
	mock := &MockAgentClient{ctrl: ctrl}
	mock.recorder = &MockAgentClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAgentClient) EXPECT() *MockAgentClientMockRecorder {
	return m.recorder
}

// CreateTenant mocks base method.
func (m *MockAgentClient) CreateTenant(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTenant", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTenant indicates an expected call of CreateTenant.
func (mr *MockAgentClientMockRecorder) CreateTenant(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTenant", reflect.TypeOf((*MockAgentClient)(nil).CreateTenant), ctx, target, payload)
}

// DeleteWallet mocks base method.
func (m *MockAgentClient) DeleteWallet(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteWallet", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteWallet indicates an expected call of DeleteWallet.
func (mr *MockAgentClientMockRecorder) DeleteWallet(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteWallet", reflect.TypeOf((*MockAgentClient)(nil).DeleteWallet), ctx, target)
}

// Health mocks base method.
func (m *MockAgentClient) Health(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Health", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Health indicates an expected call of Health.
func (mr *MockAgentClientMockRecorder) Health(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Health", reflect.TypeOf((*MockAgentClient)(nil).Health), ctx, target)
}

// ProvisionWallet mocks base method.
func (m *MockAgentClient) ProvisionWallet(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProvisionWallet", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProvisionWallet indicates an expected call of ProvisionWallet.
func (mr *MockAgentClientMockRecorder) ProvisionWallet(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProvisionWallet", reflect.TypeOf((*MockAgentClient)(nil).ProvisionWallet), ctx, target, payload)
}
