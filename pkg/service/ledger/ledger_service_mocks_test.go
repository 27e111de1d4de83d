// Code generated by MockGen. DO NOT EDIT.
// Source: ledger_service.go

// Package ledger is a generated GoMock package.
package ledger

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

// CreateCredentialDefinition mocks base method.
func (m *MockAgentClient) CreateCredentialDefinition(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCredentialDefinition", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCredentialDefinition indicates an expected call of CreateCredentialDefinition.
func (mr *MockAgentClientMockRecorder) CreateCredentialDefinition(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCredentialDefinition", reflect.TypeOf((*MockAgentClient)(nil).CreateCredentialDefinition), ctx, target, payload)
}

// CreateSchema mocks base method.
func (m *MockAgentClient) CreateSchema(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSchema", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateSchema indicates an expected call of CreateSchema.
func (mr *MockAgentClientMockRecorder) CreateSchema(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSchema", reflect.TypeOf((*MockAgentClient)(nil).CreateSchema), ctx, target, payload)
}

// GetCredentialDefinition mocks base method.
func (m *MockAgentClient) GetCredentialDefinition(ctx context.Context, target agent.Target, credDefID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCredentialDefinition", ctx, target, credDefID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCredentialDefinition indicates an expected call of GetCredentialDefinition.
func (mr *MockAgentClientMockRecorder) GetCredentialDefinition(ctx, target, credDefID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCredentialDefinition", reflect.TypeOf((*MockAgentClient)(nil).GetCredentialDefinition), ctx, target, credDefID)
}

// GetSchema mocks base method.
func (m *MockAgentClient) GetSchema(ctx context.Context, target agent.Target, schemaID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSchema", ctx, target, schemaID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSchema indicates an expected call of GetSchema.
func (mr *MockAgentClientMockRecorder) GetSchema(ctx, target, schemaID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSchema", reflect.TypeOf((*MockAgentClient)(nil).GetSchema), ctx, target, schemaID)
}
