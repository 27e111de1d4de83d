// Code generated by MockGen. DO NOT EDIT.
// Source: exchange_service.go

// Package exchange is a generated GoMock package.
package exchange

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

// CreateCredentialOffer mocks base method.
func (m *MockAgentClient) CreateCredentialOffer(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCredentialOffer", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCredentialOffer indicates an expected call of CreateCredentialOffer.
func (mr *MockAgentClientMockRecorder) CreateCredentialOffer(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCredentialOffer", reflect.TypeOf((*MockAgentClient)(nil).CreateCredentialOffer), ctx, target, payload)
}

// CreateLegacyInvitation mocks base method.
func (m *MockAgentClient) CreateLegacyInvitation(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateLegacyInvitation", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateLegacyInvitation indicates an expected call of CreateLegacyInvitation.
func (mr *MockAgentClientMockRecorder) CreateLegacyInvitation(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateLegacyInvitation", reflect.TypeOf((*MockAgentClient)(nil).CreateLegacyInvitation), ctx, target, payload)
}

// CreateOutOfBandCredentialOffer mocks base method.
func (m *MockAgentClient) CreateOutOfBandCredentialOffer(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOutOfBandCredentialOffer", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOutOfBandCredentialOffer indicates an expected call of CreateOutOfBandCredentialOffer.
func (mr *MockAgentClientMockRecorder) CreateOutOfBandCredentialOffer(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOutOfBandCredentialOffer", reflect.TypeOf((*MockAgentClient)(nil).CreateOutOfBandCredentialOffer), ctx, target, payload)
}

// CreateOutOfBandProofRequest mocks base method.
func (m *MockAgentClient) CreateOutOfBandProofRequest(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOutOfBandProofRequest", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOutOfBandProofRequest indicates an expected call of CreateOutOfBandProofRequest.
func (mr *MockAgentClientMockRecorder) CreateOutOfBandProofRequest(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOutOfBandProofRequest", reflect.TypeOf((*MockAgentClient)(nil).CreateOutOfBandProofRequest), ctx, target, payload)
}

// GetConnectionByID mocks base method.
func (m *MockAgentClient) GetConnectionByID(ctx context.Context, target agent.Target, connectionID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConnectionByID", ctx, target, connectionID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetConnectionByID indicates an expected call of GetConnectionByID.
func (mr *MockAgentClientMockRecorder) GetConnectionByID(ctx, target, connectionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConnectionByID", reflect.TypeOf((*MockAgentClient)(nil).GetConnectionByID), ctx, target, connectionID)
}

// GetConnections mocks base method.
func (m *MockAgentClient) GetConnections(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConnections", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetConnections indicates an expected call of GetConnections.
func (mr *MockAgentClientMockRecorder) GetConnections(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConnections", reflect.TypeOf((*MockAgentClient)(nil).GetConnections), ctx, target)
}

// GetIssuedCredentials mocks base method.
func (m *MockAgentClient) GetIssuedCredentials(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIssuedCredentials", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIssuedCredentials indicates an expected call of GetIssuedCredentials.
func (mr *MockAgentClientMockRecorder) GetIssuedCredentials(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIssuedCredentials", reflect.TypeOf((*MockAgentClient)(nil).GetIssuedCredentials), ctx, target)
}

// GetProofFormData mocks base method.
func (m *MockAgentClient) GetProofFormData(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProofFormData", ctx, target, proofID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProofFormData indicates an expected call of GetProofFormData.
func (mr *MockAgentClientMockRecorder) GetProofFormData(ctx, target, proofID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProofFormData", reflect.TypeOf((*MockAgentClient)(nil).GetProofFormData), ctx, target, proofID)
}

// GetProofPresentationByID mocks base method.
func (m *MockAgentClient) GetProofPresentationByID(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProofPresentationByID", ctx, target, proofID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProofPresentationByID indicates an expected call of GetProofPresentationByID.
func (mr *MockAgentClientMockRecorder) GetProofPresentationByID(ctx, target, proofID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProofPresentationByID", reflect.TypeOf((*MockAgentClient)(nil).GetProofPresentationByID), ctx, target, proofID)
}

// GetProofPresentations mocks base method.
func (m *MockAgentClient) GetProofPresentations(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProofPresentations", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProofPresentations indicates an expected call of GetProofPresentations.
func (mr *MockAgentClientMockRecorder) GetProofPresentations(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProofPresentations", reflect.TypeOf((*MockAgentClient)(nil).GetProofPresentations), ctx, target)
}

// SendProofRequest mocks base method.
func (m *MockAgentClient) SendProofRequest(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendProofRequest", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendProofRequest indicates an expected call of SendProofRequest.
func (mr *MockAgentClientMockRecorder) SendProofRequest(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendProofRequest", reflect.TypeOf((*MockAgentClient)(nil).SendProofRequest), ctx, target, payload)
}

// VerifyPresentation mocks base method.
func (m *MockAgentClient) VerifyPresentation(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyPresentation", ctx, target, proofID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyPresentation indicates an expected call of VerifyPresentation.
func (mr *MockAgentClientMockRecorder) VerifyPresentation(ctx, target, proofID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyPresentation", reflect.TypeOf((*MockAgentClient)(nil).VerifyPresentation), ctx, target, proofID)
}
