// Code generated by MockGen. DO NOT EDIT.
// Source: controller.go

// Package platform is a generated GoMock package.
package platform

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	agent "github.com/credentia/platform/pkg/client/agent"
	gomock "github.com/golang/mock/gomock"
)

// MockCommandGateway is a mock of commandGateway interface.
type MockCommandGateway struct {
	ctrl     *gomock.Controller
	recorder *MockCommandGatewayMockRecorder
}

// MockCommandGatewayMockRecorder is the mock recorder for MockCommandGateway.
type MockCommandGatewayMockRecorder struct {
	mock *MockCommandGateway
}

// NewMockCommandGateway creates a new mock instance.
func NewMockCommandGateway(ctrl *gomock.Controller) *MockCommandGateway {
	mock := &MockCommandGateway{ctrl: ctrl}
	mock.recorder = &MockCommandGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommandGateway) EXPECT() *MockCommandGatewayMockRecorder {
	return m.recorder
}

// AgentHealth mocks base method.
func (m *MockCommandGateway) AgentHealth(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AgentHealth", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AgentHealth indicates an expected call of AgentHealth.
func (mr *MockCommandGatewayMockRecorder) AgentHealth(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AgentHealth", reflect.TypeOf((*MockCommandGateway)(nil).AgentHealth), ctx, target)
}

// CreateConnectionInvitation mocks base method.
func (m *MockCommandGateway) CreateConnectionInvitation(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateConnectionInvitation", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateConnectionInvitation indicates an expected call of CreateConnectionInvitation.
func (mr *MockCommandGatewayMockRecorder) CreateConnectionInvitation(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateConnectionInvitation", reflect.TypeOf((*MockCommandGateway)(nil).CreateConnectionInvitation), ctx, target, payload)
}

// CreateCredentialDefinition mocks base method.
func (m *MockCommandGateway) CreateCredentialDefinition(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCredentialDefinition", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCredentialDefinition indicates an expected call of CreateCredentialDefinition.
func (mr *MockCommandGatewayMockRecorder) CreateCredentialDefinition(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCredentialDefinition", reflect.TypeOf((*MockCommandGateway)(nil).CreateCredentialDefinition), ctx, target, payload)
}

// CreateSchema mocks base method.
func (m *MockCommandGateway) CreateSchema(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSchema", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateSchema indicates an expected call of CreateSchema.
func (mr *MockCommandGatewayMockRecorder) CreateSchema(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSchema", reflect.TypeOf((*MockCommandGateway)(nil).CreateSchema), ctx, target, payload)
}

// CreateTenant mocks base method.
func (m *MockCommandGateway) CreateTenant(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTenant", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTenant indicates an expected call of CreateTenant.
func (mr *MockCommandGatewayMockRecorder) CreateTenant(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTenant", reflect.TypeOf((*MockCommandGateway)(nil).CreateTenant), ctx, target, payload)
}

// DeleteWallet mocks base method.
func (m *MockCommandGateway) DeleteWallet(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteWallet", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteWallet indicates an expected call of DeleteWallet.
func (mr *MockCommandGatewayMockRecorder) DeleteWallet(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteWallet", reflect.TypeOf((*MockCommandGateway)(nil).DeleteWallet), ctx, target)
}

// GetConnectionByID mocks base method.
func (m *MockCommandGateway) GetConnectionByID(ctx context.Context, target agent.Target, connectionID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConnectionByID", ctx, target, connectionID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetConnectionByID indicates an expected call of GetConnectionByID.
func (mr *MockCommandGatewayMockRecorder) GetConnectionByID(ctx, target, connectionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConnectionByID", reflect.TypeOf((*MockCommandGateway)(nil).GetConnectionByID), ctx, target, connectionID)
}

// GetConnections mocks base method.
func (m *MockCommandGateway) GetConnections(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConnections", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetConnections indicates an expected call of GetConnections.
func (mr *MockCommandGatewayMockRecorder) GetConnections(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConnections", reflect.TypeOf((*MockCommandGateway)(nil).GetConnections), ctx, target)
}

// GetCredentialDefinition mocks base method.
func (m *MockCommandGateway) GetCredentialDefinition(ctx context.Context, target agent.Target, credDefID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCredentialDefinition", ctx, target, credDefID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCredentialDefinition indicates an expected call of GetCredentialDefinition.
func (mr *MockCommandGatewayMockRecorder) GetCredentialDefinition(ctx, target, credDefID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCredentialDefinition", reflect.TypeOf((*MockCommandGateway)(nil).GetCredentialDefinition), ctx, target, credDefID)
}

// GetEndorsementTransaction mocks base method.
func (m *MockCommandGateway) GetEndorsementTransaction(ctx context.Context, transactionID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetEndorsementTransaction", ctx, transactionID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEndorsementTransaction indicates an expected call of GetEndorsementTransaction.
func (mr *MockCommandGatewayMockRecorder) GetEndorsementTransaction(ctx, transactionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEndorsementTransaction", reflect.TypeOf((*MockCommandGateway)(nil).GetEndorsementTransaction), ctx, transactionID)
}

// GetIssuedCredentials mocks base method.
func (m *MockCommandGateway) GetIssuedCredentials(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIssuedCredentials", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIssuedCredentials indicates an expected call of GetIssuedCredentials.
func (mr *MockCommandGatewayMockRecorder) GetIssuedCredentials(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIssuedCredentials", reflect.TypeOf((*MockCommandGateway)(nil).GetIssuedCredentials), ctx, target)
}

// GetProofFormData mocks base method.
func (m *MockCommandGateway) GetProofFormData(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProofFormData", ctx, target, proofID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProofFormData indicates an expected call of GetProofFormData.
func (mr *MockCommandGatewayMockRecorder) GetProofFormData(ctx, target, proofID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProofFormData", reflect.TypeOf((*MockCommandGateway)(nil).GetProofFormData), ctx, target, proofID)
}

// GetProofPresentationByID mocks base method.
func (m *MockCommandGateway) GetProofPresentationByID(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProofPresentationByID", ctx, target, proofID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProofPresentationByID indicates an expected call of GetProofPresentationByID.
func (mr *MockCommandGatewayMockRecorder) GetProofPresentationByID(ctx, target, proofID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProofPresentationByID", reflect.TypeOf((*MockCommandGateway)(nil).GetProofPresentationByID), ctx, target, proofID)
}

// GetProofPresentations mocks base method.
func (m *MockCommandGateway) GetProofPresentations(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProofPresentations", ctx, target)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProofPresentations indicates an expected call of GetProofPresentations.
func (mr *MockCommandGatewayMockRecorder) GetProofPresentations(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProofPresentations", reflect.TypeOf((*MockCommandGateway)(nil).GetProofPresentations), ctx, target)
}

// GetSchema mocks base method.
func (m *MockCommandGateway) GetSchema(ctx context.Context, target agent.Target, schemaID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSchema", ctx, target, schemaID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSchema indicates an expected call of GetSchema.
func (mr *MockCommandGatewayMockRecorder) GetSchema(ctx, target, schemaID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSchema", reflect.TypeOf((*MockCommandGateway)(nil).GetSchema), ctx, target, schemaID)
}

// ProvisionAgent mocks base method.
func (m *MockCommandGateway) ProvisionAgent(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProvisionAgent", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProvisionAgent indicates an expected call of ProvisionAgent.
func (mr *MockCommandGatewayMockRecorder) ProvisionAgent(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProvisionAgent", reflect.TypeOf((*MockCommandGateway)(nil).ProvisionAgent), ctx, target, payload)
}

// RequestCredDefEndorsement mocks base method.
func (m *MockCommandGateway) RequestCredDefEndorsement(ctx context.Context, target agent.Target, author string, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RequestCredDefEndorsement", ctx, target, author, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RequestCredDefEndorsement indicates an expected call of RequestCredDefEndorsement.
func (mr *MockCommandGatewayMockRecorder) RequestCredDefEndorsement(ctx, target, author, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RequestCredDefEndorsement", reflect.TypeOf((*MockCommandGateway)(nil).RequestCredDefEndorsement), ctx, target, author, payload)
}

// RequestSchemaEndorsement mocks base method.
func (m *MockCommandGateway) RequestSchemaEndorsement(ctx context.Context, target agent.Target, author string, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RequestSchemaEndorsement", ctx, target, author, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RequestSchemaEndorsement indicates an expected call of RequestSchemaEndorsement.
func (mr *MockCommandGatewayMockRecorder) RequestSchemaEndorsement(ctx, target, author, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RequestSchemaEndorsement", reflect.TypeOf((*MockCommandGateway)(nil).RequestSchemaEndorsement), ctx, target, author, payload)
}

// SendCredentialOffer mocks base method.
func (m *MockCommandGateway) SendCredentialOffer(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendCredentialOffer", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendCredentialOffer indicates an expected call of SendCredentialOffer.
func (mr *MockCommandGatewayMockRecorder) SendCredentialOffer(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendCredentialOffer", reflect.TypeOf((*MockCommandGateway)(nil).SendCredentialOffer), ctx, target, payload)
}

// SendOutOfBandCredentialOffer mocks base method.
func (m *MockCommandGateway) SendOutOfBandCredentialOffer(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendOutOfBandCredentialOffer", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendOutOfBandCredentialOffer indicates an expected call of SendOutOfBandCredentialOffer.
func (mr *MockCommandGatewayMockRecorder) SendOutOfBandCredentialOffer(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendOutOfBandCredentialOffer", reflect.TypeOf((*MockCommandGateway)(nil).SendOutOfBandCredentialOffer), ctx, target, payload)
}

// SendOutOfBandProofRequest mocks base method.
func (m *MockCommandGateway) SendOutOfBandProofRequest(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendOutOfBandProofRequest", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendOutOfBandProofRequest indicates an expected call of SendOutOfBandProofRequest.
func (mr *MockCommandGatewayMockRecorder) SendOutOfBandProofRequest(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendOutOfBandProofRequest", reflect.TypeOf((*MockCommandGateway)(nil).SendOutOfBandProofRequest), ctx, target, payload)
}

// SendProofRequest mocks base method.
func (m *MockCommandGateway) SendProofRequest(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendProofRequest", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendProofRequest indicates an expected call of SendProofRequest.
func (mr *MockCommandGatewayMockRecorder) SendProofRequest(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendProofRequest", reflect.TypeOf((*MockCommandGateway)(nil).SendProofRequest), ctx, target, payload)
}

// SignTransaction mocks base method.
func (m *MockCommandGateway) SignTransaction(ctx context.Context, target agent.Target, transactionID, signerDID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SignTransaction", ctx, target, transactionID, signerDID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SignTransaction indicates an expected call of SignTransaction.
func (mr *MockCommandGatewayMockRecorder) SignTransaction(ctx, target, transactionID, signerDID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SignTransaction", reflect.TypeOf((*MockCommandGateway)(nil).SignTransaction), ctx, target, transactionID, signerDID)
}

// SubmitTransaction mocks base method.
func (m *MockCommandGateway) SubmitTransaction(ctx context.Context, target agent.Target, transactionID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubmitTransaction", ctx, target, transactionID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubmitTransaction indicates an expected call of SubmitTransaction.
func (mr *MockCommandGatewayMockRecorder) SubmitTransaction(ctx, target, transactionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubmitTransaction", reflect.TypeOf((*MockCommandGateway)(nil).SubmitTransaction), ctx, target, transactionID)
}

// VerifyPresentation mocks base method.
func (m *MockCommandGateway) VerifyPresentation(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyPresentation", ctx, target, proofID)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyPresentation indicates an expected call of VerifyPresentation.
func (mr *MockCommandGatewayMockRecorder) VerifyPresentation(ctx, target, proofID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyPresentation", reflect.TypeOf((*MockCommandGateway)(nil).VerifyPresentation), ctx, target, proofID)
}
