// Code generated by MockGen. DO NOT EDIT.
// Source: endorsement_service.go

// Package endorsement is a generated GoMock package.
package endorsement

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	agent "github.com/credentia/platform/pkg/client/agent"
	gomock "github.com/golang/mock/gomock"
)

// MockTransactionStore is a mock of transactionStore interface.
type MockTransactionStore struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionStoreMockRecorder
}

// MockTransactionStoreMockRecorder is the mock recorder for MockTransactionStore.
type MockTransactionStoreMockRecorder struct {
	mock *MockTransactionStore
}

// NewMockTransactionStore creates a new mock instance.
func NewMockTransactionStore(ctrl *gomock.Controller) *MockTransactionStore {
	mock := &MockTransactionStore{ctrl: ctrl}
	mock.recorder = &MockTransactionStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionStore) EXPECT() *MockTransactionStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTransactionStore) Create(ctx context.Context, data *TransactionData) (*Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, data)
	ret0, _ := ret[0].(*Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockTransactionStoreMockRecorder) Create(ctx, data interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTransactionStore)(nil).Create), ctx, data)
}

// Get mocks base method.
func (m *MockTransactionStore) Get(ctx context.Context, txID TxID) (*Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, txID)
	ret0, _ := ret[0].(*Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockTransactionStoreMockRecorder) Get(ctx, txID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockTransactionStore)(nil).Get), ctx, txID)
}

// Update mocks base method.
func (m *MockTransactionStore) Update(ctx context.Context, tx *Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, tx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockTransactionStoreMockRecorder) Update(ctx, tx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockTransactionStore)(nil).Update), ctx, tx)
}

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

// CreateEndorsementRequest mocks base method.
func (m *MockAgentClient) CreateEndorsementRequest(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateEndorsementRequest", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateEndorsementRequest indicates an expected call of CreateEndorsementRequest.
func (mr *MockAgentClientMockRecorder) CreateEndorsementRequest(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateEndorsementRequest", reflect.TypeOf((*MockAgentClient)(nil).CreateEndorsementRequest), ctx, target, payload)
}

// EndorseTransaction mocks base method.
func (m *MockAgentClient) EndorseTransaction(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EndorseTransaction", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EndorseTransaction indicates an expected call of EndorseTransaction.
func (mr *MockAgentClientMockRecorder) EndorseTransaction(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EndorseTransaction", reflect.TypeOf((*MockAgentClient)(nil).EndorseTransaction), ctx, target, payload)
}

// WriteTransaction mocks base method.
func (m *MockAgentClient) WriteTransaction(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteTransaction", ctx, target, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// WriteTransaction indicates an expected call of WriteTransaction.
func (mr *MockAgentClientMockRecorder) WriteTransaction(ctx, target, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteTransaction", reflect.TypeOf((*MockAgentClient)(nil).WriteTransaction), ctx, target, payload)
}
