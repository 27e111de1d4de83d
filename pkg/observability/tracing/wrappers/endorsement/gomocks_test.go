// Code generated by MockGen. DO NOT EDIT.
// Source: github.com/credentia/platform/pkg/observability/tracing/wrappers/endorsement (interfaces: Service)

// Package endorsement is a generated GoMock package.
package endorsement

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	agent "github.com/credentia/platform/pkg/client/agent"
	endorsement "github.com/credentia/platform/pkg/service/endorsement"
	gomock "github.com/golang/mock/gomock"
)

// MockService is a mock of Service interface.
type MockService struct {
	ctrl     *gomock.Controller
	recorder *MockServiceMockRecorder
}

// MockServiceMockRecorder is the mock recorder for MockService.
type MockServiceMockRecorder struct {
	mock *MockService
}

// NewMockService creates a new mock instance.
func NewMockService(ctrl *gomock.Controller) *MockService {
	mock := &MockService{ctrl: ctrl}
	mock.recorder = &MockServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockService) EXPECT() *MockServiceMockRecorder {
	return m.recorder
}

// CreateDraft mocks base method.
func (m *MockService) CreateDraft(arg0 context.Context, arg1 string, arg2 endorsement.PayloadType, arg3 json.RawMessage) (*endorsement.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateDraft", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].(*endorsement.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateDraft indicates an expected call of CreateDraft.
func (mr *MockServiceMockRecorder) CreateDraft(arg0, arg1, arg2, arg3 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateDraft", reflect.TypeOf((*MockService)(nil).CreateDraft), arg0, arg1, arg2, arg3)
}

// GetTransaction mocks base method.
func (m *MockService) GetTransaction(arg0 context.Context, arg1 endorsement.TxID) (*endorsement.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTransaction", arg0, arg1)
	ret0, _ := ret[0].(*endorsement.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTransaction indicates an expected call of GetTransaction.
func (mr *MockServiceMockRecorder) GetTransaction(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransaction", reflect.TypeOf((*MockService)(nil).GetTransaction), arg0, arg1)
}

// RequestEndorsement mocks base method.
func (m *MockService) RequestEndorsement(arg0 context.Context, arg1 endorsement.TxID, arg2 agent.Target) (*endorsement.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RequestEndorsement", arg0, arg1, arg2)
	ret0, _ := ret[0].(*endorsement.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RequestEndorsement indicates an expected call of RequestEndorsement.
func (mr *MockServiceMockRecorder) RequestEndorsement(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RequestEndorsement", reflect.TypeOf((*MockService)(nil).RequestEndorsement), arg0, arg1, arg2)
}

// Sign mocks base method.
func (m *MockService) Sign(arg0 context.Context, arg1 endorsement.TxID, arg2 agent.Target, arg3 string) (*endorsement.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sign", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].(*endorsement.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Sign indicates an expected call of Sign.
func (mr *MockServiceMockRecorder) Sign(arg0, arg1, arg2, arg3 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sign", reflect.TypeOf((*MockService)(nil).Sign), arg0, arg1, arg2, arg3)
}

// Submit mocks base method.
func (m *MockService) Submit(arg0 context.Context, arg1 endorsement.TxID, arg2 agent.Target) (*endorsement.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Submit", arg0, arg1, arg2)
	ret0, _ := ret[0].(*endorsement.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Submit indicates an expected call of Submit.
func (mr *MockServiceMockRecorder) Submit(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Submit", reflect.TypeOf((*MockService)(nil).Submit), arg0, arg1, arg2)
}
