// Code generated by MockGen. DO NOT EDIT.
// Source: gateway.go

// Package gateway is a generated GoMock package.
package gateway

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockCommandCaller is a mock of commandCaller interface.
type MockCommandCaller struct {
	ctrl     *gomock.Controller
	recorder *MockCommandCallerMockRecorder
}

// MockCommandCallerMockRecorder is the mock recorder for MockCommandCaller.
type MockCommandCallerMockRecorder struct {
	mock *MockCommandCaller
}

// NewMockCommandCaller creates a new mock instance.
func NewMockCommandCaller(ctrl *gomock.Controller) *MockCommandCaller {
	mock := &MockCommandCaller{ctrl: ctrl}
	mock.recorder = &MockCommandCallerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommandCaller) EXPECT() *MockCommandCallerMockRecorder {
	return m.recorder
}

// Call mocks base method.
func (m *MockCommandCaller) Call(ctx context.Context, topic, command string, payload json.RawMessage) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Call", ctx, topic, command, payload)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Call indicates an expected call of Call.
func (mr *MockCommandCallerMockRecorder) Call(ctx, topic, command, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Call", reflect.TypeOf((*MockCommandCaller)(nil).Call), ctx, topic, command, payload)
}
