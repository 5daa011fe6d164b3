package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// SmartQuery is a query recorded by MockQuerier
type SmartQuery struct {
	Contract string
	Request  json.RawMessage
}

// MockQuerier answers smart queries from canned responses keyed by contract.
type MockQuerier struct {
	mu        sync.Mutex
	responses map[string]any
	errs      map[string]error
	Queries   []SmartQuery
}

// NewMockQuerier returns an empty MockQuerier
func NewMockQuerier() *MockQuerier {
	return &MockQuerier{
		responses: make(map[string]any),
		errs:      make(map[string]error),
	}
}

// SetResponse makes every query to contract return resp encoded as JSON
func (m *MockQuerier) SetResponse(contract string, resp any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[contract] = resp
}

// SetError makes every query to contract fail with err
func (m *MockQuerier) SetError(contract string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[contract] = err
}

// QuerySmart implements types.WasmQuerier
func (m *MockQuerier) QuerySmart(_ context.Context, contractAddr string, req []byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Queries = append(m.Queries, SmartQuery{Contract: contractAddr, Request: append(json.RawMessage{}, req...)})
	if err, ok := m.errs[contractAddr]; ok {
		return nil, err
	}
	resp, ok := m.responses[contractAddr]
	if !ok {
		return nil, fmt.Errorf("no contract at %s", contractAddr)
	}
	return json.Marshal(resp)
}
