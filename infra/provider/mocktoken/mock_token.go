// Package mocktoken provides a recording token contract for tests and local
// development.
package mocktoken

import (
	"context"
	"sync"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/amirasaad/aliasregistry/pkg/provider/token"
)

// MockTokenContract records every instruction it receives. Err, when set,
// is returned by every call.
type MockTokenContract struct {
	mu        sync.Mutex
	receivers []alias.ContractRef
	transfers []payment.Transfer
	Err       error
}

// NewMockTokenContract creates a new instance of MockTokenContract.
func NewMockTokenContract() *MockTokenContract {
	return &MockTokenContract{}
}

func (m *MockTokenContract) RegisterReceiver(_ context.Context, ref alias.ContractRef) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.receivers = append(m.receivers, ref)
	return nil
}

func (m *MockTokenContract) Transfer(_ context.Context, t payment.Transfer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.transfers = append(m.transfers, t)
	return nil
}

// Receivers returns the recorded receiver registrations.
func (m *MockTokenContract) Receivers() []alias.ContractRef {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]alias.ContractRef{}, m.receivers...)
}

// Transfers returns the recorded transfers.
func (m *MockTokenContract) Transfers() []payment.Transfer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]payment.Transfer{}, m.transfers...)
}

var _ token.Contract = (*MockTokenContract)(nil)
