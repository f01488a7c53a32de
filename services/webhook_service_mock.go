package services

import (
	"sync"
	"time"
)

// MockWebhookNotifier is a mock implementation of WebhookNotifier for testing
type MockWebhookNotifier struct {
	payloads []map[string]string
	failWith error
	notified chan struct{}
	mu       sync.RWMutex
}

// NewMockWebhookNotifier creates a new mock webhook notifier
func NewMockWebhookNotifier() *MockWebhookNotifier {
	return &MockWebhookNotifier{
		notified: make(chan struct{}, 64),
	}
}

// SetAsMockForTesting sets this mock as the global notifier instance for testing
func (m *MockWebhookNotifier) SetAsMockForTesting() {
	SetWebhookNotifier(m)
}

// FailWith makes every subsequent Notify call return the given error
func (m *MockWebhookNotifier) FailWith(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// Notify records the payload for later assertions
func (m *MockWebhookNotifier) Notify(payload map[string]string) error {
	m.mu.Lock()
	err := m.failWith
	if err == nil {
		m.payloads = append(m.payloads, payload)
	}
	m.mu.Unlock()

	m.notified <- struct{}{}
	return err
}

// WaitForNotify blocks until a Notify call lands or the timeout expires.
// Returns false on timeout. Submissions dispatch in the background, so
// tests need this to synchronize before asserting on payloads.
func (m *MockWebhookNotifier) WaitForNotify(timeout time.Duration) bool {
	select {
	case <-m.notified:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Payloads returns a copy of every recorded payload
func (m *MockWebhookNotifier) Payloads() []map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payloads := make([]map[string]string, len(m.payloads))
	copy(payloads, m.payloads)
	return payloads
}

// LastPayload returns the most recently recorded payload, or nil
func (m *MockWebhookNotifier) LastPayload() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.payloads) == 0 {
		return nil
	}
	return m.payloads[len(m.payloads)-1]
}

// Clear removes all recorded payloads
func (m *MockWebhookNotifier) Clear() {
	m.mu.Lock()
	m.payloads = nil
	m.failWith = nil
	m.mu.Unlock()
}
