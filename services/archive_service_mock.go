package services

import "sync"

// MockArchiveService is a mock implementation of ArchiveService for testing
type MockArchiveService struct {
	snapshots map[int64][]byte
	mu        sync.RWMutex
}

// NewMockArchiveService creates a new mock archive service
func NewMockArchiveService() *MockArchiveService {
	return &MockArchiveService{
		snapshots: make(map[int64][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global archive service instance for testing
func (m *MockArchiveService) SetAsMockForTesting() {
	SetArchiveService(m)
}

// ArchiveJobsheet stores the snapshot in memory
func (m *MockArchiveService) ArchiveJobsheet(jsNumber int64, snapshot []byte) (string, error) {
	m.mu.Lock()
	m.snapshots[jsNumber] = snapshot
	m.mu.Unlock()
	return "", nil
}

// Snapshot returns the stored snapshot for a number, or nil
func (m *MockArchiveService) Snapshot(jsNumber int64) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshots[jsNumber]
}

// Clear removes all stored snapshots
func (m *MockArchiveService) Clear() {
	m.mu.Lock()
	m.snapshots = make(map[int64][]byte)
	m.mu.Unlock()
}
