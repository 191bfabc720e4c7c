package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"transverse/internal/adminauth"
	"transverse/internal/domain"
	"transverse/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK SESSION REPOSITORY
// ──────────────────────────────────────────────

// MockSessionRepository is a mock implementation of repository.SessionRepository.
type MockSessionRepository struct {
	mu     sync.RWMutex
	values map[string]string

	// Counters for verification
	SetCallCount    int32
	DeleteCallCount int32

	// Error injection
	SetError    error
	GetError    error
	DeleteError error
}

// NewMockSessionRepository creates a new mock session repository.
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{values: make(map[string]string)}
}

func (m *MockSessionRepository) Set(ctx context.Context, key, value string) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockSessionRepository) Get(ctx context.Context, key string) (string, error) {
	if m.GetError != nil {
		return "", m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return value, nil
}

func (m *MockSessionRepository) Delete(ctx context.Context, keys ...string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

// Put stores a raw value directly, bypassing error injection.
func (m *MockSessionRepository) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Stored returns the value stored under key and whether it exists.
func (m *MockSessionRepository) Stored(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

// StoredKeys returns all keys currently present.
func (m *MockSessionRepository) StoredKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	return keys
}

// ──────────────────────────────────────────────
// MOCK RIDE HISTORY REPOSITORY
// ──────────────────────────────────────────────

// MockRideHistoryRepository is a mock implementation of repository.RideHistoryRepository.
type MockRideHistoryRepository struct {
	mu    sync.RWMutex
	rides []*domain.Ride

	// Counters for verification
	SaveCallCount int32

	// Error injection
	SaveError error
	ListError error
}

// NewMockRideHistoryRepository creates a new mock ride history repository.
func NewMockRideHistoryRepository(seed []*domain.Ride) *MockRideHistoryRepository {
	rides := make([]*domain.Ride, len(seed))
	copy(rides, seed)
	return &MockRideHistoryRepository{rides: rides}
}

func (m *MockRideHistoryRepository) Save(ctx context.Context, ride *domain.Ride) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rideCopy := *ride
	m.rides = append([]*domain.Ride{&rideCopy}, m.rides...)
	return nil
}

func (m *MockRideHistoryRepository) List(ctx context.Context) ([]*domain.Ride, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Ride, 0, len(m.rides))
	for _, ride := range m.rides {
		rideCopy := *ride
		result = append(result, &rideCopy)
	}
	return result, nil
}

// Count returns the number of archived rides.
func (m *MockRideHistoryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rides)
}

// ──────────────────────────────────────────────
// MOCK ADMIN AUTHENTICATOR
// ──────────────────────────────────────────────

// MockAdminAuthenticator is a mock implementation of service.AdminAuthenticator.
type MockAdminAuthenticator struct {
	Creds *adminauth.Credentials
	Err   error

	LoginCallCount int32
	LastEmail      string
	LastPassword   string
}

func (m *MockAdminAuthenticator) Login(ctx context.Context, email, password string) (*adminauth.Credentials, error) {
	atomic.AddInt32(&m.LoginCallCount, 1)
	m.LastEmail = email
	m.LastPassword = password
	if m.Err != nil {
		return nil, m.Err
	}
	credsCopy := *m.Creds
	return &credsCopy, nil
}

// Ensure interfaces are satisfied.
var (
	_ repository.SessionRepository     = (*MockSessionRepository)(nil)
	_ repository.RideHistoryRepository = (*MockRideHistoryRepository)(nil)
)
