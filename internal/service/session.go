package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"transverse/internal/adminauth"
	"transverse/internal/domain"
	"transverse/internal/repository"
)

// Durable storage keys. Record-valued keys hold JSON; userType, isAdmin and
// darkMode hold plain flag strings.
const (
	keyUser        = "user"
	keyUserType    = "userType"
	keyIsAdmin     = "isAdmin"
	keyToken       = "token"
	keyAdmin       = "admin"
	keyUserProfile = "userProfile"
	keyDarkMode    = "darkMode"
)

// Reserved admin credential pair. Demo semantics: every other non-empty
// pair logs in without verification.
const (
	adminEmail    = "admin@transfers.com"
	adminPassword = "admin123"
)

// reservedUsernamePrefixes are profile ids reported as taken. This is a
// simulated availability check, there is no backing directory of taken names.
var reservedUsernamePrefixes = []string{"admin", "test", "user", "support"}

// AdminAuthenticator verifies admin credentials against the external login
// service. This interface allows for testing with mock implementations.
type AdminAuthenticator interface {
	Login(ctx context.Context, email, password string) (*adminauth.Credentials, error)
}

// Ensure the real client implements AdminAuthenticator.
var _ AdminAuthenticator = (*adminauth.Client)(nil)

// SessionService owns identity and auth state. Every mutating operation
// synchronously persists a session snapshot to the durable store; persistence
// failures are logged and never fail the operation.
type SessionService struct {
	repo      repository.SessionRepository
	adminAuth AdminAuthenticator
	baseUser  *domain.User
	adminUser *domain.User

	mu       sync.RWMutex
	session  *domain.Session
	darkMode bool
}

// NewSessionService creates a SessionService and rehydrates any persisted
// session. A stored snapshot that fails to parse is discarded: startup always
// succeeds, falling open to the logged-out state.
func NewSessionService(
	repo repository.SessionRepository,
	adminAuth AdminAuthenticator,
	baseUser *domain.User,
	adminUser *domain.User,
) *SessionService {
	s := &SessionService{
		repo:      repo,
		adminAuth: adminAuth,
		baseUser:  baseUser,
		adminUser: adminUser,
	}
	s.rehydrate()
	return s
}

// rehydrate restores the session from durable storage.
func (s *SessionService) rehydrate() {
	ctx := context.Background()

	raw, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		if err != repository.ErrNotFound {
			log.Printf("session: rehydrate: %v", err)
		}
		s.loadDarkMode(ctx)
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("session: discarding unreadable stored user: %v", err)
		s.loadDarkMode(ctx)
		return
	}

	userType, _ := s.repo.Get(ctx, keyUserType)
	isAdmin, _ := s.repo.Get(ctx, keyIsAdmin)

	role := domain.Role(userType)
	if role == "" {
		role = domain.RoleRider
	}

	s.session = &domain.Session{
		User:          &user,
		Authenticated: true,
		UserType:      role,
		IsAdmin:       isAdmin == "true",
	}
	s.loadDarkMode(ctx)
}

func (s *SessionService) loadDarkMode(ctx context.Context) {
	if value, err := s.repo.Get(ctx, keyDarkMode); err == nil {
		s.darkMode = value == "true"
	}
}

// Login authenticates a session. The reserved admin identifier requires the
// reserved secret; any other non-empty pair succeeds with the base mock
// identity merged with the requested role.
func (s *SessionService) Login(ctx context.Context, email, password string, role domain.Role) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingInput
	}

	// Exact match only: a case-variant of the admin identifier takes the
	// demo path like any other address.
	if email == adminEmail {
		if password != adminPassword {
			return nil, ErrInvalidCredentials
		}

		admin := *s.adminUser
		session := &domain.Session{
			User:          &admin,
			Authenticated: true,
			UserType:      domain.RoleAdmin,
			IsAdmin:       true,
		}

		s.mu.Lock()
		s.session = session
		snapshot := copySession(session)
		s.mu.Unlock()

		s.persistSession(ctx, snapshot)
		return snapshot, nil
	}

	if role == "" {
		role = domain.RoleRider
	}

	user := *s.baseUser
	user.Email = email
	user.Role = role

	session := &domain.Session{
		User:          &user,
		Authenticated: true,
		UserType:      role,
		IsAdmin:       false,
	}

	s.mu.Lock()
	s.session = session
	snapshot := copySession(session)
	s.mu.Unlock()

	s.persistSession(ctx, snapshot)
	return snapshot, nil
}

// RegisterRequest contains the profile fields supplied at registration.
// Empty fields fall back to the base mock profile.
type RegisterRequest struct {
	Name   string
	NameEn string
	Email  string
	Phone  string
	Role   domain.Role
}

// Register synthesizes a new identity. Registration always succeeds.
func (s *SessionService) Register(ctx context.Context, req RegisterRequest) (*domain.Session, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleRider
	}

	user := *s.baseUser
	user.ID = fmt.Sprintf("user_%d", time.Now().UnixMilli())
	user.Role = role
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.NameEn != "" {
		user.NameEn = req.NameEn
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	session := &domain.Session{
		User:          &user,
		Authenticated: true,
		UserType:      role,
		IsAdmin:       false,
	}

	s.mu.Lock()
	s.session = session
	snapshot := copySession(session)
	s.mu.Unlock()

	s.persistSession(ctx, snapshot)
	return snapshot, nil
}

// AdminLogin authenticates against the external admin login service and
// persists the returned token. The call is not retried; re-submitting is safe.
func (s *SessionService) AdminLogin(ctx context.Context, email, password string) (*adminauth.Credentials, error) {
	if email == "" || password == "" {
		return nil, ErrMissingInput
	}

	creds, err := s.adminAuth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:     creds.ID,
		NameEn: creds.Name,
		Email:  creds.Email,
		Role:   domain.RoleAdmin,
	}
	session := &domain.Session{
		User:          user,
		Authenticated: true,
		UserType:      domain.RoleAdmin,
		IsAdmin:       true,
	}

	s.mu.Lock()
	s.session = session
	snapshot := copySession(session)
	s.mu.Unlock()

	s.persistSession(ctx, snapshot)
	s.persist(ctx, keyToken, creds.Token)
	if data, err := json.Marshal(creds); err == nil {
		s.persist(ctx, keyAdmin, string(data))
	}

	return creds, nil
}

// Logout clears the in-memory identity and all persisted session keys.
// Logging out with no active session is a no-op.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, keyUser, keyUserType, keyIsAdmin, keyToken, keyAdmin); err != nil {
		log.Printf("session: clear persisted keys: %v", err)
	}
}

// UserUpdates contains partial identity fields to merge. Empty fields are
// left unchanged.
type UserUpdates struct {
	Name   string
	NameEn string
	Email  string
	Phone  string
	Photo  string
}

// UpdateUser merges fields into the current identity and persists the result.
// Fails with ErrNoActiveSession when logged out.
func (s *SessionService) UpdateUser(ctx context.Context, updates UserUpdates) (*domain.User, error) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}

	user := s.session.User
	if updates.Name != "" {
		user.Name = updates.Name
	}
	if updates.NameEn != "" {
		user.NameEn = updates.NameEn
	}
	if updates.Email != "" {
		user.Email = updates.Email
	}
	if updates.Phone != "" {
		user.Phone = updates.Phone
	}
	if updates.Photo != "" {
		user.Photo = updates.Photo
	}
	// Snapshot under the lock: the live session may be mutated by a
	// concurrent update once mu is released.
	snapshot := copySession(s.session)
	s.mu.Unlock()

	s.persistSession(ctx, snapshot)

	return snapshot.User, nil
}

// Current returns a snapshot of the active session, or nil when logged out.
func (s *SessionService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.session)
}

// UsernameAvailable reports whether a profile id may be claimed. Ids with a
// reserved prefix are always taken (simulated, see package notes).
func (s *SessionService) UsernameAvailable(id string) bool {
	if id == "" {
		return false
	}
	lower := strings.ToLower(id)
	for _, prefix := range reservedUsernamePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}

// SaveProfile validates and persists the profile editor buffer.
func (s *SessionService) SaveProfile(ctx context.Context, profile domain.Profile) error {
	if profile.UniqueID != "" && !s.UsernameAvailable(profile.UniqueID) {
		return ErrReservedUsername
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, keyUserProfile, string(data))
}

// LoadProfile retrieves the persisted profile editor buffer.
// Returns repository.ErrNotFound when none has been saved.
func (s *SessionService) LoadProfile(ctx context.Context) (*domain.Profile, error) {
	raw, err := s.repo.Get(ctx, keyUserProfile)
	if err != nil {
		return nil, err
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		// Unreadable buffer is treated as unset, same as the session snapshot.
		log.Printf("session: discarding unreadable stored profile: %v", err)
		return nil, repository.ErrNotFound
	}
	return &profile, nil
}

// SetDarkMode updates and persists the dark mode preference.
func (s *SessionService) SetDarkMode(ctx context.Context, enabled bool) {
	s.mu.Lock()
	s.darkMode = enabled
	s.mu.Unlock()

	s.persist(ctx, keyDarkMode, strconv.FormatBool(enabled))
}

// DarkMode returns the dark mode preference.
func (s *SessionService) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// persistSession writes the session snapshot under stable keys.
// State remains correct in memory even if persistence fails.
func (s *SessionService) persistSession(ctx context.Context, session *domain.Session) {
	data, err := json.Marshal(session.User)
	if err != nil {
		log.Printf("session: encode user: %v", err)
		return
	}
	s.persist(ctx, keyUser, string(data))
	s.persist(ctx, keyUserType, string(session.UserType))
	s.persist(ctx, keyIsAdmin, strconv.FormatBool(session.IsAdmin))
}

func (s *SessionService) persist(ctx context.Context, key, value string) {
	if err := s.repo.Set(ctx, key, value); err != nil {
		log.Printf("session: persist %s: %v", key, err)
	}
}

func copySession(session *domain.Session) *domain.Session {
	if session == nil {
		return nil
	}
	sessionCopy := *session
	if session.User != nil {
		userCopy := *session.User
		sessionCopy.User = &userCopy
	}
	return &sessionCopy
}
