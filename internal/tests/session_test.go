package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"transverse/internal/adminauth"
	"transverse/internal/domain"
	"transverse/internal/seed"
	"transverse/internal/service"
)

func newSessionService(repo *MockSessionRepository, admin service.AdminAuthenticator) *service.SessionService {
	if admin == nil {
		admin = &MockAdminAuthenticator{Err: errors.New("unreachable")}
	}
	return service.NewSessionService(repo, admin, seed.BaseUser(), seed.AdminUser())
}

func TestLogin_MissingInput(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret"},
		{"empty password", "someone@example.com", ""},
		{"both empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sessions.Login(context.Background(), tc.email, tc.password, domain.RoleRider)
			if err != service.ErrMissingInput {
				t.Errorf("expected ErrMissingInput, got %v", err)
			}
		})
	}
}

func TestLogin_AdminCredentials(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	session, err := sessions.Login(context.Background(), "admin@transfers.com", "admin123", domain.RoleRider)
	if err != nil {
		t.Fatalf("expected admin login to succeed, got %v", err)
	}

	if !session.IsAdmin {
		t.Error("expected IsAdmin to be true")
	}
	if session.UserType != domain.RoleAdmin {
		t.Errorf("expected userType admin, got %s", session.UserType)
	}
	// The admin flag and the role tag must agree.
	if session.IsAdmin != (session.UserType == domain.RoleAdmin) {
		t.Error("admin flag and role tag disagree")
	}
}

func TestLogin_AdminWrongSecret(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	_, err := sessions.Login(context.Background(), "admin@transfers.com", "wrong", domain.RoleRider)
	if err != service.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// A failed admin login must not mutate session state.
	if sessions.Current() != nil {
		t.Error("expected no active session after failed admin login")
	}
	if got := repo.SetCallCount; got != 0 {
		t.Errorf("expected no persistence writes, got %d", got)
	}
}

func TestLogin_DemoCredentialsAlwaysSucceed(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	session, err := sessions.Login(context.Background(), "anyone@example.com", "whatever", domain.RoleDriver)
	if err != nil {
		t.Fatalf("expected demo login to succeed, got %v", err)
	}

	if session.IsAdmin {
		t.Error("expected IsAdmin to be false")
	}
	if session.UserType != domain.RoleDriver {
		t.Errorf("expected requested role to be merged, got %s", session.UserType)
	}
	if session.User.Email != "anyone@example.com" {
		t.Errorf("expected login email on identity, got %s", session.User.Email)
	}
}

func TestLogin_PersistsExactlyThreeKeys(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	_, err := sessions.Login(context.Background(), "rider@transfers.com", "rider123", domain.RoleRider)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	keys := repo.StoredKeys()
	sort.Strings(keys)
	want := []string{"isAdmin", "user", "userType"}
	if len(keys) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}

	if value, _ := repo.Stored("isAdmin"); value != "false" {
		t.Errorf("expected isAdmin=false, got %q", value)
	}
	if value, _ := repo.Stored("userType"); value != "rider" {
		t.Errorf("expected userType=rider, got %q", value)
	}

	raw, _ := repo.Stored("user")
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		t.Fatalf("stored user is not valid JSON: %v", err)
	}
}

func TestLogin_PersistenceFailureIsNonFatal(t *testing.T) {
	repo := NewMockSessionRepository()
	repo.SetError = errors.New("storage throttled")
	sessions := newSessionService(repo, nil)

	session, err := sessions.Login(context.Background(), "rider@transfers.com", "rider123", domain.RoleRider)
	if err != nil {
		t.Fatalf("expected login to succeed despite storage failure, got %v", err)
	}
	if session == nil || !session.Authenticated {
		t.Error("expected authenticated in-memory session")
	}
}

func TestRegister_AlwaysSucceeds(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	session, err := sessions.Register(context.Background(), service.RegisterRequest{
		NameEn: "New Rider",
		Email:  "new@example.com",
	})
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}

	if session.User.ID == "" || session.User.ID == seed.BaseUser().ID {
		t.Errorf("expected a synthesized id, got %q", session.User.ID)
	}
	if session.User.NameEn != "New Rider" {
		t.Errorf("expected supplied field to be merged, got %q", session.User.NameEn)
	}
	// Fields not supplied fall back to the base profile.
	if session.User.Phone != seed.BaseUser().Phone {
		t.Errorf("expected base profile phone, got %q", session.User.Phone)
	}
}

func TestLogout_ClearsPersistedKeys(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	if _, err := sessions.Login(context.Background(), "rider@transfers.com", "rider123", domain.RoleRider); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	sessions.Logout(context.Background())

	if sessions.Current() != nil {
		t.Error("expected no active session after logout")
	}
	for _, key := range []string{"user", "userType", "isAdmin", "token", "admin"} {
		if _, ok := repo.Stored(key); ok {
			t.Errorf("expected key %q to be absent after logout", key)
		}
	}

	// Rehydration from the same store yields logged-out.
	restored := newSessionService(repo, nil)
	if restored.Current() != nil {
		t.Error("expected rehydration after logout to yield no session")
	}

	// Logout is idempotent.
	sessions.Logout(context.Background())
}

func TestRehydrate_RestoresSession(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	if _, err := sessions.Login(context.Background(), "rider@transfers.com", "rider123", domain.RoleDriver); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	restored := newSessionService(repo, nil)
	session := restored.Current()
	if session == nil {
		t.Fatal("expected session to be restored")
	}
	if session.UserType != domain.RoleDriver {
		t.Errorf("expected restored role driver, got %s", session.UserType)
	}
}

func TestRehydrate_CorruptSnapshotFailsOpen(t *testing.T) {
	repo := NewMockSessionRepository()
	repo.Put("user", "{not json")
	repo.Put("userType", "rider")
	repo.Put("isAdmin", "false")

	sessions := newSessionService(repo, nil)
	if sessions.Current() != nil {
		t.Error("expected corrupt snapshot to be treated as no session")
	}
}

func TestUpdateUser_RequiresActiveSession(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	_, err := sessions.UpdateUser(context.Background(), service.UserUpdates{Phone: "+966500000001"})
	if err != service.ErrNoActiveSession {
		t.Errorf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestUpdateUser_MergesAndPersists(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	if _, err := sessions.Login(context.Background(), "rider@transfers.com", "rider123", domain.RoleRider); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user, err := sessions.UpdateUser(context.Background(), service.UserUpdates{Phone: "+966500000001"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if user.Phone != "+966500000001" {
		t.Errorf("expected merged phone, got %q", user.Phone)
	}
	if user.NameEn == "" {
		t.Error("expected untouched fields to survive the merge")
	}

	raw, _ := repo.Stored("user")
	var stored domain.User
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored user is not valid JSON: %v", err)
	}
	if stored.Phone != "+966500000001" {
		t.Errorf("expected persisted snapshot to carry the update, got %q", stored.Phone)
	}
}

func TestLogin_AdminEmailCaseVariantTakesDemoPath(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	// Only the exact reserved identifier triggers the admin check; a
	// case-variant is an ordinary demo login regardless of secret.
	session, err := sessions.Login(context.Background(), "Admin@transfers.com", "wrong", domain.RoleRider)
	if err != nil {
		t.Fatalf("expected demo login to succeed, got %v", err)
	}
	if session.IsAdmin {
		t.Error("expected a non-admin session for a case-variant identifier")
	}
	if session.User.Email != "Admin@transfers.com" {
		t.Errorf("expected login email on identity, got %s", session.User.Email)
	}
}

func TestUpdateUser_ConcurrentUpdatesKeepSnapshotsConsistent(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	if _, err := sessions.Login(context.Background(), "rider@transfers.com", "rider123", domain.RoleRider); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Concurrent updates must never let the persisted snapshot observe a
	// half-merged identity.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			phone := fmt.Sprintf("+96650000%04d", i)
			for j := 0; j < 50; j++ {
				if _, err := sessions.UpdateUser(context.Background(), service.UserUpdates{Phone: phone}); err != nil {
					t.Errorf("update failed: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	raw, ok := repo.Stored("user")
	if !ok {
		t.Fatal("expected a persisted user snapshot")
	}
	var stored domain.User
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored user is not valid JSON: %v", err)
	}
	session := sessions.Current()
	if session == nil || session.User.Phone == "" {
		t.Fatal("expected an updated in-memory identity")
	}
}

func TestAdminLogin_PersistsTokenAndAdmin(t *testing.T) {
	repo := NewMockSessionRepository()
	authenticator := &MockAdminAuthenticator{
		Creds: &adminauth.Credentials{
			Token: "tok-123",
			ID:    "admin_1",
			Name:  "System Admin",
			Email: "admin@transfers.com",
			Role:  "admin",
		},
	}
	sessions := newSessionService(repo, authenticator)

	creds, err := sessions.AdminLogin(context.Background(), "admin@transfers.com", "admin123")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if creds.Token != "tok-123" {
		t.Errorf("expected token from collaborator, got %q", creds.Token)
	}

	if value, ok := repo.Stored("token"); !ok || value != "tok-123" {
		t.Errorf("expected token key persisted, got %q", value)
	}
	if _, ok := repo.Stored("admin"); !ok {
		t.Error("expected admin key persisted")
	}

	session := sessions.Current()
	if session == nil || !session.IsAdmin {
		t.Error("expected admin session after external login")
	}
}

func TestAdminLogin_FailureIsSurfaced(t *testing.T) {
	repo := NewMockSessionRepository()
	authenticator := &MockAdminAuthenticator{Err: adminauth.ErrLoginFailed}
	sessions := newSessionService(repo, authenticator)

	_, err := sessions.AdminLogin(context.Background(), "admin@transfers.com", "nope")
	if !errors.Is(err, adminauth.ErrLoginFailed) {
		t.Fatalf("expected collaborator error to surface, got %v", err)
	}
	if sessions.Current() != nil {
		t.Error("expected no session after failed external login")
	}
	if authenticator.LoginCallCount != 1 {
		t.Errorf("expected exactly one attempt (no retry), got %d", authenticator.LoginCallCount)
	}
}

func TestUsernameAvailable_ReservedPrefixes(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	testCases := []struct {
		id        string
		available bool
	}{
		{"admin_panel", false},
		{"Test_42", false},
		{"user99", false},
		{"support_desk", false},
		{"mohammed_ahmed", true},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			if got := sessions.UsernameAvailable(tc.id); got != tc.available {
				t.Errorf("UsernameAvailable(%q) = %v, want %v", tc.id, got, tc.available)
			}
		})
	}
}

func TestProfile_SaveAndLoad(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	err := sessions.SaveProfile(context.Background(), domain.Profile{
		NameEn:   "Mohammed Ahmed",
		UniqueID: "mohammed_ahmed",
		Bio:      "Active rider",
	})
	if err != nil {
		t.Fatalf("save profile failed: %v", err)
	}

	profile, err := sessions.LoadProfile(context.Background())
	if err != nil {
		t.Fatalf("load profile failed: %v", err)
	}
	if profile.UniqueID != "mohammed_ahmed" {
		t.Errorf("expected stored unique id, got %q", profile.UniqueID)
	}
}

func TestProfile_ReservedUniqueIDRejected(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	err := sessions.SaveProfile(context.Background(), domain.Profile{UniqueID: "admin2024"})
	if err != service.ErrReservedUsername {
		t.Errorf("expected ErrReservedUsername, got %v", err)
	}
}

func TestDarkMode_PersistsAcrossRestart(t *testing.T) {
	repo := NewMockSessionRepository()
	sessions := newSessionService(repo, nil)

	sessions.SetDarkMode(context.Background(), true)
	if !sessions.DarkMode() {
		t.Error("expected dark mode enabled")
	}

	restored := newSessionService(repo, nil)
	if !restored.DarkMode() {
		t.Error("expected dark mode preference to survive rehydration")
	}
}
