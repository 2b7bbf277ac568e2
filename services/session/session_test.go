package session

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"hopehealth/clients"
	"hopehealth/models"

	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	mu           sync.Mutex
	passwordErr  error
	refreshErr   error
	refreshCalls int
	pair         models.TokenPair
}

func (f *fakeIdentity) PasswordGrant(_ context.Context, _, _ string) (*models.TokenPair, error) {
	if f.passwordErr != nil {
		return nil, f.passwordErr
	}
	pair := f.pair
	return &pair, nil
}

func (f *fakeIdentity) RefreshGrant(_ context.Context, _ string) (*models.TokenPair, error) {
	f.mu.Lock()
	f.refreshCalls++
	f.mu.Unlock()
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	pair := f.pair
	return &pair, nil
}

type fakeUsers struct {
	verifyErr   error
	verifyCalls int
}

func (f *fakeUsers) VerifyAdminRole(_ context.Context, _ string) error {
	f.verifyCalls++
	return f.verifyErr
}
func (f *fakeUsers) RegisterPatient(context.Context, models.PatientRegistration) error { return nil }
func (f *fakeUsers) RegisterDoctor(context.Context, models.DoctorRegistration) error   { return nil }
func (f *fakeUsers) UpdateUser(context.Context, string, models.PatientUpdate) error    { return nil }
func (f *fakeUsers) UpdatePassword(context.Context, string, string, string) error      { return nil }
func (f *fakeUsers) UpdateEmail(context.Context, string, string, string) error         { return nil }
func (f *fakeUsers) DeleteUser(context.Context, string) error                          { return nil }

func newTestService(identity *fakeIdentity, users *fakeUsers) *DefaultSessionService {
	return &DefaultSessionService{
		Identity:        identity,
		Users:           users,
		Store:           NewMemoryTokenStore(),
		RefreshInterval: time.Hour,
	}
}

func TestIsValidToken(t *testing.T) {
	cases := []struct {
		token string
		valid bool
	}{
		{"", false},
		{"   ", false},
		{"undefined", false},
		{"  undefined  ", false},
		{"abc.def.ghi", true},
		{" token ", true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.valid, isValidToken(tc.token), "token %q", tc.token)
	}
}

func TestLoginSuccess(t *testing.T) {
	identity := &fakeIdentity{pair: models.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	users := &fakeUsers{}
	svc := newTestService(identity, users)

	loggedUser, err := svc.Login(context.Background(), "root.admin", "secret")
	require.NoError(t, err)
	require.Equal(t, "root.admin", loggedUser)
	require.Equal(t, 1, users.verifyCalls)

	require.True(t, svc.IsAuthenticated())
	require.Equal(t, "access-1", svc.Store.AccessToken())
	require.Equal(t, "refresh-1", svc.Store.RefreshToken())
	require.Equal(t, "root.admin", svc.CurrentIdentity())
}

func TestLoginInvalidCredentials(t *testing.T) {
	identity := &fakeIdentity{passwordErr: clients.ErrInvalidGrant}
	svc := newTestService(identity, &fakeUsers{})

	_, err := svc.Login(context.Background(), "root.admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.False(t, svc.IsAuthenticated())
}

func TestLoginWithoutAdminRoleDiscardsTokens(t *testing.T) {
	identity := &fakeIdentity{pair: models.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	users := &fakeUsers{verifyErr: errors.New("forbidden")}
	svc := newTestService(identity, users)

	_, err := svc.Login(context.Background(), "plain.user", "secret")
	require.ErrorIs(t, err, ErrForbidden)
	require.False(t, svc.IsAuthenticated())
	require.Empty(t, svc.Store.AccessToken())
	require.Empty(t, svc.Store.RefreshToken())
}

func TestLogoutClearsSession(t *testing.T) {
	identity := &fakeIdentity{pair: models.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	svc := newTestService(identity, &fakeUsers{})

	_, err := svc.Login(context.Background(), "root.admin", "secret")
	require.NoError(t, err)
	svc.StartRefreshCycle()

	require.NoError(t, svc.Logout(context.Background()))
	require.False(t, svc.IsAuthenticated())
	require.Empty(t, svc.CurrentIdentity())

	// The cycle is gone: starting again must install a fresh one.
	svc.mu.Lock()
	require.Nil(t, svc.cancelRefresh)
	svc.mu.Unlock()
}

func TestStartRefreshCycleIsIdempotent(t *testing.T) {
	svc := newTestService(&fakeIdentity{}, &fakeUsers{})

	svc.StartRefreshCycle()
	svc.mu.Lock()
	first := svc.cancelRefresh
	svc.mu.Unlock()

	svc.StartRefreshCycle()
	svc.mu.Lock()
	second := svc.cancelRefresh
	svc.mu.Unlock()

	require.NotNil(t, first)
	// Same cancel func means the second call was a no-op and no second
	// goroutine was spawned.
	require.Equal(t, reflect.ValueOf(first).Pointer(), reflect.ValueOf(second).Pointer())

	svc.StopRefreshCycle()
	svc.StopRefreshCycle() // stopping twice is safe
}

func TestRefreshNowRotatesTokens(t *testing.T) {
	identity := &fakeIdentity{pair: models.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}}
	svc := newTestService(identity, &fakeUsers{})
	require.NoError(t, svc.Store.SaveTokens(models.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}))

	require.NoError(t, svc.RefreshNow(context.Background()))
	require.Equal(t, "access-2", svc.Store.AccessToken())
	require.Equal(t, "refresh-2", svc.Store.RefreshToken())
	require.Equal(t, 1, identity.refreshCalls)
}

func TestRefreshNowWithoutStoredTokenFails(t *testing.T) {
	identity := &fakeIdentity{}
	svc := newTestService(identity, &fakeUsers{})

	err := svc.RefreshNow(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
	require.Zero(t, identity.refreshCalls)
}

func TestRepeatedRefreshFailuresForceLogout(t *testing.T) {
	identity := &fakeIdentity{refreshErr: errors.New("idp down")}
	svc := newTestService(identity, &fakeUsers{})
	require.NoError(t, svc.Store.SaveTokens(models.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}))
	require.NoError(t, svc.Store.SaveIdentity("root.admin"))

	for i := 0; i < maxConsecutiveRefreshFailures-1; i++ {
		require.Error(t, svc.RefreshNow(context.Background()))
		require.True(t, svc.IsAuthenticated(), "session must survive failure %d", i+1)
	}

	require.Error(t, svc.RefreshNow(context.Background()))
	require.False(t, svc.IsAuthenticated())
	require.Empty(t, svc.Store.RefreshToken())
	require.Empty(t, svc.CurrentIdentity())
}

func TestRefreshSuccessResetsFailureRun(t *testing.T) {
	identity := &fakeIdentity{
		refreshErr: errors.New("idp down"),
		pair:       models.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"},
	}
	svc := newTestService(identity, &fakeUsers{})
	require.NoError(t, svc.Store.SaveTokens(models.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}))

	require.Error(t, svc.RefreshNow(context.Background()))
	require.Error(t, svc.RefreshNow(context.Background()))

	identity.refreshErr = nil
	require.NoError(t, svc.RefreshNow(context.Background()))

	// The run restarted: two more failures must not force a logout.
	identity.refreshErr = errors.New("idp down")
	require.Error(t, svc.RefreshNow(context.Background()))
	require.Error(t, svc.RefreshNow(context.Background()))
	require.True(t, svc.IsAuthenticated())
}
