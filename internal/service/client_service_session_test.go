package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/koji-m/Bluedog/internal/adapter"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/mock"
	"github.com/koji-m/Bluedog/internal/store"
	"github.com/koji-m/Bluedog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSession = models.Session{
	DID:        "did:plc:alice",
	Handle:     "alice.test",
	AccessJWT:  "access",
	RefreshJWT: "refresh",
	Service:    "https://pds.test",
}

// newTestSessionManager wires a sessionManager to a mocked storage and a
// factory handing out mockAdapter. The listener passed to the factory is
// recorded in *listener.
func newTestSessionManager(
	t *testing.T,
	ctrl *gomock.Controller,
) (*sessionManager, *mock.MockSessionStorage, *mock.MockServerAdapter, *adapter.TokenListener) {
	t.Helper()

	mockStorage := mock.NewMockSessionStorage(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	listener := new(adapter.TokenListener)

	m := NewSessionManager(
		func(dir string) (store.SessionStorage, error) { return mockStorage, nil },
		func(l adapter.TokenListener) adapter.ServerAdapter {
			*listener = l
			return mockAdapter
		},
		logger.Nop(),
	).(*sessionManager)

	mockStorage.EXPECT().Dir().Return("/data").AnyTimes()
	require.NoError(t, m.Configure("/data"))

	return m, mockStorage, mockAdapter, listener
}

// newFileSessionManager wires a sessionManager to a real session file in a
// temporary directory.
func newFileSessionManager(t *testing.T, mockAdapter adapter.ServerAdapter) (*sessionManager, string) {
	t.Helper()

	dir := t.TempDir()
	m := NewSessionManager(
		store.NewSessionFileStorageFactory(logger.Nop()),
		func(adapter.TokenListener) adapter.ServerAdapter { return mockAdapter },
		logger.Nop(),
	).(*sessionManager)
	require.NoError(t, m.Configure(dir))

	return m, filepath.Join(dir, store.SessionFileName)
}

func exported(t *testing.T, s models.Session) string {
	t.Helper()
	token, err := s.Export()
	require.NoError(t, err)
	return token
}

// ── Configure ────────────────────────────────────────────────────────────────

func TestSessionManager_Configure_FileURL(t *testing.T) {
	var gotDir string
	m := NewSessionManager(
		func(dir string) (store.SessionStorage, error) {
			gotDir = dir
			return store.NewSessionFileStorage(dir, logger.Nop())
		},
		nil,
		logger.Nop(),
	)

	base := t.TempDir()
	dir := filepath.Join(base, "my data")

	require.NoError(t, m.Configure("file://"+filepath.ToSlash(base)+"/my%20data"))
	assert.Equal(t, dir, gotDir)
	assert.DirExists(t, dir)
}

func TestSessionManager_Configure_StorageError(t *testing.T) {
	m := NewSessionManager(
		func(string) (store.SessionStorage, error) { return nil, store.ErrEmptyStorageDir },
		nil,
		logger.Nop(),
	)

	err := m.Configure("")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmptyStorageDir)

	_, err = m.Client(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

// ── Client ───────────────────────────────────────────────────────────────────

func TestSessionManager_Client_NotConfigured(t *testing.T) {
	m := NewSessionManager(nil, nil, logger.Nop())

	_, err := m.Client(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)

	res := m.SignIn(context.Background(), "alice.test", "pw")
	assert.Equal(t, models.StatusError, res.Status)
	assert.NotEmpty(t, res.Message)
}

func TestSessionManager_Client_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStorage, _, _ := newTestSessionManager(t, ctrl)
	mockStorage.EXPECT().Load().Return("", store.ErrSessionNotFound)

	_, err := m.Client(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionManager_Client_UnreadableToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStorage, _, _ := newTestSessionManager(t, ctrl)
	mockStorage.EXPECT().Load().Return("not a session", nil)

	_, err := m.Client(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionManager_Client_ResumesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStorage, mockAdapter, listener := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockStorage.EXPECT().Load().Return(exported(t, testSession), nil),
		mockAdapter.EXPECT().ResumeSession(ctx, testSession).Return(testSession, nil),
	)

	client, err := m.Client(ctx)
	require.NoError(t, err)
	assert.Same(t, mockAdapter, client)
	assert.Same(t, m, (*listener).(*sessionManager))

	// the handle is reused without touching storage again
	again, err := m.Client(ctx)
	require.NoError(t, err)
	assert.Same(t, client, again)
}

func TestSessionManager_Client_ResumeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStorage, mockAdapter, _ := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	mockStorage.EXPECT().Load().Return(exported(t, testSession), nil).Times(2)
	mockAdapter.EXPECT().ResumeSession(ctx, testSession).
		Return(models.Session{}, adapter.ErrUnauthorized).Times(2)

	_, err := m.Client(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)

	// a failed resume does not install a handle
	_, err = m.Client(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestSessionManager_SignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockAdapter, _ := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CreateSession(ctx, "alice.test", "app-password").Return(testSession, nil)

	res := m.SignIn(ctx, " @alice.test ", "app-password")
	assert.Equal(t, models.StatusResult{Status: models.StatusOK}, res)

	client, err := m.Client(ctx)
	require.NoError(t, err)
	assert.Same(t, mockAdapter, client)
}

func TestSessionManager_SignIn_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStorage, mockAdapter, _ := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CreateSession(ctx, "alice.test", "wrong").Return(models.Session{}, adapter.ErrUnauthorized)
	mockStorage.EXPECT().Load().Return("", store.ErrSessionNotFound)

	res := m.SignIn(ctx, "alice.test", "wrong")
	assert.Equal(t, models.StatusError, res.Status)
	assert.NotEmpty(t, res.Message)

	_, err := m.Client(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionManager_SignIn_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _, _ := newTestSessionManager(t, ctrl)

	for _, tc := range []struct{ id, secret string }{{"", "pw"}, {"   ", "pw"}, {"alice.test", ""}} {
		res := m.SignIn(context.Background(), tc.id, tc.secret)
		assert.Equal(t, models.StatusError, res.Status)
		assert.NotEmpty(t, res.Message)
	}
}

func TestSessionManager_SignIn_FailureWritesNoFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	m, sessionPath := newFileSessionManager(t, mockAdapter)

	mockAdapter.EXPECT().CreateSession(gomock.Any(), "alice.test", "wrong").
		Return(models.Session{}, errors.New("AuthenticationRequired: Invalid identifier or password"))

	res := m.SignIn(context.Background(), "alice.test", "wrong")
	assert.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Message, "Invalid identifier or password")
	assert.NoFileExists(t, sessionPath)
}

func TestSessionManager_SignIn_PersistsCreatedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	m, sessionPath := newFileSessionManager(t, mockAdapter)

	// the real adapter reports the new session to its listener
	mockAdapter.EXPECT().CreateSession(gomock.Any(), "alice.test", "pw").DoAndReturn(
		func(context.Context, string, string) (models.Session, error) {
			return testSession, m.OnTokenChanged(models.SessionCreate, testSession)
		},
	)

	res := m.SignIn(context.Background(), "alice.test", "pw")
	require.Equal(t, models.StatusOK, res.Status)

	data, err := os.ReadFile(sessionPath)
	require.NoError(t, err)
	assert.Equal(t, exported(t, testSession), string(data))
}

// ── OnTokenChanged ───────────────────────────────────────────────────────────

func TestSessionManager_OnTokenChanged(t *testing.T) {
	tests := []struct {
		name    string
		event   models.SessionEvent
		persist bool
	}{
		{name: "create", event: models.SessionCreate, persist: true},
		{name: "refresh", event: models.SessionRefresh, persist: true},
		{name: "import", event: models.SessionImport, persist: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, mockStorage, _, _ := newTestSessionManager(t, ctrl)
			if tt.persist {
				mockStorage.EXPECT().Save(exported(t, testSession)).Return(nil)
			}

			assert.NoError(t, m.OnTokenChanged(tt.event, testSession))
		})
	}
}

func TestSessionManager_OnTokenChanged_SaveErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStorage, _, _ := newTestSessionManager(t, ctrl)
	diskFull := errors.New("no space left on device")
	mockStorage.EXPECT().Save(gomock.Any()).Return(diskFull)

	err := m.OnTokenChanged(models.SessionRefresh, testSession)
	assert.ErrorIs(t, err, diskFull)
}

func TestSessionManager_OnTokenChanged_Overwrites(t *testing.T) {
	m, sessionPath := newFileSessionManager(t, nil)

	require.NoError(t, m.OnTokenChanged(models.SessionCreate, testSession))

	refreshed := testSession
	refreshed.AccessJWT = "access-2"
	refreshed.RefreshJWT = "refresh-2"
	require.NoError(t, m.OnTokenChanged(models.SessionRefresh, refreshed))

	data, err := os.ReadFile(sessionPath)
	require.NoError(t, err)
	assert.Equal(t, exported(t, refreshed), string(data))
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestSessionManager_SignOut_RemovesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	m, sessionPath := newFileSessionManager(t, mockAdapter)
	ctx := context.Background()

	require.NoError(t, m.OnTokenChanged(models.SessionCreate, testSession))
	mockAdapter.EXPECT().ResumeSession(ctx, testSession).Return(testSession, nil)

	_, err := m.Client(ctx)
	require.NoError(t, err)

	m.SignOut()
	assert.NoFileExists(t, sessionPath)

	_, ok := m.Session()
	assert.False(t, ok)

	_, err = m.Client(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionManager_SignOut_IgnoresDeleteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStorage, mockAdapter, _ := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CreateSession(ctx, "alice.test", "pw").Return(testSession, nil)
	require.Equal(t, models.StatusOK, m.SignIn(ctx, "alice.test", "pw").Status)

	mockStorage.EXPECT().Delete().Return(errors.New("permission denied"))
	m.SignOut()

	mockStorage.EXPECT().Load().Return("", store.ErrSessionNotFound)
	_, err := m.Client(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// ── Session ──────────────────────────────────────────────────────────────────

func TestSessionManager_Session(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockAdapter, _ := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	_, ok := m.Session()
	assert.False(t, ok)

	mockAdapter.EXPECT().CreateSession(ctx, "alice.test", "pw").Return(testSession, nil)
	mockAdapter.EXPECT().Session().Return(testSession, true)

	require.Equal(t, models.StatusOK, m.SignIn(ctx, "alice.test", "pw").Status)

	got, ok := m.Session()
	require.True(t, ok)
	assert.Equal(t, testSession.DID, got.DID)
}
