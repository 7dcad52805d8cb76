package server

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/coach"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/server/ratelimit"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeCompleter returns a canned completion.
type fakeCompleter struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

// memoryStore is an in-memory db.ResumeStore.
type memoryStore struct {
	mu      sync.Mutex
	resumes map[uuid.UUID]db.Resume
	err     error
	clock   time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		resumes: make(map[uuid.UUID]db.Resume),
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memoryStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memoryStore) CreateResume(_ context.Context, ownerID uuid.UUID, title, content string) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	now := m.tick()
	r := db.Resume{ID: uuid.New(), Title: title, Content: content, OwnerID: ownerID, CreatedAt: now, UpdatedAt: now}
	m.resumes[r.ID] = r
	return &r, nil
}

func (m *memoryStore) ListResumesByOwner(_ context.Context, ownerID uuid.UUID) ([]db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []db.Resume{}
	for _, r := range m.resumes {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryStore) GetResume(_ context.Context, ownerID, id uuid.UUID) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.resumes[id]
	if !ok || r.OwnerID != ownerID {
		return nil, nil
	}
	return &r, nil
}

func (m *memoryStore) UpdateResumeContent(_ context.Context, ownerID, id uuid.UUID, content string) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.resumes[id]
	if !ok || r.OwnerID != ownerID {
		return nil, nil
	}
	r.Content = content
	r.UpdatedAt = m.tick()
	m.resumes[id] = r
	return &r, nil
}

func (m *memoryStore) DeleteResume(_ context.Context, ownerID, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	r, ok := m.resumes[id]
	if !ok || r.OwnerID != ownerID {
		return false, nil
	}
	delete(m.resumes, id)
	return true, nil
}

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: testSecret, ExpirationHours: 1})
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

type testServer struct {
	*Server
	completer *fakeCompleter
	store     *memoryStore
	jwt       *JWTService
}

// newTestServer wires a server with fakes and rate limiting disabled.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	completer := &fakeCompleter{}
	store := newMemoryStore()
	jwtService := newTestJWTService()
	logger := quietLogger()

	s := New(Config{Port: 0, RateLimit: &ratelimit.Config{Enabled: false}}, Deps{
		Coach:  coach.NewService(completer, nil, logger),
		Store:  store,
		JWT:    jwtService,
		Logger: logger,
	})
	t.Cleanup(s.Close)

	return &testServer{Server: s, completer: completer, store: store, jwt: jwtService}
}

func (ts *testServer) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := ts.jwt.GenerateToken(userID)
	require.NoError(t, err)
	return token
}
