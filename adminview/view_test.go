package adminview

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	winja "github.com/winjahq/winja-go"
)

// fakeBackend is a canned-response API server. Responses are keyed by
// "METHOD /path"; unknown routes get a 404. Every request is recorded so
// tests can assert on traffic.
type fakeBackend struct {
	mu        sync.Mutex
	requests  []string
	bodies    map[string][]byte
	responses map[string]string
	statuses  map[string]int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		bodies:    make(map[string][]byte),
		responses: make(map[string]string),
		statuses:  make(map[string]int),
	}
}

func (b *fakeBackend) respond(method, path, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[method+" "+path] = body
}

func (b *fakeBackend) fail(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statuses[method+" "+path] = status
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	payload, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, key)
	b.bodies[key] = payload
	status, failing := b.statuses[key]
	body, known := b.responses[key]
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if failing {
		w.WriteHeader(status)
		w.Write([]byte(`{"message":"boom"}`))
		return
	}
	if !known {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
		return
	}
	w.Write([]byte(body))
}

// count returns how many requests matched "METHOD /path".
func (b *fakeBackend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, key := range b.requests {
		if key == method+" "+path {
			n++
		}
	}
	return n
}

// lastBody returns the most recent request body seen on "METHOD /path".
func (b *fakeBackend) lastBody(method, path string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[method+" "+path]
}

func (b *fakeBackend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func newTestClient(t *testing.T, backend *fakeBackend) winja.Client {
	t.Helper()

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	client, err := winja.NewClient(
		winja.WithBaseURL(server.URL),
		winja.WithToken("test-token"),
	)
	require.NoError(t, err)
	return client
}

func TestSectionKeepsStaleDataOnError(t *testing.T) {
	var section Section[[]string]

	section.set([]string{"a", "b"}, nil)
	require.True(t, section.OK())

	section.set(nil, assert.AnError)
	assert.False(t, section.OK())
	assert.Equal(t, []string{"a", "b"}, section.Data)

	section.set([]string{"c"}, nil)
	assert.True(t, section.OK())
	assert.Equal(t, []string{"c"}, section.Data)
}

func TestMutationBusyGuard(t *testing.T) {
	backend := newFakeBackend()
	v := NewOpportunitiesView(newTestClient(t, backend), nil)

	v.busy.Store(true)
	err := v.AddType(context.Background(), "Scholarships")
	assert.ErrorIs(t, err, ErrBusy)
	assert.Zero(t, backend.total())

	v.busy.Store(false)
	backend.respond(http.MethodPost, "/opportunity-types", `{"id":1,"name":"Scholarships"}`)
	backend.respond(http.MethodGet, "/opportunity-types", `[{"id":1,"name":"Scholarships","count":0}]`)

	require.NoError(t, v.AddType(context.Background(), "Scholarships"))
	assert.Len(t, v.Types.Data, 1)
}
