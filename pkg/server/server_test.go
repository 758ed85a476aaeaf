package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/httputil"
	hio "github.com/matzehuels/hanoi/pkg/io"
	"github.com/matzehuels/hanoi/pkg/observability"
	"github.com/matzehuels/hanoi/pkg/pipeline"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error { return nil }
func (c *memCache) Close() error                              { return nil }

func newTestServer(opts ...Option) *Server {
	runner := pipeline.NewRunner(&memCache{data: map[string][]byte{}}, nil, nil)
	return New(runner, opts...)
}

func do(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httputil.ErrorBody {
	t.Helper()
	var body httputil.ErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("GET /healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestSolve(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/v1/solve/3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(CacheHeader); got != "miss" {
		t.Errorf("first %s = %q, want miss", CacheHeader, got)
	}
	tr, err := hio.ReadJSON(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Disks != 3 || len(tr.Moves) != 7 {
		t.Errorf("transcript has %d disks, %d moves", tr.Disks, len(tr.Moves))
	}
	if _, err := hio.Replay(tr); err != nil {
		t.Errorf("served transcript does not replay: %v", err)
	}

	rec = do(t, s, http.MethodGet, "/v1/solve/3", nil)
	if got := rec.Header().Get(CacheHeader); got != "hit" {
		t.Errorf("second %s = %q, want hit", CacheHeader, got)
	}
}

func TestSolveInvalidDisks(t *testing.T) {
	tests := []struct {
		path string
		code errors.Code
	}{
		{"/v1/solve/abc", errors.ErrCodeInvalidInput},
		{"/v1/solve/-1", errors.ErrCodeInvalidInput},
		{"/v1/solve/21", errors.ErrCodeInvalidDiskCount},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, newTestServer(), http.MethodGet, tt.path, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if body := decodeError(t, rec); body.Code != tt.code {
				t.Errorf("code = %s, want %s", body.Code, tt.code)
			}
		})
	}
}

func TestSolveCustomMax(t *testing.T) {
	s := newTestServer(WithMaxDisks(4))
	if rec := do(t, s, http.MethodGet, "/v1/solve/5", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/v1/solve/4", nil); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestBoard(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/v1/board/2", "  #     |     |  \n ###    |     |  \n===== ===== =====\n"},
		{"/v1/board/2?step=3", "  |     |     #  \n  |     |    ### \n===== ===== =====\n"},
		{"/v1/board/1?fill=*&base=-", " *   |   | \n--- --- ---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, newTestServer(), http.MethodGet, tt.path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if got := rec.Body.String(); got != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
			if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") {
				t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestBoardInvalidStep(t *testing.T) {
	for _, path := range []string{"/v1/board/2?step=x", "/v1/board/2?step=4", "/v1/board/2?step=-1"} {
		rec := do(t, newTestServer(), http.MethodGet, path, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400", path, rec.Code)
		}
	}
}

func solvedTranscript(t *testing.T, n int) *hio.Transcript {
	t.Helper()
	moves, b, err := hanoi.Record(context.Background(), n)
	if err != nil {
		t.Fatal(err)
	}
	return hio.NewTranscript(n, moves, b)
}

func encode(t *testing.T, tr *hio.Transcript) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := hio.WriteJSON(tr, &buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestVerify(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/v1/verify", encode(t, solvedTranscript(t, 3)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got verifyResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if !got.Valid || got.Disks != 3 || got.Moves != 7 {
		t.Errorf("response = %+v", got)
	}
}

func TestVerifyRejects(t *testing.T) {
	illegal := solvedTranscript(t, 3)
	illegal.Moves[1], illegal.Moves[2] = illegal.Moves[2], illegal.Moves[1]

	tooBig := solvedTranscript(t, 2)
	tooBig.Disks = 40

	tests := []struct {
		name   string
		body   []byte
		status int
		code   errors.Code
	}{
		{"malformed", []byte("{"), http.StatusUnprocessableEntity, errors.ErrCodeInvalidTranscript},
		{"illegal move", encode(t, illegal), http.StatusUnprocessableEntity, errors.ErrCodeInvalidTranscript},
		{"too many disks", encode(t, tooBig), http.StatusBadRequest, errors.ErrCodeInvalidDiskCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(), http.MethodPost, "/v1/verify", tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			var got verifyResponse
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if got.Valid || got.Code != tt.code || got.Message == "" {
				t.Errorf("response = %+v", got)
			}
		})
	}
}

func TestNotFoundAndMethod(t *testing.T) {
	s := newTestServer()
	rec := do(t, s, http.MethodGet, "/v2/nothing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown route = %d, want 404", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != errors.ErrCodeNotFound {
		t.Errorf("code = %s", body.Code)
	}
	if rec := do(t, s, http.MethodGet, "/v1/verify", nil); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/verify = %d, want 405", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/healthz", nil)
	if id := rec.Header().Get(RequestIDHeader); len(id) != 36 {
		t.Errorf("generated request ID = %q, want a UUID", id)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if id := rec.Header().Get(RequestIDHeader); id != "abc-123" {
		t.Errorf("request ID = %q, want the client's", id)
	}
}

func TestRecover(t *testing.T) {
	h := RequestID(Recover(log.New(io.Discard))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != errors.ErrCodeInternal {
		t.Errorf("code = %s", body.Code)
	}
}

type httpEvents struct {
	mu       sync.Mutex
	requests int
	statuses []int
}

func (e *httpEvents) OnRequest(context.Context, string, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.requests++
}

func (e *httpEvents) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statuses = append(e.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	events := &httpEvents{}
	observability.SetHTTPHooks(events)
	defer observability.Reset()

	s := newTestServer()
	do(t, s, http.MethodGet, "/healthz", nil)
	do(t, s, http.MethodGet, "/v1/solve/x", nil)

	if events.requests != 2 {
		t.Errorf("requests = %d, want 2", events.requests)
	}
	if len(events.statuses) != 2 || events.statuses[0] != 200 || events.statuses[1] != 400 {
		t.Errorf("statuses = %v, want [200 400]", events.statuses)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	s := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
