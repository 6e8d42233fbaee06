package update

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexget/lexidict/internal/logging"
	"github.com/lexget/lexidict/internal/model"
)

// workerEvents records every notification in arrival order so tests can
// check the ordering guarantees, not just the final state.
type workerEvents struct {
	mu     sync.Mutex
	events []string
	done   chan struct{}
	once   sync.Once
}

func newWorkerEvents() *workerEvents {
	return &workerEvents{done: make(chan struct{})}
}

func (e *workerEvents) bind(w *worker) {
	w.onProgress = func(percent int) {
		e.record("progress:" + strconv.Itoa(percent))
	}
	w.onStatus = func(message string) {
		e.record("status:" + message)
		e.once.Do(func() { close(e.done) })
	}
	w.onComplete = func() {
		e.record("complete")
		e.once.Do(func() { close(e.done) })
	}
}

func (e *workerEvents) record(event string) {
	e.mu.Lock()
	e.events = append(e.events, event)
	e.mu.Unlock()
}

func (e *workerEvents) wait(t *testing.T) []string {
	t.Helper()
	select {
	case <-e.done:
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for terminal notification")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.events...)
}

func progressSequence(t *testing.T, events []string) []int {
	t.Helper()
	var seq []int
	for _, ev := range events {
		if !strings.HasPrefix(ev, "progress:") {
			continue
		}
		p, err := strconv.Atoi(strings.TrimPrefix(ev, "progress:"))
		require.NoError(t, err)
		seq = append(seq, p)
	}
	return seq
}

func TestWorker_Download(t *testing.T) {
	payload := bytes.Repeat([]byte("a"), 20000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	w := newWorker(srv.URL, "/downloads/LexiDict_2.0.0", fs, logging.Nop().Update)
	events := newWorkerEvents()
	events.bind(w)

	w.start()
	got := events.wait(t)

	// Exactly one terminal notification, strictly after the last progress.
	require.NotEmpty(t, got)
	assert.Equal(t, "complete", got[len(got)-1])
	for _, ev := range got[:len(got)-1] {
		assert.True(t, strings.HasPrefix(ev, "progress:"), "unexpected event before terminal: %s", ev)
	}

	// Progress is non-decreasing and ends at 100.
	seq := progressSequence(t, got)
	require.NotEmpty(t, seq)
	for i := 1; i < len(seq); i++ {
		assert.GreaterOrEqual(t, seq[i], seq[i-1])
	}
	assert.Equal(t, 100, seq[len(seq)-1])

	assert.Equal(t, model.TaskStatusCompleted, w.task.Status)
	assert.Equal(t, int64(len(payload)), w.task.BytesReceived)

	data, err := afero.ReadFile(fs, "/downloads/LexiDict_2.0.0")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestWorker_ZeroContentLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "0")
	}))
	defer srv.Close()

	w := newWorker(srv.URL, "/downloads/artifact", afero.NewMemMapFs(), logging.Nop().Update)
	events := newWorkerEvents()
	events.bind(w)

	w.start()
	got := events.wait(t)

	// Never a completion, always a failure.
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "no content received")
	assert.Equal(t, model.TaskStatusError, w.task.Status)
}

func TestWorker_UnknownContentLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Force chunked encoding so no content length is declared.
		flusher := w.(http.Flusher)
		_, _ = fmt.Fprint(w, "partial")
		flusher.Flush()
	}))
	defer srv.Close()

	w := newWorker(srv.URL, "/downloads/artifact", afero.NewMemMapFs(), logging.Nop().Update)
	events := newWorkerEvents()
	events.bind(w)

	w.start()
	got := events.wait(t)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "no content received")
}

func TestWorker_Non2xxResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	w := newWorker(srv.URL, "/downloads/artifact", afero.NewMemMapFs(), logging.Nop().Update)
	events := newWorkerEvents()
	events.bind(w)

	w.start()
	got := events.wait(t)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "unexpected status")
	assert.Equal(t, model.TaskStatusError, w.task.Status)
}

func TestWorker_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	w := newWorker(url, "/downloads/artifact", afero.NewMemMapFs(), logging.Nop().Update)
	events := newWorkerEvents()
	events.bind(w)

	w.start()
	got := events.wait(t)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "network error")
}

func TestWorker_LocalWriteError(t *testing.T) {
	payload := bytes.Repeat([]byte("a"), 1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	w := newWorker(srv.URL, "/downloads/artifact", fs, logging.Nop().Update)
	events := newWorkerEvents()
	events.bind(w)

	w.start()
	got := events.wait(t)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "cannot create")
	assert.Equal(t, model.TaskStatusError, w.task.Status)
}
