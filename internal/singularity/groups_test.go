package singularity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaskGroupCachesResolution(t *testing.T) {
	var listCalls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/task-group", r.URL.Path)
		require.Equal(t, "P-1", r.URL.Query().Get("parent"))
		atomic.AddInt64(&listCalls, 1)
		w.Write([]byte(`[{"id":"Q-1","title":"Backlog","parent":"P-1"},{"id":"Q-2","title":"Done","parent":"P-1"}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	first, err := client.DefaultTaskGroup(ctx, "P-1")
	require.NoError(t, err)
	assert.Equal(t, "Q-1", first, "default group must be the first listed")

	second, err := client.DefaultTaskGroup(ctx, "P-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.EqualValues(t, 1, atomic.LoadInt64(&listCalls),
		"two resolutions must issue exactly one network call")
}

func TestDefaultTaskGroupPerProjectKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("parent") {
		case "P-1":
			w.Write([]byte(`[{"id":"Q-1","parent":"P-1"}]`))
		case "P-2":
			w.Write([]byte(`[{"id":"Q-9","parent":"P-2"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	g1, err := client.DefaultTaskGroup(ctx, "P-1")
	require.NoError(t, err)
	g2, err := client.DefaultTaskGroup(ctx, "P-2")
	require.NoError(t, err)

	assert.Equal(t, "Q-1", g1)
	assert.Equal(t, "Q-9", g2)
}

func TestDefaultTaskGroupNoGroups(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	group, err := client.DefaultTaskGroup(context.Background(), "P-empty")
	require.Error(t, err)
	assert.Empty(t, group)
	assert.True(t, IsNoTaskGroup(err), "expected NoTaskGroupError, got %v", err)

	var ng *NoTaskGroupError
	require.ErrorAs(t, err, &ng)
	assert.Equal(t, "P-empty", ng.ProjectID)
}

func TestDefaultTaskGroupFailureNotCached(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"id":"Q-5","parent":"P-1"}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := client.DefaultTaskGroup(ctx, "P-1")
	require.Error(t, err, "first call must propagate the HTTP failure")
	assert.False(t, IsNoTaskGroup(err), "HTTP failure is not the no-group condition")

	group, err := client.DefaultTaskGroup(ctx, "P-1")
	require.NoError(t, err, "second call must retry against the network")
	assert.Equal(t, "Q-5", group)
	assert.EqualValues(t, 2, atomic.LoadInt64(&calls))
}

func TestInvalidateGroupCache(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`[{"id":"Q-1","parent":"P-1"}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := client.DefaultTaskGroup(ctx, "P-1")
	require.NoError(t, err)

	client.InvalidateGroupCache("P-1")

	_, err = client.DefaultTaskGroup(ctx, "P-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt64(&calls),
		"invalidation must force a fresh listing request")
}

func TestInvalidateGroupCacheAll(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`[{"id":"Q-1"}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, _ = client.DefaultTaskGroup(ctx, "P-1")
	_, _ = client.DefaultTaskGroup(ctx, "P-2")

	client.InvalidateGroupCache("")

	_, _ = client.DefaultTaskGroup(ctx, "P-1")
	_, _ = client.DefaultTaskGroup(ctx, "P-2")

	assert.EqualValues(t, 4, atomic.LoadInt64(&calls))
}

func TestDefaultTaskGroupEmptyProjectID(t *testing.T) {
	client := newTestClient(t, "http://localhost:0")
	_, err := client.DefaultTaskGroup(context.Background(), "")
	require.Error(t, err)
}

func TestListTaskGroupsBoundsPageSize(t *testing.T) {
	var gotMaxCount string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMaxCount = r.URL.Query().Get("maxCount")
		w.Write([]byte(`[{"id":"Q-1"}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.DefaultTaskGroup(context.Background(), "P-1")
	require.NoError(t, err)

	assert.Equal(t, "1", gotMaxCount, "resolution only needs the first group")
}

func TestCreateTaskGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/task-group", r.URL.Path)
		w.Write([]byte(`{"id":"Q-new","title":"Sprint","parent":"P-1"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	group, err := client.CreateTaskGroup(context.Background(), TaskGroupInput{Title: "Sprint", Parent: "P-1"})
	require.NoError(t, err)
	assert.Equal(t, "Q-new", group.ID)
}

func TestCreateTaskGroupValidation(t *testing.T) {
	client := newTestClient(t, "http://localhost:0")

	_, err := client.CreateTaskGroup(context.Background(), TaskGroupInput{Parent: "P-1"})
	require.Error(t, err, "missing title")

	_, err = client.CreateTaskGroup(context.Background(), TaskGroupInput{Title: "Sprint"})
	require.Error(t, err, "missing parent")
}
