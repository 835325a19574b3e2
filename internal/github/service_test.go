package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGitHub serves a listing with two valid repos and one missing html_url.
// The readme endpoint answers for "infra" only.
type fakeGitHub struct {
	srv          *httptest.Server
	listingCalls atomic.Int32
	readmeCalls  atomic.Int32
	listingCode  atomic.Int32
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	t.Helper()

	f := &fakeGitHub{}
	f.listingCode.Store(http.StatusOK)

	mux := http.NewServeMux()
	mux.HandleFunc("/users/testuser/repos", func(w http.ResponseWriter, r *http.Request) {
		f.listingCalls.Add(1)
		if code := int(f.listingCode.Load()); code != http.StatusOK {
			w.WriteHeader(code)
			return
		}
		fmt.Fprint(w, `[
			{"name": "infra", "html_url": "https://github.com/testuser/infra",
			 "description": "IaC", "topics": ["DevOps"], "language": "HCL",
			 "stargazers_count": 3, "updated_at": "2025-05-01T00:00:00Z"},
			{"name": "broken", "description": "no html_url here"},
			{"name": "scanner", "html_url": "https://github.com/testuser/scanner",
			 "homepage": "https://scanner.example.com", "topics": ["security"],
			 "stargazers_count": 7, "updated_at": "2025-04-01T00:00:00Z"}
		]`)
	})
	mux.HandleFunc("/repos/testuser/infra/readme", func(w http.ResponseWriter, r *http.Request) {
		f.readmeCalls.Add(1)
		fmt.Fprint(w, strings.Repeat("x", 500))
	})
	mux.HandleFunc("/repos/testuser/scanner/readme", func(w http.ResponseWriter, r *http.Request) {
		f.readmeCalls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeGitHub) service(ttl time.Duration) *Service {
	client := &Client{
		Username: "testuser",
		BaseURL:  f.srv.URL,
		HTTP:     f.srv.Client(),
	}
	return NewService(client, ttl)
}

func TestFetchReposDropsMalformedAndCaches(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(time.Minute)

	projects, err := svc.FetchRepos(context.Background(), nil, 6)
	require.NoError(t, err)

	// The record without html_url is dropped; its siblings survive.
	require.Len(t, projects, 2)
	assert.Equal(t, "infra", projects[0].Name)
	assert.Equal(t, "scanner", projects[1].Name)

	// Readme previews: capped at 400 chars, absent on 404.
	assert.Len(t, projects[0].ReadmePreview, 400)
	assert.Empty(t, projects[1].ReadmePreview)

	// A second call is served from the cache.
	again, err := svc.FetchRepos(context.Background(), nil, 6)
	require.NoError(t, err)
	assert.Equal(t, projects, again)
	assert.Equal(t, int32(1), fake.listingCalls.Load())
}

func TestFetchReposFiltersCachedSuperset(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(time.Minute)

	_, err := svc.FetchRepos(context.Background(), nil, 0)
	require.NoError(t, err)

	// Filter and limit apply to the cached full list without a remote call.
	filtered, err := svc.FetchRepos(context.Background(), []string{"SECURITY"}, 3)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "scanner", filtered[0].Name)
	assert.Equal(t, int32(1), fake.listingCalls.Load())
}

func TestFetchReposTruncates(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(time.Minute)

	projects, err := svc.FetchRepos(context.Background(), nil, 1)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "infra", projects[0].Name, "truncation keeps the listing order")
}

func TestFetchReposExpiredCacheRefetches(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(10 * time.Millisecond)

	_, err := svc.FetchRepos(context.Background(), nil, 0)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = svc.FetchRepos(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(2), fake.listingCalls.Load())
}

func TestFetchReposRemoteUnavailable(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(time.Minute)
	fake.listingCode.Store(http.StatusInternalServerError)

	_, err := svc.FetchRepos(context.Background(), nil, 6)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestFetchReposTransportError(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(time.Minute)
	fake.srv.Close()

	_, err := svc.FetchRepos(context.Background(), nil, 6)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestWarmCacheSwallowsFailure(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(time.Minute)
	fake.listingCode.Store(http.StatusForbidden)

	// Must not panic or error; the cache simply stays empty.
	svc.WarmCache(context.Background())

	fake.listingCode.Store(http.StatusOK)
	projects, err := svc.FetchRepos(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Len(t, projects, 2, "next consumer read fetches on demand")
}

func TestClearCacheForcesRefetch(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(time.Minute)

	_, err := svc.FetchRepos(context.Background(), nil, 0)
	require.NoError(t, err)

	svc.ClearCache()

	_, err = svc.FetchRepos(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(2), fake.listingCalls.Load())
}

func TestRefreshPeriodically(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RefreshPeriodically(ctx, 15*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return fake.listingCalls.Load() >= 2
	}, time.Second, 5*time.Millisecond, "ticker should repopulate the cache")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresh loop did not stop on cancellation")
	}
}

func TestRefreshPeriodicallySurvivesRemoteFailure(t *testing.T) {
	fake := newFakeGitHub(t)
	svc := fake.service(time.Minute)
	fake.listingCode.Store(http.StatusBadGateway)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RefreshPeriodically(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return fake.listingCalls.Load() >= 2
	}, time.Second, 5*time.Millisecond, "failed refreshes keep ticking")

	cancel()
	<-done
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	client := &Client{Username: "testuser", Token: "sekret", BaseURL: srv.URL, HTTP: srv.Client()}
	_, err := client.ListRepos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer sekret", gotAuth)
}
