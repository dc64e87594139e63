package pandascore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLiveMatchesFiltersIncompleteFixtures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/matches/running" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization = %q", got)
		}
		if got := r.URL.Query().Get("page[size]"); got != "5" {
			t.Errorf("page[size] = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// one full fixture, one placeholder with a single opponent
		w.Write([]byte(`[` + mockMatchJSON + `,{"id":2,"status":"running","opponents":[{"opponent":{"id":1,"name":"Solo"}}]}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token", 5)
	matches, err := c.LiveMatches(context.Background())
	if err != nil {
		t.Fatalf("LiveMatches error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1 after filtering", len(matches))
	}
	if matches[0].Team1 != "FaZe Clan" {
		t.Errorf("team1 = %q", matches[0].Team1)
	}
}

func TestUpcomingMatchesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/matches/upcoming" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("sort"); got != "begin_at" {
			t.Errorf("sort = %q", got)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token", 5)
	matches, err := c.UpcomingMatches(context.Background())
	if err != nil {
		t.Fatalf("UpcomingMatches error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("got %d matches, want 0", len(matches))
	}
}

func TestMatchesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-token", 5)
	if _, err := c.LiveMatches(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 403")
	}
}
