package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobpulse/internal/api/backend"
	"jobpulse/internal/jobdata"
	"jobpulse/internal/models"

	"go.uber.org/zap"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, 5*time.Second, staticToken(token), zap.NewNop())
}

func TestSearch_DecodesEnvelope(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs/search" {
			t.Errorf("path = %q, want /jobs/search", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "go" {
			t.Errorf("query param = %q, want go", r.URL.Query().Get("query"))
		}
		w.Write([]byte(`{"status":"success","data":[{"_id":"b1","title":"Go Dev","company":"Acme"}]}`))
	})

	jobs, err := client.Search(context.Background(), models.SearchFilters{Query: "go"}, 0, 20)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "b1" || jobs[0].Company.Name != "Acme" {
		t.Errorf("jobs = %+v, want normalized b1 from Acme", jobs)
	}
}

func TestSearch_ErrorEnvelopeIsFailure(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 with an error envelope is still a failure
		w.Write([]byte(`{"status":"error","message":"database down"}`))
	})

	_, err := client.Search(context.Background(), models.SearchFilters{Query: "go"}, 0, 20)
	if !errors.Is(err, jobdata.ErrSourceUnavailable) {
		t.Errorf("err = %v, want ErrSourceUnavailable", err)
	}
}

func TestStatusCodeClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, jobdata.ErrAuthRequired},
		{"forbidden", http.StatusForbidden, jobdata.ErrAuthRequired},
		{"not found", http.StatusNotFound, jobdata.ErrNotFound},
		{"conflict", http.StatusConflict, jobdata.ErrAlreadyExists},
		{"bad request", http.StatusBadRequest, jobdata.ErrValidation},
		{"server error", http.StatusInternalServerError, jobdata.ErrSourceUnavailable},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
			})

			err := client.SaveJob(context.Background(), "j1")
			if !errors.Is(err, c.want) {
				t.Errorf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestAuthorizationHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"success","data":[]}`))
	})

	if _, err := client.SavedJobs(context.Background()); err != nil {
		t.Fatalf("SavedJobs: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret")
	}
}

func TestAuthorizationHeader_OmittedWhenUnauthenticated(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"status":"success","data":[]}`))
	})

	if _, err := client.Featured(context.Background(), 5); err != nil {
		t.Fatalf("Featured: %v", err)
	}
}

func TestSaveJob_EmptyIDRejectedBeforeNetwork(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation failures must not reach the network")
	})

	if err := client.SaveJob(context.Background(), ""); !errors.Is(err, jobdata.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
