package state_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"jobpulse/internal/cache"
	"jobpulse/internal/jobdata"
	"jobpulse/internal/models"
	"jobpulse/internal/state"
	"jobpulse/internal/storage/mirror"

	"go.uber.org/zap"
)

// stubSource serves a fixed catalog as the orchestrator's primary tier.
type stubSource struct {
	jobs  []models.Job
	calls int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Search(ctx context.Context, filters models.SearchFilters, page, perPage int) ([]models.Job, error) {
	s.calls++
	return s.jobs, nil
}

func (s *stubSource) Featured(ctx context.Context, limit int) ([]models.Job, error) {
	s.calls++
	return s.jobs, nil
}

func (s *stubSource) Latest(ctx context.Context, limit int) ([]models.Job, error) {
	s.calls++
	return s.jobs, nil
}

func (s *stubSource) Categories(ctx context.Context) ([]models.Category, error) {
	s.calls++
	return []models.Category{}, nil
}

func (s *stubSource) Stats(ctx context.Context) (*models.JobStats, error) {
	s.calls++
	return &models.JobStats{}, nil
}

// fakeAccount scripts the backend account surface and counts every call.
type fakeAccount struct {
	mu sync.Mutex

	saved []models.SavedJob
	apps  []models.Application

	searchErr error
	saveErr   error
	applyErr  error

	searchCalls int
	savedCalls  int
	saveCalls   int
	unsaveCalls int
	appsCalls   int
	applyCalls  int
}

func (f *fakeAccount) Search(ctx context.Context, filters models.SearchFilters, page, perPage int) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return []models.Job{}, nil
}

func (f *fakeAccount) SavedJobs(ctx context.Context) ([]models.SavedJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savedCalls++
	return append([]models.SavedJob(nil), f.saved...), nil
}

func (f *fakeAccount) SaveJob(ctx context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	if !models.ContainsJob(f.saved, jobID) {
		f.saved = append(f.saved, models.SavedJob{Job: models.Job{ID: jobID}, SavedAt: time.Now()})
	}
	return nil
}

func (f *fakeAccount) UnsaveJob(ctx context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsaveCalls++
	kept := f.saved[:0]
	for _, s := range f.saved {
		if s.Job.ID != jobID {
			kept = append(kept, s)
		}
	}
	f.saved = kept
	return nil
}

func (f *fakeAccount) Applications(ctx context.Context) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appsCalls++
	return append([]models.Application(nil), f.apps...), nil
}

func (f *fakeAccount) Apply(ctx context.Context, jobID string, req models.ApplicationRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applyCalls++
	if f.applyErr != nil {
		return f.applyErr
	}
	f.apps = append(f.apps, models.Application{JobID: jobID})
	return nil
}

func (f *fakeAccount) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls + f.savedCalls + f.saveCalls + f.unsaveCalls + f.appsCalls + f.applyCalls
}

// fakeAuth flips between sessions mid-test.
type fakeAuth struct {
	authed bool
	userID string
}

func (f *fakeAuth) IsAuthenticated() bool { return f.authed }
func (f *fakeAuth) UserID() string        { return f.userID }

type fixture struct {
	container *state.Container
	source    *stubSource
	account   *fakeAccount
	auth      *fakeAuth
	store     *mirror.Store
}

func catalog() []models.Job {
	return []models.Job{
		{ID: "j1", Title: "Go Developer", Company: models.Company{Name: "Acme"}, Type: "full-time", Description: "Build backend services in Go."},
		{ID: "j2", Title: "Frontend Engineer", Company: models.Company{Name: "Initech"}, Type: "contract", Description: "React dashboards."},
		{ID: "j3", Title: "Platform Engineer", Company: models.Company{Name: "Acme"}, Type: "full-time", Description: "Kubernetes and Go tooling."},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	c, err := cache.New(5*time.Minute, zap.NewNop())
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}

	source := &stubSource{jobs: catalog()}
	account := &fakeAccount{}
	auth := &fakeAuth{}
	store := mirror.NewStore(mirror.NewMemory(), zap.NewNop())

	container := state.New(state.Deps{
		Orchestrator: jobdata.New(source, nil, &stubSource{}, c, zap.NewNop()),
		Account:      account,
		Mirror:       store,
		Auth:         auth,
		Logger:       zap.NewNop(),
	})

	return &fixture{container: container, source: source, account: account, auth: auth, store: store}
}

func TestBootstrap_SkippedOnAuthRoutes(t *testing.T) {
	for _, route := range []string{"/login", "/register", "/login?next=/jobs"} {
		t.Run(route, func(t *testing.T) {
			f := newFixture(t)
			f.container.Bootstrap(context.Background(), route)

			if f.source.calls != 0 {
				t.Errorf("source called %d times on %q, want 0", f.source.calls, route)
			}
			if f.account.totalCalls() != 0 {
				t.Errorf("account called %d times on %q, want 0", f.account.totalCalls(), route)
			}
			if !f.container.Loading() {
				t.Error("loading flag must stay set when bootstrap is skipped")
			}
		})
	}
}

func TestBootstrap_LoadsJobsAndClearsLoading(t *testing.T) {
	f := newFixture(t)
	f.container.Bootstrap(context.Background(), "/")

	if got := f.container.Jobs(); len(got) != 3 {
		t.Errorf("got %d jobs, want 3", len(got))
	}
	if got := f.container.FilteredJobs(); len(got) != 3 {
		t.Errorf("got %d filtered jobs, want all 3 before any filter", len(got))
	}
	if f.container.Loading() {
		t.Error("loading flag must clear after bootstrap")
	}
}

func TestSaveJob_UnauthenticatedSavesLocally(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.container.Bootstrap(ctx, "/")

	res := f.container.SaveJob(ctx, "j1")
	if !res.Success || !res.LocalOnly {
		t.Fatalf("result = %+v, want a successful local-only save", res)
	}
	if f.account.saveCalls != 0 {
		t.Errorf("backend SaveJob called %d times while signed out, want 0", f.account.saveCalls)
	}

	saved := f.container.SavedJobs()
	if len(saved) != 1 || saved[0].Job.ID != "j1" {
		t.Fatalf("saved = %+v, want exactly j1", saved)
	}

	// durable in the mirror, not just in memory
	if mirrored := f.store.SavedJobs(ctx); len(mirrored) != 1 || mirrored[0].Job.ID != "j1" {
		t.Errorf("mirror = %+v, want j1 persisted", mirrored)
	}

	// saving again is a no-op, not a duplicate
	res = f.container.SaveJob(ctx, "j1")
	if !res.Success {
		t.Errorf("repeat save result = %+v, want success no-op", res)
	}
	if saved := f.container.SavedJobs(); len(saved) != 1 {
		t.Errorf("got %d saved jobs after repeat save, want 1", len(saved))
	}
}

func TestSaveJob_UnknownJobRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.container.Bootstrap(ctx, "/")

	if res := f.container.SaveJob(ctx, "nope"); res.Success {
		t.Errorf("result = %+v, want failure for an unknown job", res)
	}
	if res := f.container.SaveJob(ctx, ""); res.Success {
		t.Errorf("result = %+v, want failure for an empty id", res)
	}
}

func TestSaveJob_AuthenticatedUsesBackend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.auth.authed = true
	f.auth.userID = "u1"
	f.container.Bootstrap(ctx, "/")

	res := f.container.SaveJob(ctx, "j2")
	if !res.Success || res.LocalOnly {
		t.Fatalf("result = %+v, want a durable backend save", res)
	}
	if f.account.saveCalls != 1 {
		t.Errorf("backend SaveJob called %d times, want 1", f.account.saveCalls)
	}

	saved := f.container.SavedJobs()
	if len(saved) != 1 || saved[0].Job.ID != "j2" {
		t.Errorf("saved = %+v, want backend-refetched j2", saved)
	}
}

func TestSaveJob_BackendFailureDegradesLocally(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.auth.authed = true
	f.account.saveErr = jobdata.ErrSourceUnavailable
	f.container.Bootstrap(ctx, "/")

	res := f.container.SaveJob(ctx, "j1")
	if !res.Success || !res.LocalOnly {
		t.Fatalf("result = %+v, want a local-only degraded save", res)
	}
	if saved := f.container.SavedJobs(); len(saved) != 1 || saved[0].Job.ID != "j1" {
		t.Errorf("saved = %+v, want j1 held locally", saved)
	}
}

func TestUnsaveJob_RemovesAndPersists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.container.Bootstrap(ctx, "/")

	f.container.SaveJob(ctx, "j1")
	f.container.SaveJob(ctx, "j2")

	res := f.container.UnsaveJob(ctx, "j1")
	if !res.Success {
		t.Fatalf("result = %+v, want success", res)
	}

	saved := f.container.SavedJobs()
	if len(saved) != 1 || saved[0].Job.ID != "j2" {
		t.Errorf("saved = %+v, want only j2 left", saved)
	}
	if mirrored := f.store.SavedJobs(ctx); len(mirrored) != 1 || mirrored[0].Job.ID != "j2" {
		t.Errorf("mirror = %+v, want only j2 left", mirrored)
	}

	// removing a job that was never saved is a soft no-op
	if res := f.container.UnsaveJob(ctx, "j3"); !res.Success {
		t.Errorf("result = %+v, want no-op success", res)
	}
}

func TestApply_UnauthenticatedRequiresAuthWithoutNetwork(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.container.Bootstrap(ctx, "/")

	res := f.container.Apply(ctx, "j1", models.ApplicationRequest{CoverLetter: "Hi"})
	if res.Success || !res.RequireAuth {
		t.Fatalf("result = %+v, want RequireAuth failure", res)
	}
	if f.account.applyCalls != 0 {
		t.Errorf("backend Apply called %d times while signed out, want 0", f.account.applyCalls)
	}
}

func TestApply_SuccessRefetchesApplications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.auth.authed = true
	f.container.Bootstrap(ctx, "/")

	res := f.container.Apply(ctx, "j1", models.ApplicationRequest{CoverLetter: "Hi"})
	if !res.Success {
		t.Fatalf("result = %+v, want success", res)
	}

	apps := f.container.Applications()
	if len(apps) != 1 || apps[0].JobID != "j1" {
		t.Errorf("applications = %+v, want the refetched j1 application", apps)
	}
}

func TestApply_FailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.auth.authed = true
	f.account.applyErr = jobdata.ErrSourceUnavailable
	f.container.Bootstrap(ctx, "/")

	res := f.container.Apply(ctx, "j1", models.ApplicationRequest{})
	if res.Success {
		t.Fatalf("result = %+v, want failure", res)
	}
	if apps := f.container.Applications(); len(apps) != 0 {
		t.Errorf("applications = %+v, want untouched empty list", apps)
	}
}

func TestOnAuthChange_LoginSyncsLocalSaves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.container.Bootstrap(ctx, "/")

	// two local saves while signed out
	f.container.SaveJob(ctx, "j1")
	f.container.SaveJob(ctx, "j2")

	// the account already holds a save from another device
	f.account.saved = []models.SavedJob{{Job: models.Job{ID: "j3"}, SavedAt: time.Now()}}

	f.auth.authed = true
	f.auth.userID = "u1"
	f.container.OnAuthChange(ctx)

	if f.account.saveCalls != 2 {
		t.Errorf("backend SaveJob called %d times, want 2 pushed local saves", f.account.saveCalls)
	}

	saved := f.container.SavedJobs()
	ids := map[string]bool{}
	for _, s := range saved {
		ids[s.Job.ID] = true
	}
	if len(saved) != 3 || !ids["j1"] || !ids["j2"] || !ids["j3"] {
		t.Errorf("saved = %+v, want the union of local and remote saves", saved)
	}

	// the merged view must also be mirrored
	if mirrored := f.store.SavedJobs(ctx); len(mirrored) != 3 {
		t.Errorf("mirror holds %d entries, want 3", len(mirrored))
	}
}

func TestOnAuthChange_LogoutFallsBackToMirror(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.container.Bootstrap(ctx, "/")
	f.container.SaveJob(ctx, "j1")

	f.auth.authed = false
	f.container.OnAuthChange(ctx)

	if saved := f.container.SavedJobs(); len(saved) != 1 || saved[0].Job.ID != "j1" {
		t.Errorf("saved = %+v, want mirror contents after logout", saved)
	}
	if apps := f.container.Applications(); len(apps) != 0 {
		t.Errorf("applications = %+v, want cleared after logout", apps)
	}
}

func TestSetFilters_ZeroFiltersRestoreAllJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.container.Bootstrap(ctx, "/")

	f.container.SetFilters(ctx, models.SearchFilters{Query: "go"})
	f.container.SetFilters(ctx, models.SearchFilters{})

	if got := f.container.FilteredJobs(); len(got) != 3 {
		t.Errorf("got %d filtered jobs, want all 3 restored", len(got))
	}
	if f.account.searchCalls != 1 {
		t.Errorf("backend Search called %d times, want 1 (zero filters must not hit the network)", f.account.searchCalls)
	}
}

func TestSetFilters_BackendFailureFallsBackInMemory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.account.searchErr = jobdata.ErrSourceUnavailable
	f.container.Bootstrap(ctx, "/")

	f.container.SetFilters(ctx, models.SearchFilters{Query: "go"})

	got := f.container.FilteredJobs()
	if len(got) != 2 {
		t.Fatalf("got %d filtered jobs, want 2 matching %q in memory", len(got), "go")
	}
	for _, j := range got {
		if j.ID == "j2" {
			t.Errorf("j2 must not match the %q query", "go")
		}
	}
}

func TestSetFilters_InMemoryTypeAndCompanyMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.account.searchErr = jobdata.ErrSourceUnavailable
	f.container.Bootstrap(ctx, "/")

	f.container.SetFilters(ctx, models.SearchFilters{JobType: "contract"})
	if got := f.container.FilteredJobs(); len(got) != 1 || got[0].ID != "j2" {
		t.Errorf("filtered = %+v, want only the contract role j2", got)
	}

	f.container.SetFilters(ctx, models.SearchFilters{Company: "acme"})
	if got := f.container.FilteredJobs(); len(got) != 2 {
		t.Errorf("got %d filtered jobs, want both Acme roles", len(got))
	}
}
