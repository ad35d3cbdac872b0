package planner

import (
	"context"
	"errors"
	"testing"

	"eventura/models"
)

type fakeAPI struct {
	planners   []models.Planner
	events     map[int][]models.Event
	plannerErr error
	created    []models.Planner
	deleted    []int
	listCalls  int
}

func (f *fakeAPI) Planners(ctx context.Context) ([]models.Planner, error) {
	f.listCalls++
	if f.plannerErr != nil {
		return nil, f.plannerErr
	}
	return f.planners, nil
}

func (f *fakeAPI) EventsByPlanner(ctx context.Context, plannerID int) ([]models.Event, error) {
	return f.events[plannerID], nil
}

func (f *fakeAPI) CreatePlanner(ctx context.Context, p models.Planner) (*models.Planner, error) {
	f.created = append(f.created, p)
	return &p, nil
}

func (f *fakeAPI) UpdatePlanner(ctx context.Context, id int, p models.Planner) (*models.Planner, error) {
	return &p, nil
}

func (f *fakeAPI) DeletePlanner(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func directoryFixture() []models.Planner {
	return []models.Planner{
		{ID: 1, FullName: "Asha Menon", Specialization: "Wedding", City: "Mumbai"},
		{ID: 2, FullName: "Rohit Shah", Specialization: "Corporate", City: "Delhi"},
		{ID: 3, FullName: "Priya Wedding Co", Specialization: "", City: "Mumbai"},
		{ID: 4, FullName: "Karan Events", Specialization: "Birthday", City: ""},
	}
}

func TestFilterByTypeAndLocation(t *testing.T) {
	got := Filter(directoryFixture(), models.PlannerFilter{Type: "wedding", Location: "mumbai"})

	// Planner 3 has no specialization recorded, so the type filter does not
	// exclude it; planner 4 has no city recorded, but the type filter does.
	if len(got) != 2 {
		t.Fatalf("got %d planners, want 2: %+v", len(got), got)
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("got ids %d,%d, want 1,3", got[0].ID, got[1].ID)
	}
}

func TestFilterQueryMatchesNameOrSpecialization(t *testing.T) {
	got := Filter(directoryFixture(), models.PlannerFilter{Query: "wedding"})
	if len(got) != 2 {
		t.Fatalf("got %d planners, want 2", len(got))
	}

	got = Filter(directoryFixture(), models.PlannerFilter{Query: "rohit"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("query by name failed: %+v", got)
	}
}

func TestFilterBudgetMatchesName(t *testing.T) {
	got := Filter(directoryFixture(), models.PlannerFilter{Budget: "events"})
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("budget filter: got %+v, want planner 4", got)
	}
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	got := Filter(directoryFixture(), models.PlannerFilter{})
	if len(got) != 4 {
		t.Fatalf("got %d planners, want all 4", len(got))
	}
}

func TestPortfolioMergesEvents(t *testing.T) {
	api := &fakeAPI{
		planners: directoryFixture(),
		events: map[int][]models.Event{
			1: {{ID: 10, Name: "Beach Wedding", Price: 50000}},
		},
	}
	svc := &DefaultPlannerService{API: api}

	p, err := svc.Portfolio(context.Background(), 1)
	if err != nil {
		t.Fatalf("Portfolio: %v", err)
	}
	if len(p.Events) != 1 || p.Events[0].Price != 50000 {
		t.Fatalf("events not merged: %+v", p.Events)
	}
}

func TestPortfolioUnknownPlanner(t *testing.T) {
	svc := &DefaultPlannerService{API: &fakeAPI{planners: directoryFixture()}}
	if _, err := svc.Portfolio(context.Background(), 99); err == nil {
		t.Fatalf("expected error for unknown planner")
	}
}

func TestCreateRefetchesAuthoritativeList(t *testing.T) {
	api := &fakeAPI{planners: directoryFixture()}
	svc := &DefaultPlannerService{API: api}

	if _, err := svc.Create(context.Background(), models.Planner{FullName: "New"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(api.created) != 1 {
		t.Fatalf("create not relayed")
	}
	if api.listCalls != 1 {
		t.Fatalf("list fetched %d times, want 1 refetch", api.listCalls)
	}
}

func TestDirectoryPropagatesUpstreamError(t *testing.T) {
	svc := &DefaultPlannerService{API: &fakeAPI{plannerErr: errors.New("boom")}}
	if _, err := svc.Directory(context.Background(), models.PlannerFilter{}); err == nil {
		t.Fatalf("expected upstream error")
	}
}
