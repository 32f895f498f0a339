package store

import (
	"context"
	"sync"
	"testing"

	"tableflip.dev/gorev/pkg/api"
	"tableflip.dev/gorev/pkg/task"
)

func TestFilterChangesResetPage(t *testing.T) {
	s := New(&fakeGateway{}, nil, nil)
	end, _ := task.ParseDate("2026-09-15")

	cases := []struct {
		name  string
		apply func()
	}{
		{"status", func() { s.SetStatusFilter(task.StatusCompleted) }},
		{"search", func() { s.SetSearchTerm("süt") }},
		{"end date", func() { s.SetEndDate(end) }},
		{"page size", func() { s.SetPageSize(25) }},
		{"clear", func() { s.ClearFilters() }},
	}
	for _, tc := range cases {
		s.SetPage(5)
		tc.apply()
		if got := s.Snapshot().Page; got != 1 {
			t.Fatalf("%s: expected page reset to 1, got %d", tc.name, got)
		}
	}

	// SetPage itself must not reset anything.
	s.SetSearchTerm("süt")
	s.SetPage(3)
	snap := s.Snapshot()
	if snap.Page != 3 || snap.Filters.SearchTerm != "süt" {
		t.Fatalf("SetPage must only move the page: %+v", snap)
	}
}

func TestSetPageClampsToOne(t *testing.T) {
	s := New(&fakeGateway{}, nil, nil)
	s.SetPage(0)
	if got := s.Snapshot().Page; got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	s.SetPage(-4)
	if got := s.Snapshot().Page; got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
}

func TestSearchTermIsTrimmed(t *testing.T) {
	s := New(&fakeGateway{}, nil, nil)
	s.SetSearchTerm("  süt al  ")
	if got := s.Snapshot().Filters.SearchTerm; got != "süt al" {
		t.Fatalf("expected trimmed term, got %q", got)
	}
}

func TestClearFiltersDropsEverything(t *testing.T) {
	s := New(&fakeGateway{}, nil, nil)
	end, _ := task.ParseDate("2026-09-15")
	s.SetStatusFilter(task.StatusPending)
	s.SetSearchTerm("süt")
	s.SetEndDate(end)

	s.ClearFilters()

	snap := s.Snapshot()
	if !snap.Filters.IsZero() {
		t.Fatalf("expected zero filters, got %+v", snap.Filters)
	}
}

func TestParamsMirrorState(t *testing.T) {
	s := New(&fakeGateway{}, nil, nil)
	end, _ := task.ParseDate("2026-09-15")
	s.SetStatusFilter(task.StatusCompleted)
	s.SetSearchTerm("plan")
	s.SetEndDate(end)
	s.SetPage(4)

	p := s.Params()
	if p.Page != 4 || p.PageSize != DefaultPageSize || p.Status != task.StatusCompleted ||
		p.SearchTerm != "plan" || p.EndDate == nil {
		t.Fatalf("params out of sync: %+v", p)
	}
}

// blockingGateway lets the test decide the order in which in-flight list
// responses resolve.
type blockingGateway struct {
	fakeGateway
	mu      sync.Mutex
	waiting []chan *task.Page
	arrived chan struct{}
}

func newBlockingGateway() *blockingGateway {
	g := &blockingGateway{arrived: make(chan struct{}, 16)}
	g.fakeGateway.list = func(api.ListParams) (*task.Page, error) {
		release := make(chan *task.Page)
		g.mu.Lock()
		g.waiting = append(g.waiting, release)
		g.mu.Unlock()
		g.arrived <- struct{}{}
		return <-release, nil
	}
	return g
}

func (g *blockingGateway) release(i int, p *task.Page) {
	g.mu.Lock()
	ch := g.waiting[i]
	g.mu.Unlock()
	ch <- p
}

func TestConcurrentFetchesLastResponseWins(t *testing.T) {
	first := pageWith([]task.Task{{ID: 1, Title: "first response"}}, 1, 0, 0)
	second := pageWith([]task.Task{{ID: 2, Title: "second response"}}, 1, 0, 0)

	// Order A: the later request resolves last and wins.
	gw := newBlockingGateway()
	s := New(gw, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.FetchTasks(context.Background())
		}()
		<-gw.arrived
	}
	gw.release(0, first)
	gw.release(1, second)
	wg.Wait()

	if got := s.Snapshot().Tasks[0].Title; got != "second response" {
		t.Fatalf("expected the last resolver to win, got %q", got)
	}

	// Order B: the earlier request resolves last; it still wins, even though
	// it was issued first. The store applies no fencing.
	gw = newBlockingGateway()
	s = New(gw, nil, nil)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.FetchTasks(context.Background())
		}()
		<-gw.arrived
	}
	gw.release(1, second)
	gw.release(0, first)
	wg.Wait()

	if got := s.Snapshot().Tasks[0].Title; got != "first response" {
		t.Fatalf("expected the last resolver to win regardless of issue order, got %q", got)
	}
}

func TestEventsEmitOnChange(t *testing.T) {
	s := New(&fakeGateway{}, nil, nil)

	s.SetSearchTerm("süt")
	select {
	case ev := <-s.Events():
		if ev.Type != EventStateChanged {
			t.Fatalf("unexpected event type %v", ev.Type)
		}
	default:
		t.Fatalf("expected an event after a filter change")
	}
}
