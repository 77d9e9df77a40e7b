package console_test

import (
	"context"
	"errors"
	"sync"

	"groupadmin/server/internal/console"
	"groupadmin/server/internal/models"
)

var errBoom = errors.New("boom")

// fakeService records calls and serves a fixed set of rows
type fakeService struct {
	mu        sync.Mutex
	rows      []models.Group
	fail      bool
	failQuery bool
	queries   []models.GroupQuery
	calls     []string
	removed   []string
	flags     []models.DisabledRequest
	mutes     []models.MuteRequest
}

func (f *fakeService) record(call string) error {
	f.calls = append(f.calls, call)
	if f.fail {
		return errBoom
	}
	return nil
}

func (f *fakeService) QueryGroups(_ context.Context, q models.GroupQuery) (*models.GroupPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, q)
	if f.failQuery {
		return nil, errBoom
	}
	rows := make([]models.Group, len(f.rows))
	copy(rows, f.rows)
	return &models.GroupPage{
		Groups:     rows,
		Pagination: models.Pagination{Current: q.Current, PageSize: q.PageSize, Total: len(rows)},
	}, nil
}

func (f *fakeService) AddGroup(_ context.Context, req models.CreateGroupRequest) (*models.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("add"); err != nil {
		return nil, err
	}
	return &models.Group{ID: "new", Name: req.Name}, nil
}

func (f *fakeService) UpdateGroup(_ context.Context, req models.UpdateGroupRequest) (*models.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("update:" + req.ID); err != nil {
		return nil, err
	}
	return &models.Group{ID: req.ID, Name: req.Name}, nil
}

func (f *fakeService) RemoveGroups(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removed = append(f.removed, ids...)
	return f.record("remove")
}

func (f *fakeService) SetDisabled(_ context.Context, id string, disabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.flags = append(f.flags, models.DisabledRequest{ID: id, Disabled: disabled})
	return f.record("disabled")
}

func (f *fakeService) SetMute(_ context.Context, id string, mute bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mutes = append(f.mutes, models.MuteRequest{ID: id, Mute: mute})
	return f.record("mute")
}

func (f *fakeService) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeService) lastQuery() models.GroupQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

// countingTable is a TableHandle that only counts reload requests
type countingTable struct {
	reloads, rests int
}

func (c *countingTable) Reload(context.Context) error {
	c.reloads++
	return nil
}

func (c *countingTable) ReloadAndRest(context.Context) error {
	c.rests++
	return nil
}

// promptSpy is a Confirmer that records prompts and returns a fixed answer
type promptSpy struct {
	answer  bool
	err     error
	prompts []console.Prompt
}

func (p *promptSpy) Confirm(_ context.Context, prompt console.Prompt) (bool, error) {
	p.prompts = append(p.prompts, prompt)
	return p.answer, p.err
}

func rowsWithCallNo(callNos ...int64) []models.Group {
	rows := make([]models.Group, 0, len(callNos))
	for i, n := range callNos {
		rows = append(rows, models.Group{
			ID:     string(rune('a' + i)),
			Name:   "group-" + string(rune('a'+i)),
			CallNo: n,
		})
	}
	return rows
}
