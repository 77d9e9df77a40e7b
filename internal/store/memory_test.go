package store

import (
	"context"
	"sort"
	"testing"
	"time"

	"groupadmin/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a store whose clock advances one minute per call
func newTestStore() *MemoryStore {
	s := NewMemoryStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return s
}

func seed(t *testing.T, s *MemoryStore, names ...string) []*models.Group {
	t.Helper()

	groups := make([]*models.Group, 0, len(names))
	for i, name := range names {
		g, err := s.Create(context.Background(), models.CreateGroupRequest{
			Name:   name,
			CallNo: int64(i + 1),
		})
		require.NoError(t, err)
		groups = append(groups, g)
	}
	return groups
}

func TestMemoryStoreCreate(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	g, err := s.Create(context.Background(), models.CreateGroupRequest{Name: "gophers", Description: "go chat"})
	require.NoError(t, err)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "gophers", g.Name)
	assert.Equal(t, "go chat", g.Description)
	assert.False(t, g.Disabled)
	assert.False(t, g.Mute)

	_, err = s.Create(context.Background(), models.CreateGroupRequest{Name: "  "})
	require.ErrorIs(t, err, ErrNameRequired)
}

func TestMemoryStoreListSortAndPage(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	seed(t, s, "a", "b", "c", "d", "e")
	ctx := context.Background()

	page, err := s.List(ctx, Query{Current: 1, PageSize: 2, Sort: Sort{Field: "updatedAt", Order: Ascend}})
	require.NoError(t, err)
	require.Len(t, page.Groups, 2)
	assert.Equal(t, "a", page.Groups[0].Name)
	assert.Equal(t, "b", page.Groups[1].Name)
	assert.Equal(t, 5, page.Pagination.Total)

	page, err = s.List(ctx, Query{Current: 3, PageSize: 2, Sort: Sort{Field: "updatedAt", Order: Ascend}})
	require.NoError(t, err)
	require.Len(t, page.Groups, 1)
	assert.Equal(t, "e", page.Groups[0].Name)

	page, err = s.List(ctx, Query{Sort: Sort{Field: "updatedAt", Order: Descend}})
	require.NoError(t, err)
	assert.Equal(t, "e", page.Groups[0].Name)
	assert.Equal(t, DefaultPageSize, page.Pagination.PageSize)

	page, err = s.List(ctx, Query{Current: 10, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Groups)
}

func TestMemoryStoreListFilters(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	groups := seed(t, s, "alpha", "beta", "gamma")
	ctx := context.Background()

	_, err := s.SetFlag(ctx, groups[0].ID, models.FlagDisabled, true)
	require.NoError(t, err)
	_, err = s.SetFlag(ctx, groups[1].ID, models.FlagMute, true)
	require.NoError(t, err)

	yes := true
	page, err := s.List(ctx, Query{Disabled: &yes})
	require.NoError(t, err)
	require.Len(t, page.Groups, 1)
	assert.Equal(t, "alpha", page.Groups[0].Name)

	no := false
	page, err = s.List(ctx, Query{Disabled: &no, Mute: &no})
	require.NoError(t, err)
	require.Len(t, page.Groups, 1)
	assert.Equal(t, "gamma", page.Groups[0].Name)

	page, err = s.List(ctx, Query{Name: "ET"})
	require.NoError(t, err)
	require.Len(t, page.Groups, 1)
	assert.Equal(t, "beta", page.Groups[0].Name)
}

func TestMemoryStoreFlagsAreIndependent(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	g := seed(t, s, "alpha")[0]
	ctx := context.Background()

	got, err := s.SetFlag(ctx, g.ID, models.FlagDisabled, true)
	require.NoError(t, err)
	assert.True(t, got.Disabled)
	assert.False(t, got.Mute)

	got, err = s.SetFlag(ctx, g.ID, models.FlagMute, true)
	require.NoError(t, err)
	assert.True(t, got.Disabled)
	assert.True(t, got.Mute)

	got, err = s.SetFlag(ctx, g.ID, models.FlagDisabled, false)
	require.NoError(t, err)
	assert.False(t, got.Disabled)
	assert.True(t, got.Mute)
	assert.True(t, got.UpdatedAt.After(g.UpdatedAt))

	_, err = s.SetFlag(ctx, "missing", models.FlagMute, true)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUpdateAndRemove(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	groups := seed(t, s, "alpha", "beta", "gamma")
	ctx := context.Background()

	got, err := s.Update(ctx, groups[0].ID, models.UpdateGroupRequest{Name: "alpha", Description: "first"})
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Name)
	assert.Equal(t, "first", got.Description)

	_, err = s.Update(ctx, groups[0].ID, models.UpdateGroupRequest{Description: "no name"})
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = s.Update(ctx, "missing", models.UpdateGroupRequest{Name: "x"})
	require.ErrorIs(t, err, ErrNotFound)

	removed, err := s.Remove(ctx, []string{groups[0].ID, groups[1].ID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = s.Get(ctx, groups[0].ID)
	require.ErrorIs(t, err, ErrNotFound)

	left, err := s.Get(ctx, groups[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "gamma", left.Name)
}

func TestMemoryStoreUpdateClearsDescription(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	ctx := context.Background()
	g, err := s.Create(ctx, models.CreateGroupRequest{Name: "a", Description: "old"})
	require.NoError(t, err)

	got, err := s.Update(ctx, g.ID, models.UpdateGroupRequest{Name: "a", Description: ""})
	require.NoError(t, err)
	assert.Empty(t, got.Description)

	stored, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Description)
}

func TestMemoryStoreTiesPageByID(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	ctx := context.Background()
	var want []string
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		g, err := s.Create(ctx, models.CreateGroupRequest{Name: name, CallNo: 7})
		require.NoError(t, err)
		want = append(want, g.ID)
	}
	sort.Strings(want)

	for _, sorter := range []Sort{{}, {Field: "callNo", Order: Descend}} {
		var got []string
		for page := 1; page <= 3; page++ {
			res, err := s.List(ctx, Query{Current: page, PageSize: 2, Sort: sorter})
			require.NoError(t, err)
			for _, g := range res.Groups {
				got = append(got, g.ID)
			}
		}
		assert.Equal(t, want, got, "sort %q", sorter.String())
	}
}

func TestQueryNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       Query
		current  int
		pageSize int
	}{
		{name: "defaults", in: Query{}, current: 1, pageSize: DefaultPageSize},
		{name: "kept", in: Query{Current: 3, PageSize: 50}, current: 3, pageSize: 50},
		{name: "clamped", in: Query{Current: 2, PageSize: 500}, current: 2, pageSize: MaxPageSize},
		{name: "negative", in: Query{Current: -1, PageSize: -5}, current: 1, pageSize: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Normalize()
			assert.Equal(t, tt.current, q.Current)
			assert.Equal(t, tt.pageSize, q.PageSize)
		})
	}
}
