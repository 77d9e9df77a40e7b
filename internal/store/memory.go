package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"groupadmin/server/internal/models"

	"github.com/google/uuid"
)

// MemoryStore keeps groups in process memory. Used when no DATABASE_URL is set.
type MemoryStore struct {
	mu     sync.RWMutex
	groups map[string]models.Group
	now    func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		groups: make(map[string]models.Group),
		now:    time.Now,
	}
}

func (s *MemoryStore) List(_ context.Context, q Query) (*models.GroupPage, error) {
	q.Normalize()

	s.mu.RLock()
	matched := make([]models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		if matches(g, q) {
			matched = append(matched, g)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return less(matched[i], matched[j], q.Sort)
	})

	total := len(matched)
	start := min(q.Offset(), total)
	end := min(start+q.PageSize, total)

	return &models.GroupPage{
		Groups: matched[start:end],
		Pagination: models.Pagination{
			Current:  q.Current,
			PageSize: q.PageSize,
			Total:    total,
		},
	}, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

func (s *MemoryStore) Create(_ context.Context, req models.CreateGroupRequest) (*models.Group, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	now := s.now()
	g := models.Group{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		CallNo:      req.CallNo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.groups[g.ID] = g
	s.mu.Unlock()

	return &g, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, req models.UpdateGroupRequest) (*models.Group, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, ErrNotFound
	}

	g.Name = req.Name
	g.Description = req.Description
	g.UpdatedAt = s.now()
	s.groups[id] = g

	return &g, nil
}

func (s *MemoryStore) Remove(_ context.Context, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, id := range ids {
		if _, ok := s.groups[id]; ok {
			delete(s.groups, id)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) SetFlag(_ context.Context, id string, flag models.Flag, value bool) (*models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, ErrNotFound
	}

	switch flag {
	case models.FlagDisabled:
		g.Disabled = value
	case models.FlagMute:
		g.Mute = value
	}
	g.UpdatedAt = s.now()
	s.groups[id] = g

	return &g, nil
}

func matches(g models.Group, q Query) bool {
	if q.Name != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(q.Name)) {
		return false
	}
	if q.Disabled != nil && g.Disabled != *q.Disabled {
		return false
	}
	if q.Mute != nil && g.Mute != *q.Mute {
		return false
	}
	return true
}

// less orders by the requested sort, falling back to newest first. Ties are
// broken by id so paging is deterministic.
func less(a, b models.Group, s Sort) bool {
	if s.IsZero() {
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID < b.ID
	}

	var cmp int
	switch s.Field {
	case "updatedAt":
		cmp = a.UpdatedAt.Compare(b.UpdatedAt)
	case "createdAt":
		cmp = a.CreatedAt.Compare(b.CreatedAt)
	case "name":
		cmp = strings.Compare(a.Name, b.Name)
	case "callNo":
		switch {
		case a.CallNo < b.CallNo:
			cmp = -1
		case a.CallNo > b.CallNo:
			cmp = 1
		}
	}

	if cmp == 0 {
		return a.ID < b.ID
	}
	if s.Order == Descend {
		return cmp > 0
	}
	return cmp < 0
}
