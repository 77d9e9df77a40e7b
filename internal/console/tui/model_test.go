package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"groupadmin/server/internal/client"
	"groupadmin/server/internal/console"
	"groupadmin/server/internal/models"
	ws "groupadmin/server/internal/websocket"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	mu      sync.Mutex
	rows    []models.Group
	fail    bool
	queries []models.GroupQuery
	mutes   []models.MuteRequest
	removed []string
}

func (s *stubService) QueryGroups(_ context.Context, q models.GroupQuery) (*models.GroupPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	return &models.GroupPage{
		Groups:     append([]models.Group(nil), s.rows...),
		Pagination: models.Pagination{Current: q.Current, PageSize: q.PageSize, Total: len(s.rows)},
	}, nil
}

func (s *stubService) AddGroup(context.Context, models.CreateGroupRequest) (*models.Group, error) {
	return nil, errors.New("not used")
}

func (s *stubService) UpdateGroup(context.Context, models.UpdateGroupRequest) (*models.Group, error) {
	return nil, errors.New("not used")
}

func (s *stubService) RemoveGroups(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("boom")
	}
	s.removed = append(s.removed, ids...)
	return nil
}

func (s *stubService) SetDisabled(context.Context, string, bool) error {
	return nil
}

func (s *stubService) SetMute(_ context.Context, id string, mute bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("boom")
	}
	s.mutes = append(s.mutes, models.MuteRequest{ID: id, Mute: mute})
	return nil
}

func (s *stubService) queryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

// drive runs cmd and feeds every resulting message back into m, skipping
// spinner ticks
func drive(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case nil, spinner.TickMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			drive(t, m, c)
		}
	default:
		_, next := m.Update(msg)
		drive(t, m, next)
	}
}

func press(t *testing.T, m *Model, keys string) {
	t.Helper()
	var msg tea.KeyMsg
	if keys == " " {
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	_, cmd := m.Update(msg)
	drive(t, m, cmd)
}

func newModel(t *testing.T, svc *stubService) *Model {
	t.Helper()
	m := NewModel(context.Background(), svc)
	drive(t, m, m.Init())
	require.Len(t, m.rows, len(svc.rows))
	return m
}

func sample() []models.Group {
	return []models.Group{
		{ID: "a", Name: "alpha", CallNo: 3},
		{ID: "b", Name: "beta", CallNo: 5, Mute: true},
	}
}

func TestInitialLoad(t *testing.T) {
	svc := &stubService{rows: sample()}
	m := newModel(t, svc)

	assert.False(t, m.busy)
	assert.Equal(t, 1, svc.queryCount())
	view := m.View()
	assert.Contains(t, view, "查询表格")
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "已禁言")
}

func TestSelectShowsSummary(t *testing.T) {
	svc := &stubService{rows: sample()}
	m := newModel(t, svc)

	press(t, m, " ")
	assert.True(t, m.console.Table.IsSelected("a"))
	assert.Contains(t, m.View(), "已选择 1 项  服务调用次数总计 3 万")

	press(t, m, " ")
	assert.False(t, m.console.Table.IsSelected("a"))
}

func TestMuteConfirmed(t *testing.T) {
	svc := &stubService{rows: sample()}
	m := newModel(t, svc)

	press(t, m, "m")
	require.NotNil(t, m.confirm)
	assert.Equal(t, "确定禁言该群组吗？", m.confirm.prompt.Content)
	assert.Contains(t, m.View(), "禁言状态")

	press(t, m, "y")
	assert.Nil(t, m.confirm)
	assert.Equal(t, []models.MuteRequest{{ID: "a", Mute: true}}, svc.mutes)
	assert.Equal(t, 2, svc.queryCount())
	require.NotNil(t, m.notice)
	assert.Equal(t, console.NoticeSuccess, m.notice.Kind)
	assert.Equal(t, "成功，即将刷新", m.notice.Text)
}

func TestConfirmWaitsForRunningReload(t *testing.T) {
	svc := &stubService{rows: sample()}
	m := newModel(t, svc)

	press(t, m, "m")
	require.NotNil(t, m.confirm)

	_, reload := m.Update(eventMsg{event: client.Event{Type: ws.EventGroupUpdated}})
	require.True(t, m.busy)

	press(t, m, "y")
	assert.NotNil(t, m.confirm)
	assert.Empty(t, svc.mutes)

	drive(t, m, reload)
	assert.False(t, m.busy)
	assert.Equal(t, 2, svc.queryCount())

	press(t, m, "y")
	assert.Nil(t, m.confirm)
	assert.Equal(t, []models.MuteRequest{{ID: "a", Mute: true}}, svc.mutes)
	assert.Equal(t, 3, svc.queryCount())
}

func TestMuteCancelled(t *testing.T) {
	svc := &stubService{rows: sample()}
	m := newModel(t, svc)

	press(t, m, "m")
	require.NotNil(t, m.confirm)
	press(t, m, "n")

	assert.Nil(t, m.confirm)
	assert.Empty(t, svc.mutes)
	assert.Equal(t, 1, svc.queryCount())
	assert.Nil(t, m.notice)
}

func TestRemoveSelected(t *testing.T) {
	svc := &stubService{rows: sample()}
	m := newModel(t, svc)

	press(t, m, "d")
	assert.Empty(t, svc.removed)
	assert.Equal(t, 1, svc.queryCount())

	press(t, m, " ")
	press(t, m, "d")
	assert.Equal(t, []string{"a"}, svc.removed)
	assert.Equal(t, 2, svc.queryCount())
	require.NotNil(t, m.notice)
	assert.Equal(t, "删除成功，即将刷新", m.notice.Text)
}

func TestRemoveFailure(t *testing.T) {
	svc := &stubService{rows: sample()}
	m := newModel(t, svc)

	press(t, m, " ")
	svc.fail = true
	press(t, m, "d")

	assert.Equal(t, 1, svc.queryCount())
	require.NotNil(t, m.notice)
	assert.Equal(t, console.NoticeError, m.notice.Kind)
	assert.Equal(t, "删除失败，请重试", m.notice.Text)
}

func TestApproveUnsupported(t *testing.T) {
	m := newModel(t, &stubService{rows: sample()})

	press(t, m, "a")
	require.NotNil(t, m.notice)
	assert.Equal(t, "暂不支持批量审批", m.notice.Text)
}

func TestSortCycle(t *testing.T) {
	svc := &stubService{rows: sample()}
	m := newModel(t, svc)

	press(t, m, "s")
	assert.Equal(t, "updatedAt_descend", svc.queries[len(svc.queries)-1].Sorter)
	press(t, m, "s")
	assert.Equal(t, "updatedAt_ascend", svc.queries[len(svc.queries)-1].Sorter)
	press(t, m, "s")
	assert.Empty(t, svc.queries[len(svc.queries)-1].Sorter)
}

func TestEventTriggersReload(t *testing.T) {
	svc := &stubService{rows: sample()}
	events := make(chan client.Event, 1)
	m := NewModel(context.Background(), svc).WithEvents(events)

	_, cmd := m.Update(actionDoneMsg{ok: true})
	assert.Nil(t, cmd)

	_, cmd = m.Update(eventMsg{event: client.Event{Type: ws.EventGroupRemoved}})
	close(events)
	drive(t, m, cmd)
	assert.Equal(t, 1, svc.queryCount())

	_, cmd = m.Update(eventMsg{event: client.Event{Type: ws.EventConnect}})
	drive(t, m, cmd)
	assert.Equal(t, 1, svc.queryCount())
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, console.Descend, nextOrder(""))
	assert.Equal(t, console.Ascend, nextOrder("updatedAt_descend"))
	assert.Equal(t, console.SortOrder(""), nextOrder("updatedAt_ascend"))
}
