package term_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"groupadmin/server/internal/console"
	"groupadmin/server/internal/console/term"
	"groupadmin/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticService struct {
	console.Service
	rows []models.Group
}

func (s staticService) QueryGroups(_ context.Context, q models.GroupQuery) (*models.GroupPage, error) {
	return &models.GroupPage{
		Groups:     s.rows,
		Pagination: models.Pagination{Current: q.Current, PageSize: q.PageSize, Total: 45},
	}, nil
}

func TestRenderRows(t *testing.T) {
	out := term.RenderRows([]models.Group{
		{ID: "1", Name: "ops", Description: "on-call", Disabled: true},
		{ID: "2", Name: "dev", Mute: true},
	}, func(id string) bool { return id == "2" })

	for _, want := range []string{"群组名称", "描述", "状态", "禁言状态", "操作", "ops", "on-call", "已封禁", "未封禁", "已禁言", "解除封禁 | 禁言", "封禁 | 解除禁言", "✓"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, strings.Count(out, "✓"))
}

func TestRenderTable(t *testing.T) {
	svc := staticService{rows: []models.Group{
		{ID: "a", Name: "alpha", CallNo: 3},
		{ID: "b", Name: "beta", CallNo: 5},
	}}
	table := console.NewTable(svc)
	table.OnSortChange("updatedAt", console.Descend)
	require.NoError(t, table.Reload(context.Background()))

	out := term.RenderTable(table)
	assert.Contains(t, out, "查询表格")
	assert.Contains(t, out, "1 / 3")
	assert.Contains(t, out, "updatedAt_descend")
	assert.NotContains(t, out, "已选择")

	table.SetSelected("a", true)
	table.SetSelected("b", true)
	assert.Contains(t, term.RenderTable(table), "已选择 2 项  服务调用次数总计 8 万")
}

func TestNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := term.NewNotifier(&buf)

	hide := n.Loading("正在删除")
	hide()
	hide()
	n.Success("删除成功，即将刷新")
	n.Error("删除失败，请重试")

	out := buf.String()
	assert.Contains(t, out, "正在删除")
	assert.Equal(t, 1, strings.Count(out, "\x1b[2K"))
	assert.Less(t, strings.Index(out, "\x1b[2K"), strings.Index(out, "删除成功"))
	assert.Contains(t, out, "删除失败，请重试")
}
