package console_test

import (
	"testing"
	"time"

	"groupadmin/server/internal/console"
	"groupadmin/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	t.Parallel()

	cols := console.Columns()
	require.Len(t, cols, 6)

	var indexes []string
	for _, c := range cols {
		indexes = append(indexes, c.DataIndex)
	}
	assert.Equal(t, []string{"name", "desc", "disabled", "mute", "updatedAt", "option"}, indexes)

	assert.Equal(t, "规则名称为必填项", cols[0].Required)
	assert.True(t, cols[4].Sortable)
	assert.Equal(t, console.ValueDateTime, cols[4].ValueType)

	form := console.FormColumns()
	require.Len(t, form, 2)
	assert.Equal(t, "name", form[0].DataIndex)
	assert.Equal(t, "desc", form[1].DataIndex)
}

func TestColumnRender(t *testing.T) {
	t.Parallel()

	cols := console.Columns()
	g := models.Group{
		Name:        "ops",
		Description: "on-call",
		Disabled:    true,
		UpdatedAt:   time.Date(2024, 3, 1, 8, 30, 0, 0, time.Local),
	}

	text, status := cols[0].Render(g)
	assert.Equal(t, "ops", text)
	assert.Empty(t, status)

	text, status = cols[2].Render(g)
	assert.Equal(t, "已封禁", text)
	assert.Equal(t, console.StatusError, status)

	text, status = cols[3].Render(g)
	assert.Equal(t, "未禁言", text)
	assert.Equal(t, console.StatusSuccess, status)

	text, _ = cols[4].Render(g)
	assert.Equal(t, "2024-03-01 08:30:00", text)

	text, _ = cols[4].Render(models.Group{})
	assert.Equal(t, "-", text)

	text, _ = cols[5].Render(g)
	assert.Equal(t, "解除封禁 | 禁言", text)
}

func TestRowActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		group    models.Group
		expected [2]console.RowAction
	}{
		{
			name:  "clean group",
			group: models.Group{},
			expected: [2]console.RowAction{
				{Label: "封禁", Flag: models.FlagDisabled, Value: true},
				{Label: "禁言", Flag: models.FlagMute, Value: true},
			},
		},
		{
			name:  "banned only",
			group: models.Group{Disabled: true},
			expected: [2]console.RowAction{
				{Label: "解除封禁", Flag: models.FlagDisabled, Value: false},
				{Label: "禁言", Flag: models.FlagMute, Value: true},
			},
		},
		{
			name:  "banned and muted",
			group: models.Group{Disabled: true, Mute: true},
			expected: [2]console.RowAction{
				{Label: "解除封禁", Flag: models.FlagDisabled, Value: false},
				{Label: "解除禁言", Flag: models.FlagMute, Value: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, console.RowActions(tt.group))
		})
	}
}

func TestRecorderHideOnce(t *testing.T) {
	t.Parallel()

	rec := &console.Recorder{}
	hide := rec.Loading("正在处理")
	hide()
	hide()

	assert.Equal(t, []console.Notice{
		{Kind: console.NoticeLoading, Text: "正在处理"},
		{Kind: console.NoticeHidden, Text: "正在处理"},
	}, rec.Drain())
	assert.Empty(t, rec.Notices())
}
