package console_test

import (
	"context"
	"testing"

	"groupadmin/server/internal/console"
	"groupadmin/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		run     func(c *console.Console) bool
		loading string
		success string
		failure string
	}{
		{
			name:    "add",
			run:     func(c *console.Console) bool { return c.HandleAdd(context.Background(), models.CreateGroupRequest{Name: "x"}) },
			loading: "正在添加", success: "添加成功", failure: "添加失败请重试！",
		},
		{
			name: "update",
			run: func(c *console.Console) bool {
				return c.HandleUpdate(context.Background(), models.UpdateGroupRequest{ID: "g1", Name: "x"})
			},
			loading: "正在配置", success: "配置成功", failure: "配置失败请重试！",
		},
		{
			name: "remove",
			run: func(c *console.Console) bool {
				return c.HandleRemove(context.Background(), rowsWithCallNo(1))
			},
			loading: "正在删除", success: "删除成功，即将刷新", failure: "删除失败，请重试",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, fail := range []bool{false, true} {
				svc := &fakeService{fail: fail}
				rec := &console.Recorder{}
				c := console.New(svc, rec, console.Answer(true))

				ok := tt.run(c)
				assert.Equal(t, !fail, ok)
				assert.Len(t, svc.calls, 1)

				last := console.Notice{Kind: console.NoticeSuccess, Text: tt.success}
				if fail {
					last = console.Notice{Kind: console.NoticeError, Text: tt.failure}
				}
				assert.Equal(t, []console.Notice{
					{Kind: console.NoticeLoading, Text: tt.loading},
					{Kind: console.NoticeHidden, Text: tt.loading},
					last,
				}, rec.Notices())
			}
		})
	}
}

func TestHandleRemoveEmptySelection(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	rec := &console.Recorder{}
	c := console.New(svc, rec, console.Answer(true))

	assert.True(t, c.HandleRemove(context.Background(), nil))
	assert.True(t, c.HandleRemove(context.Background(), []models.Group{}))
	assert.Empty(t, svc.calls)
	assert.Empty(t, rec.Notices())
}

func TestHandleRemoveSendsIDs(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	c := console.New(svc, &console.Recorder{}, console.Answer(true))

	require.True(t, c.HandleRemove(context.Background(), rowsWithCallNo(1, 2, 3)))
	assert.Equal(t, []string{"a", "b", "c"}, svc.removed)
}
