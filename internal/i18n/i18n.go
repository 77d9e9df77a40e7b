// Package i18n holds the console's localized presentation strings.
//
// Strings are looked up by key through an x/text catalog so every message the
// console shows comes from one place. Only Simplified Chinese is shipped.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys
const (
	HeaderTitle   = "header.title"
	ButtonCreate  = "button.create"
	ButtonBatch   = "button.batch"
	MenuRemove    = "menu.remove"
	MenuApprove   = "menu.approve"
	SelectionInfo = "selection.info"

	ColumnName        = "column.name"
	ColumnDescription = "column.description"
	ColumnDisabled    = "column.disabled"
	ColumnMute        = "column.mute"
	ColumnUpdatedAt   = "column.updatedAt"
	ColumnOption      = "column.option"
	NameRequired      = "column.name.required"

	DisabledFalse = "enum.disabled.false"
	DisabledTrue  = "enum.disabled.true"
	MuteFalse     = "enum.mute.false"
	MuteTrue      = "enum.mute.true"

	ActionBan    = "action.ban"
	ActionUnban  = "action.unban"
	ActionMute   = "action.mute"
	ActionUnmute = "action.unmute"

	ConfirmOK        = "confirm.ok"
	ConfirmCancel    = "confirm.cancel"
	TitleDisabled    = "confirm.title.disabled"
	TitleMute        = "confirm.title.mute"
	ContentBan       = "confirm.content.ban"
	ContentUnban     = "confirm.content.unban"
	ContentMute      = "confirm.content.mute"
	ContentUnmute    = "confirm.content.unmute"
	FlagProcessing   = "flag.loading"
	FlagSuccess      = "flag.success"
	FlagFailure      = "flag.error"
	AddLoading       = "add.loading"
	AddSuccess       = "add.success"
	AddFailure       = "add.error"
	UpdateLoading    = "update.loading"
	UpdateSuccess    = "update.success"
	UpdateFailure    = "update.error"
	RemoveLoading    = "remove.loading"
	RemoveSuccess    = "remove.success"
	RemoveFailure    = "remove.error"
	ApproveUnhandled = "approve.unsupported"
)

// Lang is the only language the console is localized into
var Lang = language.SimplifiedChinese

var zh = map[string]string{
	HeaderTitle:   "查询表格",
	ButtonCreate:  "新建",
	ButtonBatch:   "批量操作",
	MenuRemove:    "批量删除",
	MenuApprove:   "批量审批",
	SelectionInfo: "已选择 %d 项  服务调用次数总计 %d 万",

	ColumnName:        "群组名称",
	ColumnDescription: "描述",
	ColumnDisabled:    "状态",
	ColumnMute:        "禁言状态",
	ColumnUpdatedAt:   "创建时间",
	ColumnOption:      "操作",
	NameRequired:      "规则名称为必填项",

	DisabledFalse: "未封禁",
	DisabledTrue:  "已封禁",
	MuteFalse:     "未禁言",
	MuteTrue:      "已禁言",

	ActionBan:    "封禁",
	ActionUnban:  "解除封禁",
	ActionMute:   "禁言",
	ActionUnmute: "解除禁言",

	ConfirmOK:        "确认",
	ConfirmCancel:    "取消",
	TitleDisabled:    "封禁状态",
	TitleMute:        "禁言状态",
	ContentBan:       "确定封禁该群组吗？",
	ContentUnban:     "确定解除封禁该群组吗？",
	ContentMute:      "确定禁言该群组吗？",
	ContentUnmute:    "确定解除禁言该群组吗？",
	FlagProcessing:   "正在处理",
	FlagSuccess:      "成功，即将刷新",
	FlagFailure:      "失败，请重试",
	AddLoading:       "正在添加",
	AddSuccess:       "添加成功",
	AddFailure:       "添加失败请重试！",
	UpdateLoading:    "正在配置",
	UpdateSuccess:    "配置成功",
	UpdateFailure:    "配置失败请重试！",
	RemoveLoading:    "正在删除",
	RemoveSuccess:    "删除成功，即将刷新",
	RemoveFailure:    "删除失败，请重试",
	ApproveUnhandled: "暂不支持批量审批",
}

var printer = newPrinter()

func newPrinter() *message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(Lang))
	for key, msg := range zh {
		if err := b.SetString(Lang, key, msg); err != nil {
			panic("i18n: " + key + ": " + err.Error())
		}
	}
	return message.NewPrinter(Lang, message.Catalog(b))
}

// T returns the localized string for key, formatted with args
func T(key string, args ...interface{}) string {
	return printer.Sprintf(key, args...)
}
