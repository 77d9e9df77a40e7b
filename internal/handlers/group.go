package handlers

import (
	"errors"
	"strconv"
	"strings"

	"groupadmin/server/internal/middleware"
	"groupadmin/server/internal/models"
	"groupadmin/server/internal/store"
	ws "groupadmin/server/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GroupHandler serves the group administration API
type GroupHandler struct {
	Store store.GroupStore
	Hub   *ws.Hub // optional; nil disables change notifications
}

// NewGroupHandler creates a handler backed by the given store
func NewGroupHandler(groups store.GroupStore, hub *ws.Hub) *GroupHandler {
	return &GroupHandler{Store: groups, Hub: hub}
}

// ListGroups returns one page of groups, filtered and sorted
func (h *GroupHandler) ListGroups(c *fiber.Ctx) error {
	current, _ := strconv.Atoi(c.Query("current", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", strconv.Itoa(store.DefaultPageSize)))

	sort, err := store.ParseSorter(c.Query("sorter"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid sorter",
		})
	}

	q := store.Query{
		Current:  current,
		PageSize: pageSize,
		Sort:     sort,
		Name:     strings.TrimSpace(c.Query("name")),
	}

	if q.Disabled, err = boolFilter(c.Query("disabled")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid disabled filter",
		})
	}
	if q.Mute, err = boolFilter(c.Query("mute")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid mute filter",
		})
	}

	page, err := h.Store.List(c.UserContext(), q)
	if err != nil {
		logrus.WithError(err).Error("Failed to list groups")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       page.Groups,
		"pagination": page.Pagination,
	})
}

// GetGroup returns a single group
func (h *GroupHandler) GetGroup(c *fiber.Ctx) error {
	group, err := h.Store.Get(c.UserContext(), c.Params("groupId"))
	if err != nil {
		return storeError(c, err, "Failed to get group")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    group,
	})
}

// CreateGroup creates a new group
func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	var req models.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Group name is required",
		})
	}

	group, err := h.Store.Create(c.UserContext(), req)
	if err != nil {
		return storeError(c, err, "Failed to create group")
	}

	h.notify(ws.EventGroupCreated, ws.GroupPayload{Group: *group, By: middleware.GetUsername(c)})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    group,
	})
}

// UpdateGroup replaces the name and description of a group
func (h *GroupHandler) UpdateGroup(c *fiber.Ctx) error {
	groupID := c.Params("groupId")

	var req models.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.ID != "" && req.ID != groupID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Group ID mismatch",
		})
	}

	group, err := h.Store.Update(c.UserContext(), groupID, req)
	if err != nil {
		return storeError(c, err, "Failed to update group")
	}

	h.notify(ws.EventGroupUpdated, ws.GroupPayload{Group: *group, By: middleware.GetUsername(c)})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    group,
	})
}

// RemoveGroups deletes every group whose id is listed in the body
func (h *GroupHandler) RemoveGroups(c *fiber.Ctx) error {
	var req models.RemoveGroupsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if len(req.Keys) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "At least one group id is required",
		})
	}

	removed, err := h.Store.Remove(c.UserContext(), req.Keys)
	if err != nil {
		return storeError(c, err, "Failed to delete groups")
	}

	h.notify(ws.EventGroupRemoved, ws.RemovedPayload{IDs: req.Keys, By: middleware.GetUsername(c)})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Groups deleted successfully",
		"data": fiber.Map{
			"removed": removed,
		},
	})
}

// SetDisabled bans or unbans a group
func (h *GroupHandler) SetDisabled(c *fiber.Ctx) error {
	var req models.DisabledRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	return h.setFlag(c, req.ID, models.FlagDisabled, req.Disabled)
}

// SetMute mutes or unmutes a group
func (h *GroupHandler) SetMute(c *fiber.Ctx) error {
	var req models.MuteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	return h.setFlag(c, req.ID, models.FlagMute, req.Mute)
}

func (h *GroupHandler) setFlag(c *fiber.Ctx, bodyID string, flag models.Flag, value bool) error {
	groupID := c.Params("groupId")
	if bodyID != "" && bodyID != groupID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Group ID mismatch",
		})
	}

	group, err := h.Store.SetFlag(c.UserContext(), groupID, flag, value)
	if err != nil {
		return storeError(c, err, "Failed to update group")
	}

	username := middleware.GetUsername(c)
	logrus.WithFields(logrus.Fields{
		"group": groupID,
		"flag":  flag,
		"value": value,
		"by":    username,
	}).Info("Moderation flag changed")

	h.notify(ws.EventGroupFlagChanged, ws.FlagPayload{
		GroupID: groupID,
		Flag:    flag,
		Value:   value,
		By:      username,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    group,
	})
}

func (h *GroupHandler) notify(eventType ws.EventType, payload interface{}) {
	if h.Hub != nil {
		h.Hub.Broadcast(ws.NewMessage(eventType, payload))
	}
}

// storeError maps store errors onto HTTP responses
func storeError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Group not found",
		})
	case errors.Is(err, store.ErrNameRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Group name is required",
		})
	}

	logrus.WithError(err).Error(message)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// boolFilter parses an optional boolean filter; empty means no filter
func boolFilter(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
