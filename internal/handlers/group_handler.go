package handlers

import (
	"strconv"

	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

const (
	ActionRemoveMember = "REMOVE_MEMBER"
	ActionRenameGroup  = "RENAME_GROUP"
)

type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

type ManageGroupRequest struct {
	Action   string `json:"action"`
	AdminID  uint   `json:"adminId"`
	GroupID  uint   `json:"groupId"`
	MemberID uint   `json:"memberId"`
	NewName  string `json:"newName"`
}

// Manage runs an admin action on a group. The acting admin is always the
// session user; a mismatching adminId in the body is rejected.
func (h *GroupHandler) Manage(c *fiber.Ctx) error {
	var req ManageGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	adminID, err := bodyUserID(c, req.AdminID)
	if err != nil {
		return respondError(c, err)
	}
	if req.GroupID == 0 {
		return httpx.BadRequest(c, "missing_group_id", "groupId is required")
	}

	switch req.Action {
	case ActionRemoveMember:
		if req.MemberID == 0 {
			return httpx.BadRequest(c, "missing_member_id", "memberId is required")
		}
		err = h.groupService.RemoveMember(adminID, req.GroupID, req.MemberID)
	case ActionRenameGroup:
		err = h.groupService.RenameGroup(adminID, req.GroupID, req.NewName)
	default:
		return httpx.BadRequest(c, "invalid_action", "Unknown action")
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *GroupHandler) Members(c *fiber.Ctx) error {
	userID, ok := sessionUser(c)
	if !ok {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}
	groupID, err := strconv.ParseUint(c.Query("groupId"), 10, 32)
	if err != nil || groupID == 0 {
		return httpx.BadRequest(c, "invalid_group_id", "Invalid group ID")
	}

	members, err := h.groupService.ListMembers(userID, uint(groupID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"members": members})
}

func (h *GroupHandler) InviteCode(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	code, err := h.groupService.InviteCode(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"inviteCode": code})
}
