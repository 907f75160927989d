package handlers

import (
	"errors"
	"log"

	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

var (
	errMissingUserID = errors.New("userId is required")
	errInvalidUserID = errors.New("invalid userId")
)

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorTable = []errorMapping{
	{errMissingUserID, fiber.StatusBadRequest, "missing_user_id"},
	{errInvalidUserID, fiber.StatusBadRequest, "invalid_user_id"},
	{service.ErrInvalidPhone, fiber.StatusBadRequest, "invalid_phone"},
	{service.ErrInvalidName, fiber.StatusBadRequest, "invalid_name"},
	{service.ErrWeakPassword, fiber.StatusBadRequest, "weak_password"},
	{service.ErrInvalidToken, fiber.StatusBadRequest, "invalid_token"},
	{service.ErrTokenExpired, fiber.StatusBadRequest, "token_expired"},
	{service.ErrAlreadyActive, fiber.StatusBadRequest, "already_active"},
	{service.ErrCurrentPasswordRequired, fiber.StatusBadRequest, "current_password_required"},
	{service.ErrCannotRemoveSelf, fiber.StatusBadRequest, "cannot_remove_self"},
	{service.ErrInvalidDay, fiber.StatusBadRequest, "invalid_day"},
	{service.ErrInvalidPage, fiber.StatusBadRequest, "invalid_page"},
	{service.ErrInvalidSubscription, fiber.StatusBadRequest, "invalid_subscription"},

	{service.ErrInvalidCredentials, fiber.StatusUnauthorized, "invalid_credentials"},
	{service.ErrWrongCurrentPassword, fiber.StatusUnauthorized, "wrong_current_password"},
	{service.ErrPasswordRequired, fiber.StatusUnauthorized, "password_required"},

	{service.ErrNotInvited, fiber.StatusForbidden, "not_invited"},
	{service.ErrPendingActivation, fiber.StatusForbidden, "pending_activation"},
	{service.ErrNotAuthorized, fiber.StatusForbidden, "forbidden"},
	{service.ErrCampaignNotStarted, fiber.StatusForbidden, "campaign_not_started"},
	{service.ErrFutureDayRejected, fiber.StatusForbidden, "future_day"},

	{service.ErrUserNotFound, fiber.StatusNotFound, "user_not_found"},
	{service.ErrGroupNotFound, fiber.StatusNotFound, "group_not_found"},
	{service.ErrNotGroupMember, fiber.StatusNotFound, "not_group_member"},

	{service.ErrPushNotConfigured, fiber.StatusServiceUnavailable, "push_not_configured"},
	{service.ErrUpstream, fiber.StatusInternalServerError, "upstream_failure"},
}

// respondError writes the error body for err. Unknown errors are logged and
// reported as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return httpx.Error(c, m.status, m.code, m.err.Error())
		}
	}
	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	return httpx.Internal(c, "internal_error")
}
