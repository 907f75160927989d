package service

import (
	"errors"

	"gorm.io/gorm"
)

// Identity and access.
var (
	ErrInvalidPhone            = errors.New("invalid phone number")
	ErrInvalidName             = errors.New("name is required")
	ErrWeakPassword            = errors.New("password is too short")
	ErrNotInvited              = errors.New("phone number has not been invited")
	ErrPendingActivation       = errors.New("account is waiting for activation")
	ErrPasswordRequired        = errors.New("password is required")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidToken            = errors.New("invalid activation token")
	ErrTokenExpired            = errors.New("activation token has expired")
	ErrAlreadyActive           = errors.New("phone number already belongs to an active member")
	ErrWrongCurrentPassword    = errors.New("current password is wrong")
	ErrCurrentPasswordRequired = errors.New("current password is required")
	ErrUserNotFound            = errors.New("user not found")
)

// Groups.
var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrNotGroupMember   = errors.New("user is not a member of this group")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrCannotRemoveSelf = errors.New("group admin cannot remove themselves")
)

// Campaign and progress.
var (
	ErrCampaignNotStarted = errors.New("campaign has not started yet")
	ErrFutureDayRejected  = errors.New("day has not been reached yet")
	ErrInvalidDay         = errors.New("day is outside the campaign")
	ErrInvalidPage        = errors.New("invalid page number")
)

// Notifications and content.
var (
	ErrInvalidSubscription = errors.New("invalid push subscription")
	ErrPushNotConfigured   = errors.New("push delivery is not configured")
	ErrUpstream            = errors.New("upstream service unavailable")
)

// notFound replaces gorm.ErrRecordNotFound with the domain error.
func notFound(err error, domain error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain
	}
	return err
}
