package service

import (
	"errors"
	"log"

	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/repository"
	"github.com/dursunaydin1/refik-app/internal/validation"
	"gorm.io/gorm"
)

type GroupService struct {
	groupRepo repository.GroupRepositoryInterface
	userRepo  repository.UserRepositoryInterface
}

func NewGroupService(groupRepo repository.GroupRepositoryInterface, userRepo repository.UserRepositoryInterface) *GroupService {
	return &GroupService{groupRepo: groupRepo, userRepo: userRepo}
}

// EnsureDefaultGroup returns the system's group, creating it owned by adminID
// when none exists yet.
func (s *GroupService) EnsureDefaultGroup(adminID uint) (*models.Group, error) {
	group, err := s.groupRepo.FindFirst()
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group = &models.Group{
		Name:       models.DefaultGroupName,
		InviteCode: models.DefaultGroupInviteCode,
		AdminID:    adminID,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	log.Printf("Created default group %d for admin %d", group.ID, adminID)
	return group, nil
}

// EnsureMembership puts a group-less user into the default group. It is a
// no-op when the user already has a group or no group exists yet.
func (s *GroupService) EnsureMembership(user *models.User) (*models.User, error) {
	if user.GroupID != nil {
		return user, nil
	}
	group, err := s.groupRepo.FindFirst()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetGroup(user.ID, &group.ID); err != nil {
		return nil, err
	}
	groupID := group.ID
	user.GroupID = &groupID
	return user, nil
}

// RemoveMember detaches memberID from the group. Progress rows are kept.
func (s *GroupService) RemoveMember(adminID, groupID, memberID uint) error {
	group, err := s.authorizeGroupAdmin(adminID, groupID)
	if err != nil {
		return err
	}
	if memberID == group.AdminID {
		return ErrCannotRemoveSelf
	}

	member, err := s.userRepo.FindByID(memberID)
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}
	if member.GroupID == nil || *member.GroupID != groupID {
		return ErrNotGroupMember
	}
	return s.userRepo.SetGroup(memberID, nil)
}

func (s *GroupService) RenameGroup(adminID, groupID uint, name string) error {
	name = validation.TrimAndLimit(name, 100)
	if name == "" {
		return ErrInvalidName
	}
	if _, err := s.authorizeGroupAdmin(adminID, groupID); err != nil {
		return err
	}
	return s.groupRepo.Rename(groupID, name)
}

// ListMembers returns the group's members. Only members of the group and
// admins may list it.
func (s *GroupService) ListMembers(requesterID, groupID uint) ([]models.MemberResponse, error) {
	requester, err := s.userRepo.FindByID(requesterID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if _, err := s.groupRepo.FindByID(groupID); err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	if !requester.IsAdmin() && (requester.GroupID == nil || *requester.GroupID != groupID) {
		return nil, ErrNotAuthorized
	}

	users, err := s.userRepo.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}
	members := make([]models.MemberResponse, 0, len(users))
	for i := range users {
		members = append(members, users[i].ToMemberResponse())
	}
	return members, nil
}

// InviteCode returns the shareable code of an admin's group.
func (s *GroupService) InviteCode(userID uint) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", notFound(err, ErrUserNotFound)
	}
	if !user.IsAdmin() {
		return "", ErrNotAuthorized
	}
	if user.GroupID == nil {
		return "", ErrGroupNotFound
	}
	group, err := s.groupRepo.FindByID(*user.GroupID)
	if err != nil {
		return "", notFound(err, ErrGroupNotFound)
	}
	return group.InviteCode, nil
}

// authorizeGroupAdmin is the single check behind every group mutation.
func (s *GroupService) authorizeGroupAdmin(adminID, groupID uint) (*models.Group, error) {
	group, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	if group.AdminID != adminID {
		return nil, ErrNotAuthorized
	}
	return group, nil
}
