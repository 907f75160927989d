package service

import (
	"errors"
	"testing"

	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/testutil"
)

type groupFixture struct {
	service *GroupService
	users   *testutil.MockUserRepository
	groups  *testutil.MockGroupRepository
	admin   *models.User
	member  *models.User
	group   *models.Group
}

func newGroupFixture(t *testing.T) *groupFixture {
	t.Helper()
	users := testutil.NewMockUserRepository()
	groups := testutil.NewMockGroupRepository()
	svc := NewGroupService(groups, users)

	admin := testutil.CreateActiveUser(t, users, "Admin", "5320000001", "")
	admin.Role = models.RoleAdmin
	if err := users.Update(admin); err != nil {
		t.Fatalf("promote admin: %v", err)
	}
	member := testutil.CreateActiveUser(t, users, "Ali", "5321234567", "")

	group, err := svc.EnsureDefaultGroup(admin.ID)
	if err != nil {
		t.Fatalf("EnsureDefaultGroup error = %v", err)
	}
	for _, u := range []*models.User{admin, member} {
		if _, err := svc.EnsureMembership(u); err != nil {
			t.Fatalf("EnsureMembership error = %v", err)
		}
	}
	return &groupFixture{service: svc, users: users, groups: groups, admin: admin, member: member, group: group}
}

func TestEnsureDefaultGroup(t *testing.T) {
	f := newGroupFixture(t)

	again, err := f.service.EnsureDefaultGroup(f.member.ID)
	if err != nil {
		t.Fatalf("EnsureDefaultGroup error = %v", err)
	}
	if again.ID != f.group.ID || again.AdminID != f.admin.ID {
		t.Errorf("second call returned %+v, want the original group", again)
	}
	if f.groups.Count() != 1 {
		t.Errorf("groups = %d, want 1", f.groups.Count())
	}
	if f.group.InviteCode != models.DefaultGroupInviteCode || f.group.Name != models.DefaultGroupName {
		t.Errorf("group = %+v", f.group)
	}
}

func TestEnsureMembershipWithoutGroup(t *testing.T) {
	users := testutil.NewMockUserRepository()
	svc := NewGroupService(testutil.NewMockGroupRepository(), users)
	user := testutil.CreateActiveUser(t, users, "Ali", "5321234567", "")

	got, err := svc.EnsureMembership(user)
	if err != nil {
		t.Fatalf("EnsureMembership error = %v", err)
	}
	if got.GroupID != nil {
		t.Errorf("GroupID = %v, want nil", *got.GroupID)
	}
}

func TestRemoveMember(t *testing.T) {
	f := newGroupFixture(t)
	outsider := testutil.CreateActiveUser(t, f.users, "Dışarıda", "5325555555", "")

	tests := []struct {
		name     string
		adminID  uint
		groupID  uint
		memberID uint
		wantErr  error
	}{
		{"unknown group", f.admin.ID, 99, f.member.ID, ErrGroupNotFound},
		{"not the admin", f.member.ID, f.group.ID, f.member.ID, ErrNotAuthorized},
		{"admin removes self", f.admin.ID, f.group.ID, f.admin.ID, ErrCannotRemoveSelf},
		{"unknown member", f.admin.ID, f.group.ID, 404, ErrUserNotFound},
		{"outsider", f.admin.ID, f.group.ID, outsider.ID, ErrNotGroupMember},
		{"remove member", f.admin.ID, f.group.ID, f.member.ID, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.service.RemoveMember(tt.adminID, tt.groupID, tt.memberID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RemoveMember error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	removed, _ := f.users.FindByID(f.member.ID)
	if removed.GroupID != nil {
		t.Error("member still has a group")
	}
}

func TestRemoveMemberCannotRemoveSelfForEveryGroup(t *testing.T) {
	users := testutil.NewMockUserRepository()
	groups := testutil.NewMockGroupRepository()
	svc := NewGroupService(groups, users)

	for adminID := uint(1); adminID <= 5; adminID++ {
		group := &models.Group{Name: "G", InviteCode: "C", AdminID: adminID}
		_ = groups.Create(group)
		if err := svc.RemoveMember(adminID, group.ID, adminID); !errors.Is(err, ErrCannotRemoveSelf) {
			t.Errorf("group %d admin %d: error = %v, want ErrCannotRemoveSelf", group.ID, adminID, err)
		}
	}
}

func TestRenameGroup(t *testing.T) {
	f := newGroupFixture(t)

	if err := f.service.RenameGroup(f.member.ID, f.group.ID, "Yeni"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("member rename error = %v, want ErrNotAuthorized", err)
	}
	if err := f.service.RenameGroup(f.admin.ID, f.group.ID, "   "); !errors.Is(err, ErrInvalidName) {
		t.Errorf("blank rename error = %v, want ErrInvalidName", err)
	}
	if err := f.service.RenameGroup(f.admin.ID, f.group.ID, " Ramazan Halkası "); err != nil {
		t.Fatalf("RenameGroup error = %v", err)
	}
	group, _ := f.groups.FindByID(f.group.ID)
	if group.Name != "Ramazan Halkası" {
		t.Errorf("name = %q", group.Name)
	}
}

func TestListMembers(t *testing.T) {
	f := newGroupFixture(t)
	outsider := testutil.CreateActiveUser(t, f.users, "Dışarıda", "5325555555", "")

	members, err := f.service.ListMembers(f.member.ID, f.group.ID)
	if err != nil {
		t.Fatalf("ListMembers error = %v", err)
	}
	if len(members) != 2 || members[0].Role != models.RoleAdmin || members[1].PhoneNumber != "5321234567" {
		t.Errorf("members = %+v", members)
	}

	if _, err := f.service.ListMembers(outsider.ID, f.group.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("outsider error = %v, want ErrNotAuthorized", err)
	}
	if _, err := f.service.ListMembers(f.member.ID, 77); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("unknown group error = %v, want ErrGroupNotFound", err)
	}
}

func TestInviteCode(t *testing.T) {
	f := newGroupFixture(t)

	code, err := f.service.InviteCode(f.admin.ID)
	if err != nil || code != models.DefaultGroupInviteCode {
		t.Errorf("InviteCode = %q, %v", code, err)
	}
	if _, err := f.service.InviteCode(f.member.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("member error = %v, want ErrNotAuthorized", err)
	}
}
