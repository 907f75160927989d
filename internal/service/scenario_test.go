package service

import (
	"strings"
	"testing"

	"github.com/dursunaydin1/refik-app/internal/models"
)

func TestInviteActivateLoginJoinsGroupOnceAdminExists(t *testing.T) {
	f := newAuthFixture()

	link, err := f.auth.Invite(InviteInput{Name: "Ali", Phone: "0532 123 45 67"})
	if err != nil {
		t.Fatalf("Invite error = %v", err)
	}
	token := link[strings.LastIndex(link, "=")+1:]

	if err := f.auth.Activate(token, "secret1"); err != nil {
		t.Fatalf("Activate error = %v", err)
	}

	first, err := f.auth.Login(LoginInput{Phone: "0532 123 45 67", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login error = %v", err)
	}
	if first.User.Name != "Ali" || first.User.Status != models.StatusActive {
		t.Errorf("user = %+v", first.User)
	}
	if first.User.GroupID != nil {
		t.Fatalf("user joined a group before any admin logged in")
	}

	admin, err := f.auth.Login(LoginInput{Phone: testAdmin, Password: testBootstrap})
	if err != nil {
		t.Fatalf("admin Login error = %v", err)
	}

	second, err := f.auth.Login(LoginInput{Phone: "5321234567", Password: "secret1"})
	if err != nil {
		t.Fatalf("second Login error = %v", err)
	}
	if second.User.GroupID == nil || *second.User.GroupID != *admin.User.GroupID {
		t.Errorf("GroupID = %v, want the admin's group %d", second.User.GroupID, *admin.User.GroupID)
	}
}
