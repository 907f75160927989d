package testutil

import (
	"testing"

	"github.com/dursunaydin1/refik-app/internal/models"
)

func TestMockUserRepositoryReturnsCopies(t *testing.T) {
	repo := NewMockUserRepository()
	token := "tok"
	created := &models.User{Name: "Ali", PhoneNumber: "5321234567", ActivationToken: &token}
	if err := repo.Create(created); err != nil {
		t.Fatalf("Create error = %v", err)
	}
	created.Name = "changed after create"

	finders := map[string]func() (*models.User, error){
		"FindByID":              func() (*models.User, error) { return repo.FindByID(created.ID) },
		"FindByPhone":           func() (*models.User, error) { return repo.FindByPhone("5321234567") },
		"FindByPhoneContaining": func() (*models.User, error) { return repo.FindByPhoneContaining("1234") },
		"FindByActivationToken": func() (*models.User, error) { return repo.FindByActivationToken("tok") },
	}
	for name, find := range finders {
		t.Run(name, func(t *testing.T) {
			u, err := find()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if u.Name != "Ali" {
				t.Errorf("Name = %q, want Ali", u.Name)
			}
			u.Name = "unsaved"
			u.Status = models.StatusPending

			again, _ := repo.FindByID(created.ID)
			if again.Name != "Ali" || again.Status != models.StatusActive {
				t.Errorf("mutation without Update leaked: %+v", again)
			}
		})
	}

	u, _ := repo.FindByID(created.ID)
	u.Name = "Veli"
	if err := repo.Update(u); err != nil {
		t.Fatalf("Update error = %v", err)
	}
	u.Name = "changed after update"
	if got, _ := repo.FindByID(created.ID); got.Name != "Veli" {
		t.Errorf("Name after Update = %q, want Veli", got.Name)
	}
}
