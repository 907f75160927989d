package service

import (
	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/repository"
	"github.com/dursunaydin1/refik-app/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepositoryInterface
}

func NewUserService(userRepo repository.UserRepositoryInterface) *UserService {
	return &UserService{userRepo: userRepo}
}

type UpdateProfileInput struct {
	Name            string `json:"name"`
	Password        string `json:"password"`
	CurrentPassword string `json:"currentPassword"`
}

// UpdateProfile changes the display name and/or password. Changing an
// existing password requires the current one; setting the first does not.
func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	var newHash string
	if input.Password != "" {
		if !validation.ValidatePassword(input.Password) {
			return nil, ErrWeakPassword
		}
		if user.HasPassword() {
			if input.CurrentPassword == "" {
				return nil, ErrCurrentPasswordRequired
			}
			if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
				return nil, ErrWrongCurrentPassword
			}
		}
		if newHash, err = hashPassword(input.Password); err != nil {
			return nil, err
		}
	}

	if name := validation.NormalizeName(input.Name); name != "" {
		user.Name = name
	}
	if newHash != "" {
		user.PasswordHash = newHash
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}
