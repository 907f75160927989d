package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/repository"
	"github.com/dursunaydin1/refik-app/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	BcryptCost      = 10
	SessionTTL      = 7 * 24 * time.Hour
	ActivationTTL   = 24 * time.Hour
	adminName       = "Yönetici"
	activationBytes = 32
)

type AuthConfig struct {
	JWTSecret         string
	AdminPhone        string
	BootstrapPassword string
	PublicBaseURL     string
}

type AuthService struct {
	userRepo repository.UserRepositoryInterface
	groups   *GroupService
	cfg      AuthConfig
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepositoryInterface, groups *GroupService, cfg AuthConfig) *AuthService {
	return &AuthService{userRepo: userRepo, groups: groups, cfg: cfg, now: time.Now}
}

type LoginInput struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

func (s *AuthService) Login(input LoginInput) (*AuthResponse, error) {
	phone := validation.NormalizePhone(input.Phone)
	if !validation.ValidatePhone(phone) {
		return nil, ErrInvalidPhone
	}

	user, err := s.lookupPhone(phone)
	if err != nil {
		return nil, err
	}

	isAdminPhone := s.cfg.AdminPhone != "" && phone == s.cfg.AdminPhone
	if isAdminPhone {
		if user, err = s.bootstrapAdmin(user, phone); err != nil {
			return nil, err
		}
	}

	if user == nil {
		return nil, ErrNotInvited
	}
	if user.Status == models.StatusPending {
		return nil, ErrPendingActivation
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}

	if err := s.checkPassword(user, input.Password, isAdminPhone); err != nil {
		return nil, err
	}

	if user.IsAdmin() {
		if _, err := s.groups.EnsureDefaultGroup(user.ID); err != nil {
			return nil, err
		}
	}
	if user, err = s.groups.EnsureMembership(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

// lookupPhone tries an exact match first and then a containment match for
// numbers stored in older formats. The fallback is not unique: when several
// accounts contain the number the oldest one is used.
func (s *AuthService) lookupPhone(phone string) (*models.User, error) {
	user, err := s.userRepo.FindByPhone(phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err = s.userRepo.FindByPhoneContaining(phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	log.Printf("Login phone %s matched account %d by containment", phone, user.ID)
	return user, nil
}

// bootstrapAdmin creates or promotes the configured admin account. It is
// idempotent: repeated calls leave an ACTIVE ADMIN.
func (s *AuthService) bootstrapAdmin(user *models.User, phone string) (*models.User, error) {
	if user == nil {
		user = &models.User{
			Name:        adminName,
			PhoneNumber: phone,
			Role:        models.RoleAdmin,
			Status:      models.StatusActive,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
		log.Printf("Bootstrapped admin account %d", user.ID)
		return user, nil
	}

	if user.Role == models.RoleAdmin && user.Status == models.StatusActive && !isPlaceholderName(user.Name) {
		return user, nil
	}
	user.Role = models.RoleAdmin
	user.Status = models.StatusActive
	user.ActivationToken = nil
	user.TokenExpires = nil
	if isPlaceholderName(user.Name) {
		user.Name = adminName
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) checkPassword(user *models.User, password string, isAdminPhone bool) error {
	if user.HasPassword() {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return ErrInvalidCredentials
		}
		return nil
	}

	// Only the admin can log in without a stored hash, once, with the
	// bootstrap secret. That secret then becomes the account's password.
	if !isAdminPhone || s.cfg.BootstrapPassword == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.BootstrapPassword)) != 1 {
		return ErrInvalidCredentials
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return err
	}
	log.Printf("Admin account %d moved from bootstrap secret to stored password", user.ID)
	return nil
}

// Activate consumes an invitation token and sets the account's password.
func (s *AuthService) Activate(token, password string) error {
	if token == "" {
		return ErrInvalidToken
	}
	if !validation.ValidatePassword(password) {
		return ErrWeakPassword
	}

	user, err := s.userRepo.FindByActivationToken(token)
	if err != nil {
		return notFound(err, ErrInvalidToken)
	}
	if user.TokenExpires != nil && s.now().After(*user.TokenExpires) {
		return ErrTokenExpired
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.Status = models.StatusActive
	user.ActivationToken = nil
	user.TokenExpires = nil
	return s.userRepo.Update(user)
}

type InviteInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Invite creates or refreshes a PENDING account and returns its activation link.
func (s *AuthService) Invite(input InviteInput) (string, error) {
	name := validation.NormalizeName(input.Name)
	if name == "" {
		return "", ErrInvalidName
	}
	phone := validation.NormalizePhone(input.Phone)
	if !validation.ValidatePhone(phone) {
		return "", ErrInvalidPhone
	}

	token, err := generateActivationToken()
	if err != nil {
		return "", err
	}
	expires := s.now().Add(ActivationTTL)

	existing, err := s.userRepo.FindByPhone(phone)
	switch {
	case err == nil:
		if existing.Status == models.StatusActive {
			return "", ErrAlreadyActive
		}
		existing.Name = name
		existing.ActivationToken = &token
		existing.TokenExpires = &expires
		if err := s.userRepo.Update(existing); err != nil {
			return "", err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user := &models.User{
			Name:            name,
			PhoneNumber:     phone,
			Role:            models.RoleMember,
			Status:          models.StatusPending,
			ActivationToken: &token,
			TokenExpires:    &expires,
		}
		if err := s.userRepo.Create(user); err != nil {
			return "", err
		}
	default:
		return "", err
	}

	return fmt.Sprintf("%s/activate?token=%s", s.cfg.PublicBaseURL, token), nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateActivationToken() (string, error) {
	b := make([]byte, activationBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func isPlaceholderName(name string) bool {
	return name == "" || name == models.PlaceholderName
}
