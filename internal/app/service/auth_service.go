package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"wings_inventory/internal/common"
	"wings_inventory/internal/common/security"
	"wings_inventory/internal/domain/model"
	"wings_inventory/internal/domain/repository"
)

// bcrypt ignores everything past 72 bytes, so longer input is rejected
// instead of silently truncated.
const maxPasswordBytes = 72

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *security.PasswordHasher
}

func NewAuthService(userRepo repository.UserRepository, hasher *security.PasswordHasher) *AuthService {
	return &AuthService{userRepo: userRepo, hasher: hasher}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	if err := validateUsername("username", r.Username); err != nil {
		return err
	}
	return validatePassword("password", r.Password)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" || r.Password == "" {
		return common.Validationf("username and password are required")
	}
	return nil
}

type UpdateUserRequest struct {
	OldUsername string `json:"oldUsername"`
	NewUsername string `json:"newUsername"`
	NewPassword string `json:"newPassword"`
}

func (r UpdateUserRequest) Validate() error {
	if strings.TrimSpace(r.OldUsername) == "" {
		return common.Validationf("oldUsername is required")
	}
	if r.NewUsername == "" && r.NewPassword == "" {
		return common.Validationf("newUsername or newPassword is required")
	}
	if r.NewUsername != "" {
		if err := validateUsername("newUsername", r.NewUsername); err != nil {
			return err
		}
	}
	if r.NewPassword != "" {
		return validatePassword("newPassword", r.NewPassword)
	}
	return nil
}

type DeleteUserRequest struct {
	Username string `json:"username"`
}

func (r DeleteUserRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return common.Validationf("username is required")
	}
	return nil
}

func validateUsername(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return common.Validationf("%s is required", field)
	}
	return nil
}

func validatePassword(field, v string) error {
	if v == "" {
		return common.Validationf("%s is required", field)
	}
	if len(v) > maxPasswordBytes {
		return common.Validationf("%s must be at most %d bytes", field, maxPasswordBytes)
	}
	return nil
}

// Register stores a new account. A taken username surfaces as
// common.ErrDuplicateUsername from the store's unique constraint.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.createUser(ctx, req.Username, req.Password)
}

// Login verifies credentials. Unknown usernames and wrong passwords return
// the same common.ErrInvalidCredentials after the same amount of hashing work.
// Nothing is issued on success.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.Authenticate(ctx, req.Username, req.Password)
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.BurnCompare(password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.CheckPasswordHash(password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}
	user.HashedPassword = ""
	return user, nil
}

// AddUser is the roster-management twin of Register.
func (s *AuthService) AddUser(ctx context.Context, req RegisterRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.createUser(ctx, req.Username, req.Password)
}

func (s *AuthService) UpdateUser(ctx context.Context, req UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	var hashed string
	if req.NewPassword != "" {
		var err error
		hashed, err = s.hasher.HashPassword(req.NewPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}
	if err := s.userRepo.Update(ctx, req.OldUsername, req.NewUsername, hashed); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *AuthService) DeleteUser(ctx context.Context, req DeleteUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, req.Username); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *AuthService) createUser(ctx context.Context, username, password string) (string, error) {
	hashedPassword, err := s.hasher.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	id, err := s.userRepo.Create(ctx, username, hashedPassword)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}
