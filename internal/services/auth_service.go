package services

import (
	"context"
	"errors"

	"annapurna/internal/models/db_models"
	"annapurna/internal/models/request_models"
	"annapurna/internal/models/response_models"
	"annapurna/internal/repositories"
	"annapurna/pkg/utils"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAdmin(ctx context.Context, req request_models.CreateAdminRequest) (*response_models.AuthResponse, error)
}

type AuthService struct {
	users repositories.UserRepository
	// setupCode guards the admin bootstrap endpoint when configured;
	// empty means the endpoint stays open, as in the original service.
	setupCode string
}

func NewAuthService(users repositories.UserRepository, setupCode string) AuthServiceInterface {
	return &AuthService{
		users:     users,
		setupCode: setupCode,
	}
}

func (a *AuthService) Signup(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	existing, err := a.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Age:          req.Age,
		Gender:       req.Gender,
	}

	// Insert re-checks the email under the backend's own lock; the
	// lookup above only exists for the common-path error message.
	if err := a.users.Insert(ctx, user); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token: token,
		User:  response_models.SanitizeUser(user),
	}, nil
}

func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// An unknown email and a wrong password answer identically, so the
	// endpoint cannot be used to enumerate accounts.
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewLoginResponse(token, user)
	return &resp, nil
}

func (a *AuthService) CreateAdmin(ctx context.Context, req request_models.CreateAdminRequest) (*response_models.AuthResponse, error) {
	if a.setupCode != "" && req.SetupCode != a.setupCode {
		return nil, utils.ErrSetupCodeMismatch
	}

	existing, err := a.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	admin := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		IsAdmin:      true,
		Age:          25,
		Gender:       "other",
	}

	if err := a.users.Insert(ctx, admin); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(admin.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token: token,
		User:  response_models.SanitizeUser(admin),
	}, nil
}
