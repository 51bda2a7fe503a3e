package usecase

import (
	"context"
	"errors"

	"github.com/m1ron1k/taskflow/internal/entity"
	"github.com/m1ron1k/taskflow/internal/infrastructure/auth"
	"github.com/m1ron1k/taskflow/internal/repository"
)

type AuthService struct {
	userRepo        repository.IUserRepository
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
}

func NewAuthService(
	userRepo repository.IUserRepository,
	passwordManager *auth.PasswordManager,
	jwtManager *auth.JWTManager,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		passwordManager: passwordManager,
		jwtManager:      jwtManager,
	}
}

// Register регистрирует нового пользователя и сразу выдает токен
func (s *AuthService) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.AuthResponse, error) {
	if req.Name == "" {
		return nil, entity.NewValidationError("Name is required")
	}
	if req.Email == "" {
		return nil, entity.NewValidationError("Email is required")
	}
	if req.Password == "" {
		return nil, entity.NewValidationError("Password is required")
	}

	// Хешируем пароль
	passwordHash, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Создаем пользователя, дубликат email ловит constraint в БД
	user, err := s.userRepo.Create(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			return nil, entity.NewConflictError("Duplicate field value entered")
		}
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	// Хеш наружу не отдаем
	user.PasswordHash = ""

	return &entity.AuthResponse{Token: token, User: user}, nil
}

// Login проверяет креды и выдает токен.
// Неизвестный email и неверный пароль дают одинаковый ответ,
// чтобы нельзя было перебирать адреса.
func (s *AuthService) Login(ctx context.Context, req *entity.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", entity.NewValidationError("Please provide email and password")
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}

	if user == nil || !s.passwordManager.VerifyPassword(user.PasswordHash, req.Password) {
		return "", entity.NewAuthError("Incorrect email or password")
	}

	return s.jwtManager.GenerateToken(user.ID)
}

// CurrentUser - пользователь по id из проверенного токена
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.GetById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.NewNotFoundError("User not found")
	}

	return user, nil
}
