package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/m1ron1k/taskflow/internal/entity"
	"github.com/m1ron1k/taskflow/internal/infrastructure/auth"
	"github.com/m1ron1k/taskflow/internal/repository"
)

// MockUserRepository - мок для IUserRepository
type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, name, email, passwordHash string) (*entity.User, error)
	GetByIdFunc    func(ctx context.Context, id string) (*entity.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
}

var _ repository.IUserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, email, passwordHash)
	}
	return nil, nil
}

func (m *MockUserRepository) GetById(ctx context.Context, id string) (*entity.User, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func newAuthService(repo *MockUserRepository) *AuthService {
	return NewAuthService(repo, auth.NewPasswordManager(), auth.NewJWTManager())
}

// Tests

func TestRegisterSuccess(t *testing.T) {
	ctx := context.Background()
	var storedHash string

	mockRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
			storedHash = passwordHash
			return &entity.User{
				ID:    "3f2a1b0c-aaaa-4bbb-8ccc-dddd00001111",
				Name:  name,
				Email: email,
			}, nil
		},
	}

	service := newAuthService(mockRepo)

	resp, err := service.Register(ctx, &entity.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Token == "" {
		t.Error("Expected non-empty token")
	}
	if storedHash == "secret" || storedHash == "" {
		t.Error("Expected password to be stored as a hash")
	}
	if !auth.NewPasswordManager().VerifyPassword(storedHash, "secret") {
		t.Error("Expected stored hash to match the password")
	}
	if resp.User.PasswordHash != "" {
		t.Error("Expected password hash to be stripped from the response")
	}

	// В сериализованном пользователе не должно быть и следа пароля
	body, err := json.Marshal(resp.User)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(strings.ToLower(string(body)), "password") {
		t.Errorf("Expected no password field in payload, got %s", body)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mockRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
			return nil, entity.ErrEmailTaken
		},
	}

	service := newAuthService(mockRepo)

	_, err := service.Register(context.Background(), &entity.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret",
	})
	assertAppError(t, err, http.StatusBadRequest, "Duplicate field value entered")
}

func TestRegisterMissingFields(t *testing.T) {
	service := newAuthService(&MockUserRepository{})

	tests := []struct {
		req     entity.RegisterRequest
		message string
	}{
		{entity.RegisterRequest{Email: "a@x.com", Password: "secret"}, "Name is required"},
		{entity.RegisterRequest{Name: "A", Password: "secret"}, "Email is required"},
		{entity.RegisterRequest{Name: "A", Email: "a@x.com"}, "Password is required"},
	}

	for _, tt := range tests {
		_, err := service.Register(context.Background(), &tt.req)
		assertAppError(t, err, http.StatusBadRequest, tt.message)
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	service := newAuthService(&MockUserRepository{})

	for _, req := range []entity.LoginRequest{
		{},
		{Email: "a@x.com"},
		{Password: "secret"},
	} {
		_, err := service.Login(context.Background(), &req)
		assertAppError(t, err, http.StatusBadRequest, "Please provide email and password")
	}
}

// Неизвестный email и неверный пароль должны быть неразличимы снаружи
func TestLoginUniformError(t *testing.T) {
	ctx := context.Background()
	passwordManager := auth.NewPasswordManager()
	hash, err := passwordManager.HashPassword("right-password")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	unknownEmailRepo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
	}
	wrongPasswordRepo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: "u1", Email: email, PasswordHash: hash}, nil
		},
	}

	_, errUnknown := newAuthService(unknownEmailRepo).Login(ctx, &entity.LoginRequest{Email: "nobody@x.com", Password: "whatever"})
	_, errWrong := newAuthService(wrongPasswordRepo).Login(ctx, &entity.LoginRequest{Email: "a@x.com", Password: "wrong-password"})

	assertAppError(t, errUnknown, http.StatusUnauthorized, "Incorrect email or password")
	assertAppError(t, errWrong, http.StatusUnauthorized, "Incorrect email or password")

	if errUnknown.Error() != errWrong.Error() {
		t.Error("Expected identical error for unknown email and wrong password")
	}
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	passwordManager := auth.NewPasswordManager()
	hash, err := passwordManager.HashPassword("secret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	userID := "3f2a1b0c-aaaa-4bbb-8ccc-dddd00001111"
	mockRepo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: userID, Email: email, PasswordHash: hash}, nil
		},
	}

	jwtManager := auth.NewJWTManager()
	service := NewAuthService(mockRepo, passwordManager, jwtManager)

	token, err := service.Login(ctx, &entity.LoginRequest{Email: "a@x.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Токен должен проверяться без похода в хранилище и нести id пользователя
	gotID, err := jwtManager.ValidateToken(token)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}
	if gotID != userID {
		t.Errorf("Expected user id %s in token, got %s", userID, gotID)
	}
}

func TestCurrentUserNotFound(t *testing.T) {
	service := newAuthService(&MockUserRepository{})

	_, err := service.CurrentUser(context.Background(), "b8f4d8e1-0000-4000-8000-000000000000")
	assertAppError(t, err, http.StatusNotFound, "User not found")
}
