package mocks

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/domain/entity"
	"github.com/bereketsol/inkwell/internal/usecase"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the user usecase.
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister bool
	ShouldFailLogin    bool
	ShouldFailGetByID  bool

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Name:     "Test User",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, contract.ErrDuplicate
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*usecasecontract.LoginResult, error) {
	if m.ShouldFailLogin {
		return nil, usecase.ErrInvalidCredentials
	}
	return &usecasecontract.LoginResult{
		User:         m.MockUser,
		AccessToken:  m.MockAccessToken,
		RefreshToken: m.MockRefreshToken,
	}, nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (*usecasecontract.LoginResult, error) {
	if m.ShouldFailLogin {
		return nil, usecase.ErrInvalidCredentials
	}
	return &usecasecontract.LoginResult{
		User:         m.MockUser,
		AccessToken:  m.MockAccessToken,
		RefreshToken: m.MockRefreshToken,
	}, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, contract.ErrNotFound
	}
	return &m.MockUser, nil
}
