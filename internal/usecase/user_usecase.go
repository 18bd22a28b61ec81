package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// UserUsecase handles account registration and login. It is the
// authentication collaborator: downstream usecases trust the user id it
// resolves and never re-verify credentials.
type UserUsecase struct {
	userRepo     contract.IUserRepository
	hasher       contract.IHasher
	tokenService usecasecontract.ITokenService
	validator    usecasecontract.IValidator
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

// NewUserUsecase creates and returns a new UserUsecase instance.
func NewUserUsecase(userRepo contract.IUserRepository, hasher contract.IHasher, tokenService usecasecontract.ITokenService, validator usecasecontract.IValidator, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *UserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		validator:    validator,
		uuidgen:      uuidgen,
		logger:       logger,
	}
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register creates a new account with a generated username.
func (u *UserUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if err := u.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := u.validator.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("user with email '%s' %w", email, contract.ErrDuplicate)
	}

	hash, err := u.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           u.uuidgen.NewUUID(),
		Name:         name,
		Username:     entity.GenerateUsername(name),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.DefaultRole(),
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (u *UserUsecase) Login(ctx context.Context, email, password string) (*usecasecontract.LoginResult, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := u.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u.issueTokens(user)
}

// LoginWithOAuth finds or creates a verified account for an identity asserted
// by the OAuth provider and issues tokens for it.
func (u *UserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (*usecasecontract.LoginResult, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, contract.ErrNotFound) {
			return nil, err
		}
		user = &entity.User{
			ID:         u.uuidgen.NewUUID(),
			Name:       name,
			Username:   entity.GenerateUsername(name),
			Email:      email,
			Role:       entity.DefaultRole(),
			IsVerified: true,
		}
		if err := u.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		u.logger.Infof("created account for OAuth user '%s'", email)
	}
	return u.issueTokens(user)
}

// GetUserByID returns the user with the given id.
func (u *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return u.userRepo.GetUserByID(ctx, userID)
}

func (u *UserUsecase) issueTokens(user *entity.User) (*usecasecontract.LoginResult, error) {
	access, err := u.tokenService.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := u.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return &usecasecontract.LoginResult{
		User:         *user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
