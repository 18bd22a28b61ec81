package jwt

import (
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// TokenServiceAdapter adapts JWTManager to the usecasecontract.ITokenService
// interface consumed by usecases and the auth middleware.
type TokenServiceAdapter struct {
	mgr *JWTManager
}

// NewTokenService creates an ITokenService backed by JWTManager.
func NewTokenService(mgr *JWTManager) usecasecontract.ITokenService {
	return &TokenServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a user.
func (a *TokenServiceAdapter) GenerateAccessToken(userID, role string) (string, error) {
	return a.mgr.GenerateAccessToken(userID, role)
}

// GenerateRefreshToken issues a refresh token for a user.
func (a *TokenServiceAdapter) GenerateRefreshToken(userID string) (string, error) {
	return a.mgr.GenerateRefreshToken(userID)
}

// VerifyAccessToken validates an access token and extracts the principal.
func (a *TokenServiceAdapter) VerifyAccessToken(token string) (string, string, error) {
	claims, err := a.mgr.VerifyToken(token)
	if err != nil {
		return "", "", err
	}
	return claims.UserID, claims.Role, nil
}
