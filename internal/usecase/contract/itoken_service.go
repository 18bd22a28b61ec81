package usecasecontract

// ITokenService issues and verifies the tokens that carry the acting-user
// identity. The reaction and write paths trust the identifier it resolves.
type ITokenService interface {
	GenerateAccessToken(userID, role string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	// VerifyAccessToken validates a token and returns the user id and role
	// embedded in it.
	VerifyAccessToken(token string) (userID, role string, err error)
}
