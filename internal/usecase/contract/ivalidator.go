package usecasecontract

// IValidator validates user-supplied values beyond what binding tags cover.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
