package auth

// AdminCredential is a stored administrator account. Passwords are kept only
// as bcrypt digests.
type AdminCredential struct {
	ID           string
	Username     string
	PasswordHash string
}
