package users

// User is one credential row. PasswordHash is a one-way salted bcrypt hash;
// plaintext passwords are never stored.
type User struct {
	Username     string
	PasswordHash string
}
