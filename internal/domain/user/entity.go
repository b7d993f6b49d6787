package user

import "time"

type User struct {
	ID       int64
	Username string
	Name     string
	Email    string
	// Password is compared as an exact plaintext match. Hardening the
	// credential check is out of scope for this local single-user tool.
	Password  string
	CreatedAt time.Time
}
