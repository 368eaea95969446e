package demo

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/WassimBlilita7/ULMA/pkg/login"
	"github.com/WassimBlilita7/ULMA/pkg/obfuscate"
)

type account struct {
	password string
	user     login.User
}

// Directory is an in-memory Authenticator standing in for the library API.
type Directory struct {
	accounts map[string]account
}

// NewDirectory returns a directory holding the demo accounts.
func NewDirectory() *Directory {
	d := &Directory{accounts: make(map[string]account)}
	d.Add("lecteur@univ.fr", "Lecture2026", login.User{ID: "1", Role: "student"})
	d.Add("biblio@univ.fr", "Catalogue42", login.User{ID: "2", Role: "librarian"})
	return d
}

// Add registers an account. Not safe for use concurrently with Authenticate.
func (d *Directory) Add(email, password string, u login.User) {
	email = strings.ToLower(email)
	u.Email = email
	d.accounts[email] = account{password: password, user: u}
}

func (d *Directory) Authenticate(ctx context.Context, email, password string) (*login.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	acc, ok := d.accounts[email]
	if !ok || subtle.ConstantTimeCompare([]byte(acc.password), []byte(password)) != 1 {
		return nil, login.ErrInvalidCredentials
	}

	return &login.Result{
		Token: obfuscate.GenerateSecureToken(32),
		User:  acc.user,
	}, nil
}
