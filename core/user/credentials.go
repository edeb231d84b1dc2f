package user

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// CredentialVerifier hashes new passwords and checks login attempts against stored ones.
type CredentialVerifier interface {
	Hash(pwd string) (string, error)
	Verify(stored, given string) bool
}

// NewCredentialVerifier returns the verifier for scheme, defaulting to plain.
func NewCredentialVerifier(scheme string, bcryptCost int) CredentialVerifier {
	if scheme == SchemeBcrypt {
		return BcryptVerifier{Cost: bcryptCost}
	}
	return PlainVerifier{}
}

// PlainVerifier compares stored plaintext passwords as-is.
type PlainVerifier struct{}

func (PlainVerifier) Hash(pwd string) (string, error) {
	return pwd, nil
}

func (PlainVerifier) Verify(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(pwd string) (string, error) {
	cost := v.Cost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptVerifier) Verify(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}
