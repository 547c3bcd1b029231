package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost стоимость bcrypt
const Cost = 10

var (
	// ErrMismatch возвращается, когда пароль не совпадает с хешем
	ErrMismatch = errors.New("password: mismatch")

	// ErrHash возвращается при ошибке хеширования
	ErrHash = errors.New("password: failed to hash")
)

// Hash хеширует пароль bcrypt
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHash, err)
	}
	return string(hashed), nil
}

// Compare сверяет пароль с bcrypt-хешем
func Compare(hash, plain string) error {
	if hash == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}
