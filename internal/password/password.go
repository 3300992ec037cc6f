// Package password wraps the one-way hashing the user routes rely on.
package password

import "golang.org/x/crypto/bcrypt"

// Cost mirrors the 10 salt rounds the directory has always hashed with.
const Cost = 10

func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether plain matches the stored digest.
func Compare(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
