package utils

import "golang.org/x/crypto/bcrypt"

// DefaultResetPassword is what admin-triggered resets set an account to.
const DefaultResetPassword = "password"

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
