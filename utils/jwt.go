package utils

import (
	"errors"
	"time"

	"tropicab/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "tropicab-dev"
	}
	return []byte(secret)
}

// GenerateAdminToken creates a signed JWT for the admin console.
// The token expires after the specified duration.
func GenerateAdminToken(email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   email,
		"admin": true,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// IsAdminToken reports whether the token carries a valid admin claim.
func IsAdminToken(tokenString string) bool {
	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	admin, _ := claims["admin"].(bool)
	return admin
}
