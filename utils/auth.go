package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// Claims represents the JWT claims carried by admin tokens
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// TokenTTL returns the configured token lifetime
// (JWT_EXPIRATION_HOURS, default 24 hours).
func TokenTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// GenerateJWT generates a JWT token for the admin panel
func GenerateJWT(username string) (string, error) {
	expirationTime := time.Now().Add(TokenTTL())
	claims := &Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
