package controllers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"central-joias/utils"

	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single back-office account, loaded from the
// environment at startup. The password may be plain text or a bcrypt
// hash; a "$2" prefix selects bcrypt comparison.
type AdminCredentials struct {
	Username string
	Password string
}

// AuthController handles admin authentication
type AuthController struct {
	Credentials AdminCredentials
}

// NewAuthController creates a new AuthController
func NewAuthController(credentials AdminCredentials) *AuthController {
	return &AuthController{Credentials: credentials}
}

// Login authenticates the admin and issues the JWT the back-office
// sends on every write
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if !ac.validate(creds.Username, creds.Password) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(creds.Username)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (ac *AuthController) validate(username, password string) bool {
	// Refuse everything while the account is unconfigured.
	if ac.Credentials.Username == "" || ac.Credentials.Password == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(ac.Credentials.Username)) != 1 {
		return false
	}
	if strings.HasPrefix(ac.Credentials.Password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(ac.Credentials.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(ac.Credentials.Password)) == 1
}
