package handlers

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JadedPigeon/tectoniccalc/internal/damage"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func generateToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail maps err onto a response: missing rows are 404, inputs the calculator
// rejects are 422, anything else is logged and reported as 500.
func (cfg *Config) fail(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, damage.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, "cannot compute: "+err.Error())
	default:
		cfg.logger().Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
