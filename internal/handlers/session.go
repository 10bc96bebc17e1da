package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/JadedPigeon/tectoniccalc/internal/database"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnauthorized = errors.New("Unauthorized")

func (cfg *Config) Authorize(r *http.Request) (*database.User, error) {
	// Look up user by cookie
	cookie, err := r.Cookie("session_token")
	if err != nil || cookie.Value == "" {
		return nil, ErrUnauthorized
	}
	user, err := cfg.DB.GetUserBySessionToken(r.Context(), sql.NullString{String: cookie.Value, Valid: true})
	if err != nil || !user.SessionToken.Valid || user.SessionToken.String != cookie.Value {
		return nil, ErrUnauthorized
	}

	csrf := r.Header.Get("X-CSRF-Token")
	if !user.CsrfToken.Valid || csrf != user.CsrfToken.String {
		return nil, ErrUnauthorized
	}

	return &user, nil
}

type contextKey string

const userContextKey contextKey = "user"

func (cfg *Config) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := cfg.Authorize(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// currentUser returns the user AuthMiddleware stored on the request.
func currentUser(r *http.Request) (*database.User, bool) {
	user, ok := r.Context().Value(userContextKey).(*database.User)
	return user, ok && user != nil
}

func (cfg *Config) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Bad form data")
		return
	}
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	// check if user already exists
	_, err := cfg.DB.GetUserByUsername(r.Context(), username)
	if err == nil {
		writeError(w, http.StatusConflict, "User already exists")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		cfg.fail(w, err, "")
		return
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}

	if err := cfg.DB.CreateUser(r.Context(), database.CreateUserParams{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashedPassword,
	}); err != nil {
		cfg.fail(w, err, "")
		return
	}

	cfg.logger().Info("user registered", zap.String("username", username))
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (cfg *Config) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Bad form data")
		return
	}
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	user, err := cfg.DB.GetUserByUsername(r.Context(), username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			cfg.logger().Error("looking up user", zap.String("username", username), zap.Error(err))
		}
		writeError(w, http.StatusUnauthorized, "Invalid login")
		return
	}
	if !checkPasswordHash(password, user.PasswordHash) {
		cfg.logger().Info("invalid password", zap.String("username", username))
		writeError(w, http.StatusUnauthorized, "Invalid login")
		return
	}

	sessionToken, err := generateToken(32)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}
	csrfToken, err := generateToken(32)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}

	if err := cfg.DB.SetUserSession(r.Context(), database.SetUserSessionParams{
		SessionToken: sql.NullString{String: sessionToken, Valid: true},
		CsrfToken:    sql.NullString{String: csrfToken, Valid: true},
		ID:           user.ID,
	}); err != nil {
		cfg.fail(w, err, "")
		return
	}

	expires := time.Now().Add(cfg.SessionDuration)
	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    sessionToken,
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	// readable by scripts so they can echo it in X-CSRF-Token
	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    csrfToken,
		Expires:  expires,
		HttpOnly: false,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Login successfully"})
}

func (cfg *Config) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HttpOnly: false,
	})

	if err := cfg.DB.SetUserSession(r.Context(), database.SetUserSessionParams{
		SessionToken: sql.NullString{Valid: false},
		CsrfToken:    sql.NullString{Valid: false},
		ID:           user.ID,
	}); err != nil {
		cfg.fail(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Use to test protected endpoints
func (cfg *Config) ProtectedHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Hello " + user.Username + ", you are making a protected call!",
	})
}
