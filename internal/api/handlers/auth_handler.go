package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/megahand-az/megahand-be/internal/auth"
	"github.com/megahand-az/megahand-be/internal/httpx"
	"github.com/megahand-az/megahand-be/internal/services"
	"github.com/megahand-az/megahand-be/internal/session"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles login, logout and session introspection.
type AuthHandler struct {
	users         services.UserServiceProvider
	sessions      session.Store
	sessionSecret string
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler. secureCookies controls the
// Secure flag on the session cookie.
func NewAuthHandler(users services.UserServiceProvider, sessions session.Store, sessionSecret string, secureCookies bool) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, sessionSecret: sessionSecret, secureCookies: secureCookies}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MeResponse reports the caller's authentication state.
type MeResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username,omitempty"`
}

// Login authenticates a user and establishes a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := httpx.Validate(payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
			httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Login failed")
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	sess := h.sessions.Create(user.ID, user.Username)
	auth.SetSessionCookie(w, sess, h.sessionSecret, h.secureCookies)

	httpx.Respond(w, http.StatusOK, map[string]string{
		"message":  "Login successful",
		"username": user.Username,
	})
}

// Logout destroys the caller's session and clears the cookie. Calling it
// without a session is not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		if token, err := auth.VerifyToken(cookie.Value, h.sessionSecret); err == nil {
			h.sessions.Destroy(token)
		}
	}
	auth.ClearSessionCookie(w)
	httpx.Respond(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// Me reports whether the caller holds a valid session. No side effects.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromRequest(r, h.sessions, h.sessionSecret)
	if !ok {
		httpx.Respond(w, http.StatusOK, MeResponse{IsAuthenticated: false})
		return
	}
	httpx.Respond(w, http.StatusOK, MeResponse{IsAuthenticated: true, Username: sess.Username})
}
