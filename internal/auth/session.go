package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/megahand-az/megahand-be/internal/models"
	"github.com/megahand-az/megahand-be/internal/session"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "megahand_session"

// SessionKey is the context key for the authenticated session.
type contextKey string

const SessionKey = contextKey("session")

// SignToken produces the cookie value for a session token: the opaque token
// plus an HMAC-SHA256 signature, so a forged cookie fails before any store
// lookup. Mirrors how express-session signs its cookie.
func SignToken(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// VerifyToken checks a cookie value's signature and returns the embedded
// session token.
func VerifyToken(value, secret string) (string, error) {
	i := strings.LastIndex(value, ".")
	if i < 0 {
		return "", fmt.Errorf("malformed session cookie")
	}
	token, sig := value[:i], value[i+1:]

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", fmt.Errorf("invalid session cookie signature")
	}
	return token, nil
}

// SetSessionCookie attaches the signed session cookie to the response.
// The Secure flag is controlled by the caller so it follows configuration
// rather than the process environment.
func SetSessionCookie(w http.ResponseWriter, sess models.Session, secret string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    SignToken(sess.ID, secret),
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// ClearSessionCookie instructs the client to drop the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
}

// SessionFromRequest resolves the request's session cookie against the store.
func SessionFromRequest(r *http.Request, store session.Store, secret string) (models.Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return models.Session{}, false
	}
	token, err := VerifyToken(cookie.Value, secret)
	if err != nil {
		return models.Session{}, false
	}
	return store.Get(token)
}

// RequireSession creates a middleware for protecting mutating routes. Requests
// without a valid, unexpired session are rejected with 401.
func RequireSession(store session.Store, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromRequest(r, store, secret)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"message":"Unauthorized"}`)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retrieves the session placed in the context by
// RequireSession.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(models.Session)
	return sess, ok
}
