package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/megahand-az/megahand-be/internal/models"
	"github.com/megahand-az/megahand-be/internal/session"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestSignAndVerifyToken(t *testing.T) {
	t.Parallel()

	signed := SignToken("abc-123", secret)
	token, err := VerifyToken(signed, secret)
	require.NoError(t, err)
	require.Equal(t, "abc-123", token)
}

func TestVerifyToken_Tampered(t *testing.T) {
	t.Parallel()

	signed := SignToken("abc-123", secret)

	_, err := VerifyToken("zzz"+signed[3:], secret)
	require.Error(t, err)

	_, err = VerifyToken("no-signature-here", secret)
	require.Error(t, err)

	_, err = VerifyToken(SignToken("abc-123", "other-secret"), secret)
	require.Error(t, err)
}

func TestSetSessionCookie_SecureFlag(t *testing.T) {
	t.Parallel()

	sess := models.Session{ID: "abc-123", ExpiresAt: time.Now().Add(time.Hour)}

	for _, secure := range []bool{true, false} {
		rec := httptest.NewRecorder()
		SetSessionCookie(rec, sess, secret, secure)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, CookieName, cookies[0].Name)
		require.Equal(t, secure, cookies[0].Secure)
		require.True(t, cookies[0].HttpOnly)
	}
}

func TestRequireSession(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(time.Hour)
	sess := store.Create(1, "admin")

	var sawSession bool
	handler := RequireSession(store, secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := SessionFromContext(r.Context())
		sawSession = ok && got.Username == "admin"
	}))

	// No cookie -> 401, handler never runs.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/articles", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, sawSession)

	// Unsigned token -> 401 before any store lookup.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/articles", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: sess.ID})
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Signed token for a destroyed session -> 401.
	ghost := store.Create(2, "ghost")
	store.Destroy(ghost.ID)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/articles", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: SignToken(ghost.ID, secret)})
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid cookie -> handler runs with the session in context.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/articles", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: SignToken(sess.ID, secret)})
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, sawSession)
}
