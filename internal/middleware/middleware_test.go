package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": c.GetString("session_id")})
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", SessionMiddleware(), okHandler)

	t.Run("first visit mints a session cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var sessionID string
		for _, ck := range w.Result().Cookies() {
			if ck.Name == "shop_session" {
				sessionID = ck.Value
				assert.True(t, ck.HttpOnly)
				assert.Equal(t, 30*24*60*60, ck.MaxAge)
			}
		}
		require.NotEmpty(t, sessionID)
		_, err := uuid.Parse(sessionID)
		assert.NoError(t, err)
	})

	t.Run("an existing cookie is reused, not replaced", func(t *testing.T) {
		existing := uuid.New().String()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "shop_session", Value: existing})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), existing)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", RequestID(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString("X-Request-ID")})
	})

	t.Run("mints an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps an incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "trace-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "trace-42", w.Header().Get("X-Request-ID"))
	})
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", RateLimitByIP(1, 2), okHandler)

	get := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, get())
	assert.Equal(t, http.StatusOK, get())
	assert.Equal(t, http.StatusTooManyRequests, get())
}

func TestRateLimitByUser_KeysOnSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limit := RateLimitByUser(0.0001, 1)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.Set("session_id", c.Query("session"))
		c.Next()
	}, limit, okHandler)

	get := func(session string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?session="+session, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, get("a"))
	assert.Equal(t, http.StatusTooManyRequests, get("a"))
	// A different session has its own bucket.
	assert.Equal(t, http.StatusOK, get("b"))
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.GET("/admin", AuthMiddleware(), RoleMiddleware("ADMIN"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user": c.GetString("user_id_validated"),
			"role": c.GetString("role"),
		})
	})

	getWithToken := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid admin token passes", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"user_id": "admin",
			"role":    "ADMIN",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w := getWithToken(token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user":"admin"`)
	})

	t.Run("missing cookie is unauthorized", func(t *testing.T) {
		w := getWithToken("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is reported as expired", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"user_id": "admin",
			"role":    "ADMIN",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		w := getWithToken(token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication token expired")
	})

	t.Run("wrong signature is rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{
			"user_id": "admin",
			"role":    "ADMIN",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w := getWithToken(token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-admin role is forbidden", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"user_id": "someone",
			"role":    "CUSTOMER",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w := getWithToken(token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRoleMiddleware_NoRoleSet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", RoleMiddleware("ADMIN"), okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
