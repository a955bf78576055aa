package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-on-wheel/internal/auth"
	"github.com/BruksfildServices01/service-on-wheel/internal/db"
	"github.com/BruksfildServices01/service-on-wheel/internal/db/dbtest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authedEngine(tokens *auth.Issuer) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.MustGet(ContextUserID),
			"email": c.MustGet(ContextUserEmail),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewIssuer("test-secret", time.Hour)
	token, err := tokens.Issue(7, "a@x.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
	}

	r := authedEngine(tokens)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"email":"a@x.com"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"message"`)
			}
		})
	}
}

func TestAuthMiddleware_RejectsOtherSecret(t *testing.T) {
	token, err := auth.NewIssuer("other-secret", time.Hour).Issue(7, "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authedEngine(auth.NewIssuer("test-secret", time.Hour)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDBScope_ReleasedAfterHandler(t *testing.T) {
	gdb := dbtest.Open(t)
	var seen *db.Scope

	r := gin.New()
	r.Use(DBScope(db.NewGateway(gdb)))
	r.GET("/touch", func(c *gin.Context) {
		seen = Scope(c)
		conn, err := seen.DB()
		require.NoError(t, err)
		require.NoError(t, conn.Exec("SELECT 1").Error)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/touch", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.NotNil(t, seen)
	assert.False(t, seen.Acquired())

	_, err := seen.DB()
	assert.ErrorIs(t, err, db.ErrScopeReleased)
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(HeaderRequestID)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())
}
