package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func sessionRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionID())
	router.GET("/", func(c *gin.Context) {
		*seen = GetSessionID(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestSessionIDMintsWhenAbsent(t *testing.T) {
	var seen string
	router := sessionRouter(&seen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(SessionHeader))
}

func TestSessionIDHonorsHeader(t *testing.T) {
	var seen string
	router := sessionRouter(&seen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set(SessionHeader, "my-session")
	router.ServeHTTP(w, req)

	assert.Equal(t, "my-session", seen)
	assert.Equal(t, "my-session", w.Header().Get(SessionHeader))
}

func TestSessionIDHonorsCookie(t *testing.T) {
	var seen string
	router := sessionRouter(&seen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-session"})
	router.ServeHTTP(w, req)

	assert.Equal(t, "cookie-session", seen)
}
