package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"loc8r/api-service/internal/models"
)

type stubAuthService struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
}

func (s *stubAuthService) Register(_ context.Context, _, _, _ string) (string, error) {
	return s.registerToken, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, error) {
	return s.loginToken, s.loginErr
}

func newAuthRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(svc)
	router.POST("/api/register", h.Register)
	router.POST("/api/login", h.Login)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	router := newAuthRouter(&stubAuthService{registerToken: "a.b.c"})

	w := postJSON(router, "/api/register", `{"name":"Simon","email":"simon@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"a.b.c"`)
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	router := newAuthRouter(&stubAuthService{registerErr: models.ErrDuplicateEmail})

	w := postJSON(router, "/api/register", `{"name":"Simon","email":"simon@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
	assert.NotContains(t, w.Body.String(), "token")
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	router := newAuthRouter(&stubAuthService{registerErr: models.ErrValidation})

	w := postJSON(router, "/api/register", `{"email":"simon@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All fields required")
}

func TestLoginHandler_Unauthorized(t *testing.T) {
	router := newAuthRouter(&stubAuthService{loginErr: models.ErrUnauthorized})

	wUnknown := postJSON(router, "/api/login", `{"email":"nobody@example.com","password":"s3cret"}`)
	wWrongPass := postJSON(router, "/api/login", `{"email":"simon@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrongPass.Code)
	// One generic message for both failure modes.
	assert.Equal(t, wUnknown.Body.String(), wWrongPass.Body.String())
}

func TestLoginHandler(t *testing.T) {
	router := newAuthRouter(&stubAuthService{loginToken: "a.b.c"})

	w := postJSON(router, "/api/login", `{"email":"simon@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"a.b.c"`)
}
