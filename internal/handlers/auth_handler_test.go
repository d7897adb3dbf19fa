package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"threadhub_backend/internal/apperrors"
	"threadhub_backend/internal/services/dto"
	"threadhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	lastRegister *dto.RegisterRequest
	lastLogin    *dto.LoginRequest

	loginResp *dto.LoginResponse
	err       error
}

func (s *fakeAuthService) Register(req *dto.RegisterRequest) error {
	s.lastRegister = req
	return s.err
}

func (s *fakeAuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	s.lastLogin = req
	return s.loginResp, s.err
}

func authTestRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New(), 1024)
	handler := NewAuthHandler(base, svc)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{}
	router := authTestRouter(svc)

	w := postJSON(t, router, "/api/auth/register",
		`{"name": "Aidana", "email": "aidana@example.com", "password": "secret99"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	resBody := decodeBody(t, w)
	assert.Equal(t, true, resBody["success"])
	assert.Equal(t, "Account created successfully", resBody["message"])

	require.NotNil(t, svc.lastRegister)
	assert.Equal(t, "aidana@example.com", svc.lastRegister.Email)
}

func TestAuthHandlerRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{err: apperrors.ErrEmailAlreadyExists}
	router := authTestRouter(svc)

	w := postJSON(t, router, "/api/auth/register",
		`{"name": "Aidana", "email": "aidana@example.com", "password": "secret99"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resBody := decodeBody(t, w)
	assert.Equal(t, false, resBody["success"])
	assert.Equal(t, "The email is already registered", resBody["message"])
}

func TestAuthHandlerRegister_MissingFields(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{err: apperrors.ErrFieldsRequired}
	router := authTestRouter(svc)

	// Empty fields reach the service, which owns the presence check.
	w := postJSON(t, router, "/api/auth/register", `{"name": "", "email": "", "password": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resBody := decodeBody(t, w)
	assert.Equal(t, "All fields are required", resBody["message"])
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{loginResp: &dto.LoginResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         dto.PublicUser{ID: "user-1", Email: "aidana@example.com"},
	}}
	router := authTestRouter(svc)

	w := postJSON(t, router, "/api/auth/login",
		`{"email": "aidana@example.com", "password": "secret99"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resBody := decodeBody(t, w)
	assert.Equal(t, true, resBody["success"])
	assert.Equal(t, "Login successfully", resBody["message"])
	assert.Equal(t, "access-token", resBody["accessToken"])
	assert.Equal(t, "refresh-token", resBody["refreshToken"])

	user, ok := resBody["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user-1", user["id"])
}

func TestAuthHandlerLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{err: apperrors.ErrInvalidCredentials}
	router := authTestRouter(svc)

	w := postJSON(t, router, "/api/auth/login",
		`{"email": "aidana@example.com", "password": "wrong"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resBody := decodeBody(t, w)
	assert.Equal(t, "Incorrect email or password", resBody["message"])
}

func TestAuthHandlerLogin_MalformedBody(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{}
	router := authTestRouter(svc)

	w := postJSON(t, router, "/api/auth/login", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastLogin)
}
