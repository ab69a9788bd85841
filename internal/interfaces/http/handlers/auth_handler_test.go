package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"orderdesk.backend/internal/usecases"
	"orderdesk.backend/pkg/jwt"
)

func newAuthRouter(users *userRepoStub, codes *codeRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	h := NewAuthHandler(usecases.NewAuthUsecase(users, codes, jwtService))

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/verify-email", h.VerifyEmail)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.RefreshToken)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_RegisterVerifyLoginFlow(t *testing.T) {
	users := newUserRepoStub()
	codes := &codeRepoStub{}
	r := newAuthRouter(users, codes)

	w := postJSON(t, r, "/auth/register", `{"username":"dina","email":"dina@example.com","password":"s3cret-pass"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if len(codes.codes) != 1 {
		t.Fatalf("expected one verification code, got %d", len(codes.codes))
	}

	// Unverified accounts cannot log in yet.
	w = postJSON(t, r, "/auth/login", `{"email":"dina@example.com","password":"s3cret-pass"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("unverified login: expected 403, got %d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(t, r, "/auth/verify-email", `{"email":"dina@example.com","code":"`+codes.codes[0].Code+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("verify: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(t, r, "/auth/login", `{"email":"dina@example.com","password":"s3cret-pass"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var loginResp struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		User         struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}
	if loginResp.AccessToken == "" || loginResp.RefreshToken == "" {
		t.Fatalf("expected token pair, got %s", w.Body.String())
	}
	if loginResp.User.Role != "USER" {
		t.Fatalf("expected default USER role, got %q", loginResp.User.Role)
	}

	w = postJSON(t, r, "/auth/refresh", `{"refreshToken":"`+loginResp.RefreshToken+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	users := newUserRepoStub()
	codes := &codeRepoStub{}
	r := newAuthRouter(users, codes)

	w := postJSON(t, r, "/auth/register", `{"username":"dina","email":"dina@example.com","password":"s3cret-pass"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}

	w = postJSON(t, r, "/auth/register", `{"username":"other","email":"dina@example.com","password":"s3cret-pass"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	users := newUserRepoStub()
	codes := &codeRepoStub{}
	r := newAuthRouter(users, codes)

	postJSON(t, r, "/auth/register", `{"username":"dina","email":"dina@example.com","password":"s3cret-pass"}`)
	postJSON(t, r, "/auth/verify-email", `{"email":"dina@example.com","code":"`+codes.codes[0].Code+`"}`)

	w := postJSON(t, r, "/auth/login", `{"email":"dina@example.com","password":"wrong-pass"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_VerifyEmail_BadCode(t *testing.T) {
	users := newUserRepoStub()
	codes := &codeRepoStub{}
	r := newAuthRouter(users, codes)

	postJSON(t, r, "/auth/register", `{"username":"dina","email":"dina@example.com","password":"s3cret-pass"}`)

	w := postJSON(t, r, "/auth/verify-email", `{"email":"dina@example.com","code":"000000"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	r := newAuthRouter(newUserRepoStub(), &codeRepoStub{})

	w := postJSON(t, r, "/auth/register", `{"email":"dina@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}
