package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/app2/products-catalog/internal/core/domain"
)

type stubAuthService struct {
	registerFn   func(ctx context.Context, login, password, role string) error
	loginFn      func(ctx context.Context, login, password string) (string, error)
	adminLoginFn func(ctx context.Context, login, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, login, password, role string) error {
	return s.registerFn(ctx, login, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, login, password string) (string, error) {
	return s.loginFn(ctx, login, password)
}

func (s *stubAuthService) AdminLogin(ctx context.Context, login, password string) (string, error) {
	return s.adminLoginFn(ctx, login, password)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, login, password, role string) error {
			if login != "alice" || role != domain.RoleUser {
				t.Fatalf("unexpected args: %s %s", login, role)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"login":"alice","password":"secret1","role":"USER"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestAuthHandler_Register_DuplicateLogin(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, login, password, role string) error {
			return domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"login":"bob","password":"secret1","role":"USER"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_AdminRoleRejected(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, login, password, role string) error {
			return domain.ErrInvalidInput
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"login":"mallory","password":"secret1","role":"ADMIN"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, login, password, role string) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	// Password below the minimum length.
	body := strings.NewReader(`{"login":"alice","password":"ab","role":"USER"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, error) {
			if login != "alice" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", login, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"login":"alice","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"login":"alice","password":"wrong12"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_AdminLogin_NonReservedLogin(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		adminLoginFn: func(ctx context.Context, login, password string) (string, error) {
			return "", domain.ErrInvalidInput
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"login":"alice","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/admin", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.AdminLogin(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_AdminLogin_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		adminLoginFn: func(ctx context.Context, login, password string) (string, error) {
			return "admin-token", nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"login":"gerenciador","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/admin", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "admin-token" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
}
