package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medilive/medilive/internal/platform/apperr"
)

func TestRequestID_GeneratesNew(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequestID()
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("expected generated request id header")
	}
	if rid, _ := c.Get("request_id").(string); rid == "" {
		t.Error("expected request id on echo context")
	}
}

func TestRequestID_PreservesExisting(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.Header().Get(RequestIDHeader); got != "req-abc" {
		t.Errorf("expected req-abc, got %q", got)
	}
}

func TestRecovery_ConvertsPanicTo500(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Recovery(logger)(func(c echo.Context) error {
		panic("boom")
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 HTTPError, got %v", err)
	}
}

func TestErrorHandler_RendersErrorBody(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.GET("/forbidden", func(c echo.Context) error {
		return apperr.ErrForbidden
	})

	req := httptest.NewRequest(http.MethodGet, "/forbidden", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("expected error body, got %s", rec.Body.String())
	}
}

func TestErrorHandler_GenericMessageOnInternalFailure(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("pq: connection reset by peer")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Errorf("internal detail leaked to response: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("expected generic message, got %s", rec.Body.String())
	}
}

func TestErrorHandler_KeepsHTTPErrorStatus(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected 418, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "short and stout") {
		t.Errorf("expected HTTPError message, got %s", rec.Body.String())
	}
}
