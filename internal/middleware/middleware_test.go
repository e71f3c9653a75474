package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notes-quizzer/internal/domain"
	"notes-quizzer/internal/dto"
	"notes-quizzer/internal/util"
	"notes-quizzer/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestID())
	app.Use(RequestLogger())
	return app
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.ValidationErrors{domain.NewMissingFieldError("notes")}, http.StatusBadRequest, string(domain.CodeValidation)},
		{"wrapped validation", fmt.Errorf("parse: %w", domain.ValidationErrors{domain.NewInvalidFormatError("body", "eof")}), http.StatusBadRequest, string(domain.CodeValidation)},
		{"fiber", fiber.NewError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown", errors.New("mystery"), http.StatusInternalServerError, string(domain.CodeInternal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/fail", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, float64(tt.wantStatus), body["status"])
		})
	}
}

func TestErrorHandler_RecoveredPanic(t *testing.T) {
	app := newTestApp()
	app.Use(recover.New())
	app.Get("/panic", func(c *fiber.Ctx) error { panic("generator exploded") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeInternal), body["code"])
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, body, "details")
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	app := newTestApp()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return domain.ValidationErrors{domain.NewOutOfRangeError("notes", 11, 0, 10)}
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, domain.CodeOutOfRange, body.Errors[0].Code)
	assert.Equal(t, "notes", body.Errors[0].Field)
}

func TestRequestID(t *testing.T) {
	app := newTestApp()
	app.Get("/id", func(c *fiber.Ctx) error { return c.SendString(RequestIDFromCtx(c)) })

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/id", nil))
		require.NoError(t, err)
		id := resp.Header.Get(RequestIDHeader)
		assert.True(t, util.IsULID(id), "got %q", id)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, id, string(body))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "caller-id-1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "caller-id-1", resp.Header.Get(RequestIDHeader))
	})

	t.Run("OversizedReplaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.True(t, util.IsULID(resp.Header.Get(RequestIDHeader)))
	})
}

func TestValidateQuizRequest(t *testing.T) {
	vm := NewValidationMiddleware(validation.NewValidator(20))
	app := newTestApp()
	app.Post("/quiz", vm.ValidateQuizRequest(), func(c *fiber.Ctx) error {
		req := c.Locals(ValidatedQuizRequestKey).(*dto.QuizRequest)
		return c.JSON(fiber.Map{"notes": req.NotesText(), "n": int(req.N)})
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"notes":"hello","n":"4"}`, http.StatusOK},
		{"null n", `{"notes":"hello","n":null}`, http.StatusOK},
		{"missing notes", `{"n":3}`, http.StatusBadRequest},
		{"notes too long", `{"notes":"this line is far longer than twenty"}`, http.StatusBadRequest},
		{"malformed json", `{"notes":`, http.StatusBadRequest},
		{"bad n", `{"notes":"hello","n":"many"}`, http.StatusBadRequest},
		{"notes not a string", `{"notes":42}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/quiz", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
