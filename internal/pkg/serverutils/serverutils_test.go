package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Subject string `json:"subject" validate:"required"`
	Level   int    `json:"level" validate:"min=0,max=10"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Subject: "Math", Level: 3}))

	err := ValidateRequest(sampleRequest{Level: 11})
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, fiber.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "subject is required")
	assert.Contains(t, appErr.Message, "level must satisfy max=10")
}

func decode(t *testing.T, body io.Reader) Response {
	t.Helper()
	var res Response
	require.NoError(t, json.NewDecoder(body).Decode(&res))
	return res
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/app", func(c *fiber.Ctx) error { return NewAppError(fiber.StatusBadGateway, "upstream failed", errors.New("x")) })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/raw", func(c *fiber.Ctx) error { return errors.New("db password leaked") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.JSON(SuccessResponse("fine", 1)) })

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/app", fiber.StatusBadGateway, "upstream failed"},
		{"/fiber", fiber.StatusTeapot, "short and stout"},
		{"/raw", fiber.StatusInternalServerError, "Internal Server Error"},
		{"/missing", fiber.StatusNotFound, "Cannot GET /missing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp.Body)
			assert.False(t, body.Success)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	body := decode(t, resp.Body)
	assert.True(t, body.Success)
	assert.Equal(t, "fine", body.Message)
}
