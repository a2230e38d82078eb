package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/detailing-dashboard/internal/interfaces/http"
	"github.com/jhoicas/detailing-dashboard/pkg/logger"
)

func TestRequestLogger_NivelSegunStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{fiber.StatusOK, "info"},
		{fiber.StatusNotFound, "warn"},
		{fiber.StatusBadGateway, "error"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		app := fiber.New()
		app.Use(requestid.New())
		app.Use(apphttp.RequestLogger(logger.NewWithWriter(&buf, "info")))
		app.Get("/x", func(c *fiber.Ctx) error { return c.SendStatus(tc.status) })

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "debe escribirse una línea JSON por request")
		assert.Equal(t, tc.level, line["level"])
		assert.EqualValues(t, tc.status, line["status"])
		assert.Equal(t, "/x", line["path"])
		assert.NotEmpty(t, line["request_id"])
		assert.Equal(t, "http", line["component"])
	}
}
