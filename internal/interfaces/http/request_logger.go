package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/detailing-dashboard/pkg/logger"
)

// RequestLogger registra cada request con zerolog: 5xx en error, 4xx en warn y el resto en info.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		if err, ok := c.Locals(LocalError).(error); ok {
			ev = ev.Err(err)
		}
		if chainErr != nil {
			ev = ev.AnErr("handler_error", chainErr)
		}
		if rid, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
			ev = ev.Str("request_id", rid)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("persona_id", GetPersonaID(c)).
			Msg("request")
		return chainErr
	}
}
