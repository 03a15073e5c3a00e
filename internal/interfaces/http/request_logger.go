package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/creditmemo-api/pkg/logger"
)

// RequestLogger propaga el X-Request-ID (middleware requestid) al contexto de la petición
// y registra una línea de acceso por respuesta. Debe ir después de requestid.New().
func RequestLogger(log *logger.Logger) fiber.Handler {
	httpLog := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.GetRespHeader(fiber.HeaderXRequestID)
		c.SetUserContext(logger.ContextWithRequestID(c.UserContext(), requestID))

		err := c.Next()
		if err != nil {
			// el error handler de fiber aún no escribió el status
			var ferr *fiber.Error
			if errors.As(err, &ferr) {
				c.Status(ferr.Code)
			} else {
				c.Status(fiber.StatusInternalServerError)
			}
		}

		httpLog.Ctx(c.UserContext()).Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición")
		return err
	}
}
