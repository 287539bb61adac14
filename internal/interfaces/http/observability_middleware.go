package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/jhoicas/taxhelper-api/internal/infrastructure/observability"
	"github.com/jhoicas/taxhelper-api/pkg/logger"
)

// LocalRequestID key del id de petición en c.Locals.
const LocalRequestID = "request_id"

// RequestID propaga X-Request-ID o genera uno nuevo.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(LocalRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// RequestLogger registra cada petición y su duración en el histograma de peticiones.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler fije el status antes de medir
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		latency := time.Since(start)
		status := c.Response().StatusCode()

		// ruta registrada, no la URL, para acotar la cardinalidad.
		// c.Method() apunta al buffer de fasthttp que se reutiliza entre peticiones:
		// las etiquetas de Prometheus sobreviven a la petición y necesitan su propia copia.
		path := utils.CopyString(c.Route().Path)
		method := utils.CopyString(c.Method())

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", localString(c, LocalRequestID)).
			Str("method", method).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.IP()).
			Msg("petición completada")

		observability.RequestDuration.WithLabelValues(
			path,
			method,
			strconv.Itoa(status),
		).Observe(latency.Seconds())
		return nil
	}
}
