package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taxhelper-api/internal/application/dto"
)

// parseBody decodifica el cuerpo JSON; un cuerpo vacío equivale a {}.
// Sin Content-Type JSON el cuerpo se intenta decodificar igual y, si no es JSON válido,
// se ignora (equivale a {}). Con Content-Type JSON un cuerpo inválido es error.
func parseBody(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if c.Is("json") {
		return c.BodyParser(out)
	}
	_ = c.App().Config().JSONDecoder(body, out)
	return nil
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
}
