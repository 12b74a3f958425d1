package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/domain"
)

// localError clave de c.Locals donde respondError deja el error para el log de peticiones.
const localError = "request_error"

// respondError traduce los errores de dominio a código HTTP y ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	c.Locals(localError, err)

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", ve.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "datos inválidos")
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "el recurso ya existe")
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrSourceUnavailable):
		return fail(c, fiber.StatusBadGateway, "SOURCE_UNAVAILABLE", "la fuente de transacciones no está disponible")
	default:
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
	}
}

func fail(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Status: dto.StatusError, Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

func respondOK(c *fiber.Ctx, data any) error {
	return c.JSON(dto.OK(data))
}

func respondCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}
