package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taxhelper-api/internal/application/business"
	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/domain"
	"github.com/jhoicas/taxhelper-api/pkg/logger"
	"github.com/jhoicas/taxhelper-api/pkg/nts"
)

// BusinessHandler maneja la consulta al registro del NTS y el perfil de negocio.
type BusinessHandler struct {
	uc  *business.UseCase
	log *logger.Logger
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *business.UseCase, log *logger.Logger) *BusinessHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &BusinessHandler{uc: uc, log: log}
}

// Validate verifica la autenticidad del negocio contra el NTS.
// POST /api/business/validate
func (h *BusinessHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateBusinessRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.Validate(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.OK(res))
}

// Status consulta el estado del negocio.
// POST /api/business/status
func (h *BusinessHandler) Status(c *fiber.Ctx) error {
	var in dto.BusinessStatusRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.Status(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.OK(res))
}

// GetProfile GET /api/business/profile
func (h *BusinessHandler) GetProfile(c *fiber.Ctx) error {
	res, err := h.uc.GetProfile(c.Context(), GetUserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.OK(res))
}

// UpdateProfile PUT /api/business/profile
func (h *BusinessHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.UpdateProfile(c.Context(), GetUserID(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.OK(res))
}

// DeleteProfile DELETE /api/business/profile
func (h *BusinessHandler) DeleteProfile(c *fiber.Ctx) error {
	if err := h.uc.DeleteProfile(c.Context(), GetUserID(c)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// fail traduce los errores de dominio a códigos HTTP.
func (h *BusinessHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case business.IsClientError(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "token inválido"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "perfil no encontrado"))
	case errors.Is(err, domain.ErrUnregisteredBusiness):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fail("UNREGISTERED_BUSINESS", err.Error()))
	case errors.Is(err, domain.ErrRegistryUnavailable):
		h.log.Warn().Err(err).Msg("registro del NTS no disponible")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Fail("REGISTRY_UNAVAILABLE", "el servicio del NTS no responde, intente más tarde"))
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "error interno"))
}

// CacheInvalidator descarta estados cacheados del registro. Lo implementa *cache.RegistryCache.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, businessNumber string) error
}

// AdminHandler operaciones de mantenimiento (rol admin).
type AdminHandler struct {
	cache CacheInvalidator
	log   *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(cache CacheInvalidator, log *logger.Logger) *AdminHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AdminHandler{cache: cache, log: log}
}

// InvalidateRegistryCache descarta el estado cacheado de un negocio.
// DELETE /api/admin/registry-cache/:businessNumber
func (h *AdminHandler) InvalidateRegistryCache(c *fiber.Ctx) error {
	number, err := nts.ValidateBusinessNumber(c.Params("businessNumber"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", domain.ErrInvalidBusinessNumber.Error()))
	}
	if err := h.cache.Invalidate(c.Context(), number); err != nil {
		h.log.Error().Err(err).Str("business_number", number).Msg("invalidar caché del registro")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Fail("CACHE_UNAVAILABLE", "no se pudo invalidar la caché"))
	}
	h.log.Info().Str("business_number", number).Str("admin", GetUserID(c)).Msg("caché del registro invalidada")
	return c.SendStatus(fiber.StatusNoContent)
}
