package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/application/taxation"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/infrastructure/observability"
	"github.com/jhoicas/taxhelper-api/pkg/logger"
)

// profileSource datos de negocio guardados del usuario; (nil, nil) si no tiene perfil.
// Lo implementa *business.UseCase.
type profileSource interface {
	ProfileBusinessInfo(ctx context.Context, kakaoID string) (*entity.BusinessInfo, error)
}

// CalcHandler maneja las calculadoras tributarias (público; el token es opcional y solo
// sirve para completar businessInfo desde el perfil guardado).
type CalcHandler struct {
	svc      *taxation.Service
	reports  taxation.ReportGenerator
	filings  taxation.FilingBuilder
	profiles profileSource
	log      *logger.Logger
}

// NewCalcHandler construye el handler. reports, filings y profiles pueden ser nil.
func NewCalcHandler(svc *taxation.Service, reports taxation.ReportGenerator, filings taxation.FilingBuilder, profiles profileSource, log *logger.Logger) *CalcHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CalcHandler{svc: svc, reports: reports, filings: filings, profiles: profiles, log: log}
}

// VAT POST /api/calc/vat
func (h *CalcHandler) VAT(c *fiber.Ctx) error {
	var in dto.VATRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.applyProfile(c, &in.BusinessInfo)
	observability.Calculations.WithLabelValues("vat").Inc()
	return c.JSON(dto.OK(h.svc.CalculateVAT(in)))
}

// Income POST /api/calc/income
func (h *CalcHandler) Income(c *fiber.Ctx) error {
	var in dto.IncomeTaxRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.applyProfile(c, &in.BusinessInfo)
	res := h.svc.CalculateIncomeTax(in)
	h.track(c, "income", res.Summary.TaxableIncome)
	return c.JSON(dto.OK(res))
}

// Labor POST /api/calc/labor
func (h *CalcHandler) Labor(c *fiber.Ctx) error {
	var in dto.LaborTaxRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.applyProfile(c, &in.BusinessInfo)
	res := h.svc.CalculateLaborTax(in)
	h.track(c, "labor", res.Summary.TaxableIncome)
	return c.JSON(dto.OK(res))
}

// Tax POST /api/calc/tax
func (h *CalcHandler) Tax(c *fiber.Ctx) error {
	var in dto.SimpleTaxRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	observability.Calculations.WithLabelValues("tax").Inc()
	return c.JSON(dto.OK(h.svc.CalculateTax(in)))
}

// Refund POST /api/calc/refund
func (h *CalcHandler) Refund(c *fiber.Ctx) error {
	var in dto.RefundRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.applyProfile(c, &in.BusinessInfo)
	res := h.svc.CalculateRefund(in)
	h.track(c, "refund", res.Summary.TaxableIncome)
	return c.JSON(dto.OK(res))
}

// Corporate POST /api/calc/corporate
func (h *CalcHandler) Corporate(c *fiber.Ctx) error {
	var in dto.IncomeTaxRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.applyProfile(c, &in.BusinessInfo)
	res := h.svc.CalculateCorporateTax(in)
	h.track(c, "corporate", res.Summary.TaxableIncome)
	return c.JSON(dto.OK(res))
}

// Sole POST /api/calc/sole
func (h *CalcHandler) Sole(c *fiber.Ctx) error {
	var in dto.IncomeTaxRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.applyProfile(c, &in.BusinessInfo)
	res := h.svc.CalculateSoleTax(in)
	h.track(c, "sole", res.Summary.TaxableIncome)
	return c.JSON(dto.OK(res))
}

// IncomePDF POST /api/calc/income/pdf
func (h *CalcHandler) IncomePDF(c *fiber.Ctx) error {
	if h.reports == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Fail("PDF_DISABLED", "generación de PDF no disponible"))
	}
	var in dto.IncomeTaxRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.applyProfile(c, &in.BusinessInfo)
	res := h.svc.CalculateIncomeTax(in)
	h.track(c, "income_pdf", res.Summary.TaxableIncome)

	out, err := h.reports.GenerateIncomeTaxPDF(c.Context(), res)
	if err != nil {
		h.log.Error().Err(err).Msg("generar informe PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("PDF_ERROR", "no se pudo generar el PDF"))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="income-tax-report.pdf"`)
	return c.Send(out)
}

// VATXML POST /api/calc/vat/xml
func (h *CalcHandler) VATXML(c *fiber.Ctx) error {
	if h.filings == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Fail("XML_DISABLED", "generación de XML no disponible"))
	}
	var in dto.VATRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	h.applyProfile(c, &in.BusinessInfo)
	observability.Calculations.WithLabelValues("vat_xml").Inc()

	filing, err := h.filings.BuildVATFiling(c.Context(), h.svc.CalculateVAT(in))
	if err != nil {
		h.log.Error().Err(err).Msg("generar XML de IVA")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("XML_ERROR", "no se pudo generar el XML"))
	}
	return c.JSON(dto.OK(filing))
}

// Schedule GET /api/tax/schedule/:taxType
func (h *CalcHandler) Schedule(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.svc.Schedule(strings.ToUpper(c.Params("taxType")))))
}

// track cuenta el cálculo y avisa cuando la renta gravable sale negativa
// (deducciones mayores que el ingreso): el resultado se devuelve igual.
func (h *CalcHandler) track(c *fiber.Ctx, operation string, taxable int64) {
	observability.Calculations.WithLabelValues(operation).Inc()
	if taxable < 0 {
		observability.NegativeTaxableIncome.WithLabelValues(operation).Inc()
		h.log.Warn().
			Str("operation", operation).
			Int64("taxable_income", taxable).
			Str("request_id", localString(c, LocalRequestID)).
			Msg("renta gravable negativa")
	}
}

// applyProfile completa businessInfo con el perfil guardado cuando la petición no lo trae
// y el usuario está identificado.
func (h *CalcHandler) applyProfile(c *fiber.Ctx, in *dto.BusinessInfoInput) {
	if h.profiles == nil || in.CompanyName != "" || in.BusinessNumber != "" {
		return
	}
	userID := GetUserID(c)
	if userID == "" {
		return
	}
	info, err := h.profiles.ProfileBusinessInfo(c.Context(), userID)
	if err != nil {
		h.log.Warn().Err(err).Str("kakao_id", userID).Msg("leer perfil para el cálculo")
		return
	}
	if info == nil {
		return
	}
	in.CompanyName = info.CompanyName
	in.BusinessNumber = info.BusinessNumber
	if in.TaxType == "" {
		in.TaxType = string(info.TaxType)
	}
	if in.Industry == "" {
		in.Industry = string(info.Industry)
	}
	if !bool(in.IsSimplified) {
		in.IsSimplified = dto.Flag(info.IsSimplified)
	}
}
