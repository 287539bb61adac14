package taxation

import (
	"context"

	"github.com/jhoicas/taxhelper-api/internal/application/dto"
)

// ReportGenerator genera el informe PDF de un cálculo de renta.
type ReportGenerator interface {
	GenerateIncomeTaxPDF(ctx context.Context, res *dto.IncomeTaxResponse) ([]byte, error)
}

// FilingBuilder construye el documento XML de la declaración de IVA.
type FilingBuilder interface {
	BuildVATFiling(ctx context.Context, res *dto.VATResponse) (*dto.VATFilingResponse, error)
}
