package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/application/taxation"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 5, 31, 9, 0, 0, 0, time.UTC) }
}

func TestGenerateIncomeTaxPDF_DocumentoValido(t *testing.T) {
	svc := taxation.NewDefaultService()
	res := svc.CalculateIncomeTax(dto.IncomeTaxRequest{
		IncomeInfo: dto.IncomeInfoInput{BusinessIncome: dto.Amount(50_000_000)},
		Deductions: dto.DeductionsInput{Insurance: dto.Amount(10_000_000)},
		BusinessInfo: dto.BusinessInfoInput{
			CompanyName:    "Hanbit Trading",
			BusinessNumber: "1234567891",
			TaxType:        "SOLE",
		},
	})

	g := &MarotoReportGenerator{now: fixedClock()}
	out, err := g.GenerateIncomeTaxPDF(context.Background(), res)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe empezar con la cabecera PDF")
}

func TestGenerateIncomeTaxPDF_ReembolsoYNegativo(t *testing.T) {
	svc := taxation.NewDefaultService()
	refund := svc.CalculateRefund(dto.RefundRequest{
		Income:     dto.Amount(-1_000_000),
		PaidTax:    dto.Amount(0),
		Deductions: dto.DeductionsInput{},
	})

	out, err := NewMarotoReportGenerator().GenerateIncomeTaxPDF(context.Background(), &refund.IncomeTaxResponse)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateIncomeTaxPDF_Nil(t *testing.T) {
	_, err := NewMarotoReportGenerator().GenerateIncomeTaxPDF(context.Background(), nil)
	assert.Error(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "0 KRW", formatWon(0))
	assert.Equal(t, "999 KRW", formatWon(999))
	assert.Equal(t, "1,234,567 KRW", formatWon(1_234_567))
	assert.Equal(t, "-66,000 KRW", formatWon(-66_000))
}

func TestIncomeLines(t *testing.T) {
	assert.Len(t, incomeLines(dto.IncomeDetail{}), 5)
	lines := incomeLines(dto.TotalIncomeDetail{Total: 7})
	require.Len(t, lines, 1)
	assert.Equal(t, int64(7), lines[0].value)
	assert.Nil(t, incomeLines(nil))
}

func TestASCII(t *testing.T) {
	assert.Equal(t, "Hanbit", ascii("Hanbit"))
	assert.Equal(t, "?? Co", ascii("한빛 Co"))
}
