// Package pdf implementa el informe PDF del cálculo del impuesto sobre la renta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + N° de registro │ Título + fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRIBUYENTE: tipo de contribuyente                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA INGRESOS: concepto | importe                          │
//	│  TABLA DEDUCCIONES: concepto | importe                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: base / renta / local / crédito / IMPUESTO FINAL    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda informativa                                 │
//	└─────────────────────────────────────────────────────────────┘
//
// Las fuentes estándar del PDF no contienen Hangul: las etiquetas van en inglés y los
// importes con separador de miles coreano y sufijo KRW.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/application/taxation"
	"github.com/jhoicas/taxhelper-api/pkg/nts"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var wonPrinter = message.NewPrinter(language.Korean)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa taxation.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateIncomeTaxPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateIncomeTaxPDF(_ context.Context, res *dto.IncomeTaxResponse) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("pdf: resultado de renta vacío")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Income Tax Report", true).
		WithAuthor(nonEmpty(res.BusinessInfo.CompanyName, "taxhelper-api"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(res.BusinessInfo, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(taxpayerRow(res.BusinessInfo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow("INCOME"))
	for _, r := range amountRows(incomeLines(res.Details.Income)) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(2))
	m.AddRows(tableHeaderRow("DEDUCTIONS"))
	for _, r := range amountRows(deductionLines(res.Details.Deductions)) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(res.Summary))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + número de registro (izq) y título + fecha (der).
func headerRow(info dto.BusinessInfoEcho, issuedAt time.Time) core.Row {
	number := info.BusinessNumber
	if cleaned, err := nts.ValidateBusinessNumber(number); err == nil {
		number = nts.FormatBusinessNumber(cleaned)
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(ascii(info.CompanyName), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Business No.: "+number, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INCOME TAX REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Date: "+issuedAt.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func taxpayerRow(info dto.BusinessInfoEcho) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("TAXPAYER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Type: "+info.TaxType, props.Text{Size: 8, Top: 5, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de tabla con el título de la sección.
func tableHeaderRow(title string) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Left,
			Color: colorPrimary, Top: 1, Left: 1,
		})),
		col.New(4).Add(text.New("Amount", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorPrimary, Top: 1, Right: 1,
		})),
	)
}

type amountLine struct {
	label string
	value int64
}

func incomeLines(income interface{}) []amountLine {
	switch v := income.(type) {
	case dto.IncomeDetail:
		return []amountLine{
			{"Business income", v.BusinessIncome},
			{"Other income", v.OtherIncome},
			{"Capital gains", v.CapitalGains},
			{"Interest income", v.InterestIncome},
			{"Dividend income", v.DividendIncome},
		}
	case dto.TotalIncomeDetail:
		return []amountLine{{"Total income", v.Total}}
	}
	return nil
}

func deductionLines(d dto.DeductionsDetail) []amountLine {
	return []amountLine{
		{"Insurance", d.Insurance},
		{"Medical", d.Medical},
		{"Education", d.Education},
		{"Donation", d.Donation},
		{"Retirement", d.Retirement},
		{"Other", d.Other},
	}
}

// amountRows: una fila por concepto.
func amountRows(lines []amountLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(8).Add(text.New(l.label, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 3,
			})),
			col.New(4).Add(text.New(formatWon(l.value), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(s dto.IncomeTaxSummary) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandColor := colorPrimary
	if s.FinalTax < 0 {
		grandColor = colorAlert
	}
	grand := func(v string, right float64) core.Component {
		return text.New(v, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: grandColor, Right: right,
		})
	}

	return row.New(42).Add(
		col.New(3),
		col.New(4).Add(
			label("Total income:"),
			label("Total deductions:"),
			label("Taxable income:"),
			label("Marginal rate:"),
			label("Income tax:"),
			label("Local income tax:"),
			label("Tax credit:"),
			grand("FINAL TAX:", 2),
		),
		col.New(4).Add(
			value(formatWon(s.TotalIncome)),
			value(formatWon(s.TotalDeductions)),
			value(formatWon(s.TaxableIncome)),
			value(decimal.NewFromFloat(s.TaxRate).String()+"%"),
			value(formatWon(s.IncomeTax)),
			value(formatWon(s.LocalIncomeTax)),
			value(formatWon(-s.TaxCredit)),
			grand(formatWon(s.FinalTax), 1),
		),
		col.New(1),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"This report is an estimate computed from the figures provided. "+
				"It is not a tax return and has no legal effect.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatWon importe con separador de miles coreano. Ej: 1234567 → "1,234,567 KRW".
func formatWon(v int64) string {
	return wonPrinter.Sprintf("%d KRW", v)
}

// ascii reemplaza los caracteres fuera de ASCII (no representables en helvetica) por '?'.
func ascii(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r > 0x7e {
			out[i] = '?'
		}
	}
	return string(out)
}

var _ taxation.ReportGenerator = (*MarotoReportGenerator)(nil)
