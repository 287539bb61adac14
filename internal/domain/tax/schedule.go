package tax

import "github.com/jhoicas/taxhelper-api/internal/domain/entity"

// Kind tipo de impuesto en el calendario de declaraciones.
type Kind string

const (
	KindVAT         Kind = "VAT"
	KindIncome      Kind = "INCOME"
	KindCorporate   Kind = "CORPORATE"
	KindWithholding Kind = "WITHHOLDING"
)

// ScheduleEntry una obligación del calendario tributario.
type ScheduleEntry struct {
	Kind        Kind
	Title       string
	Description string
}

// Schedule calendario de declaraciones según el tipo de contribuyente, en orden fijo.
// Un tipo desconocido se trata como SOLE.
func Schedule(taxType entity.TaxType) []ScheduleEntry {
	withholding := ScheduleEntry{Kind: KindWithholding, Title: "Withholding", Description: "Monthly: 10th, Semiannual: 7/10 and 1/10"}
	if taxType == entity.TaxTypeCorporation {
		return []ScheduleEntry{
			{Kind: KindVAT, Title: "VAT", Description: "1st half: 4/1-7/25, 2nd half: 10/1-1/25"},
			withholding,
			{Kind: KindCorporate, Title: "Corporate Tax", Description: "By period: 3/31, 6/30, 9/30, 12/31"},
		}
	}
	return []ScheduleEntry{
		{Kind: KindIncome, Title: "Income Tax", Description: "Filing window: 5/1-5/31"},
		{Kind: KindVAT, Title: "VAT", Description: "1st half: 7/1-7/25, 2nd half: 1/1-1/25"},
		withholding,
	}
}
