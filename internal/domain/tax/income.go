package tax

import "github.com/shopspring/decimal"

// IncomeTaxAmount resultado del impuesto sobre la renta.
type IncomeTaxAmount struct {
	TaxableIncome  int64
	IncomeTax      int64
	LocalIncomeTax int64
	TaxCredit      int64
	FinalTax       int64
}

// CalculateIncomeTaxAmount aplica la tarifa a la renta gravable, suma el impuesto local
// (10% del impuesto) y resta el crédito tributario.
// La renta gravable NO se limita a cero: si las deducciones superan el ingreso el
// resultado es negativo y el llamador decide cómo tratarlo.
func (t RateTable) CalculateIncomeTaxAmount(totalIncome, totalDeductions int64, taxRate decimal.Decimal) IncomeTaxAmount {
	taxable := totalIncome - totalDeductions
	incomeTax := floorMul(taxable, taxRate)
	local := floorMul(incomeTax, t.LocalIncomeTax)
	credit := floorMul(incomeTax, t.TaxCredit)
	return IncomeTaxAmount{
		TaxableIncome:  taxable,
		IncomeTax:      incomeTax,
		LocalIncomeTax: local,
		TaxCredit:      credit,
		FinalTax:       incomeTax + local - credit,
	}
}
