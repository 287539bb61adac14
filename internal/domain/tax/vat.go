package tax

import "github.com/shopspring/decimal"

// vatInclusiveDivisor las ventas se reciben con el 10% de IVA incluido.
var vatInclusiveDivisor = decimal.RequireFromString("1.1")

// VATInput entrada de la calculadora de IVA. TaxableSales ya excluye ventas no gravadas.
type VATInput struct {
	TaxableSales   int64
	TotalPurchases int64
	IsSimplified   bool
	TaxRate        decimal.Decimal
}

// VATAmount resultado del cálculo de IVA. VAT negativo indica saldo a favor.
type VATAmount struct {
	SupplyAmount int64
	OutputTax    int64
	InputTax     int64
	VAT          int64
}

// CalculateVATAmount calcula valor de suministro, IVA generado, IVA descontable e IVA neto.
// En régimen simplificado no hay IVA descontable.
func CalculateVATAmount(in VATInput) VATAmount {
	supply := decimal.NewFromInt(in.TaxableSales).Div(vatInclusiveDivisor).Floor().IntPart()
	output := floorMul(supply, in.TaxRate)
	var input int64
	if !in.IsSimplified {
		input = floorMul(in.TotalPurchases, in.TaxRate)
	}
	return VATAmount{
		SupplyAmount: supply,
		OutputTax:    output,
		InputTax:     input,
		VAT:          output - input,
	}
}
