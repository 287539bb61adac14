package tax

import "github.com/shopspring/decimal"

// Resolve devuelve la tarifa marginal del primer tramo cuyo tope (inclusivo) es >= taxable.
// Si ninguno aplica devuelve la del último tramo. No valida negativos: un valor negativo
// cae en el primer tramo.
func (b Brackets) Resolve(taxable int64) decimal.Decimal {
	if len(b) == 0 {
		return decimal.Zero
	}
	for _, br := range b {
		if taxable <= br.Max {
			return br.Rate
		}
	}
	return b[len(b)-1].Rate
}

// Progressive impuesto acumulado por tramos (cada porción de renta paga la tarifa de su
// tramo). Devuelve el valor exacto sin redondear; para taxable <= 0 devuelve cero.
func (b Brackets) Progressive(taxable int64) decimal.Decimal {
	tax := decimal.Zero
	var lower int64
	for _, br := range b {
		if taxable <= lower {
			break
		}
		upper := min(taxable, br.Max)
		tax = tax.Add(decimal.NewFromInt(upper - lower).Mul(br.Rate))
		if br.Max == Unbounded {
			break
		}
		lower = br.Max
	}
	return tax
}

// ResolveRate tarifa marginal para la renta gravable según IncomeBrackets.
func (t RateTable) ResolveRate(taxable int64) decimal.Decimal {
	return t.IncomeBrackets.Resolve(taxable)
}

// floorMul calcula floor(amount * rate) de forma exacta.
func floorMul(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Floor().IntPart()
}

// floorDiv división entera con redondeo hacia -inf.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
