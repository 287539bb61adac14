package tax

import (
	"fmt"
	"strings"

	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Claves de tarifas sobreescribibles. Las tarifas de IVA simplificado por sector usan
// SimplifiedVATKeyPrefix + sector, ej. "simplified_vat:RETAIL".
const (
	KeyVAT                 = "vat"
	KeySimplifiedVAT       = "simplified_vat"
	KeyLocalIncomeTax      = "local_income_tax"
	KeyTaxCredit           = "tax_credit"
	KeyNationalPension     = "national_pension"
	KeyHealthInsurance     = "health_insurance"
	KeyLongTermCare        = "long_term_care"
	KeyEmploymentInsurance = "employment_insurance"

	SimplifiedVATKeyPrefix = "simplified_vat:"
)

// WithOverrides devuelve una copia de la tabla con las tarifas y tramos indicados.
// brackets vacío conserva los tramos actuales. La tabla resultante se valida; una clave
// desconocida también es error.
func (t RateTable) WithOverrides(rates map[string]decimal.Decimal, brackets Brackets) (RateTable, error) {
	out := t
	out.SimplifiedVATByIndustry = make(map[entity.Industry]decimal.Decimal, len(t.SimplifiedVATByIndustry))
	for k, v := range t.SimplifiedVATByIndustry {
		out.SimplifiedVATByIndustry[k] = v
	}
	out.IncomeBrackets = append(Brackets(nil), t.IncomeBrackets...)

	for key, r := range rates {
		switch key {
		case KeyVAT:
			out.VAT = r
		case KeySimplifiedVAT:
			out.SimplifiedVAT = r
		case KeyLocalIncomeTax:
			out.LocalIncomeTax = r
		case KeyTaxCredit:
			out.TaxCredit = r
		case KeyNationalPension:
			out.Insurance.NationalPension = r
		case KeyHealthInsurance:
			out.Insurance.HealthInsurance = r
		case KeyLongTermCare:
			out.Insurance.LongTermCare = r
		case KeyEmploymentInsurance:
			out.Insurance.EmploymentInsurance = r
		default:
			industry, ok := strings.CutPrefix(key, SimplifiedVATKeyPrefix)
			if !ok || industry == "" {
				return RateTable{}, fmt.Errorf("%w: clave de tarifa desconocida %q", ErrInvalidRateTable, key)
			}
			out.SimplifiedVATByIndustry[entity.Industry(industry)] = r
		}
	}
	if len(brackets) > 0 {
		out.IncomeBrackets = append(Brackets(nil), brackets...)
	}
	if err := out.Validate(); err != nil {
		return RateTable{}, err
	}
	return out, nil
}

// Entries tarifas de la tabla por clave, en el formato que acepta WithOverrides.
func (t RateTable) Entries() map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{
		KeyVAT:                 t.VAT,
		KeySimplifiedVAT:       t.SimplifiedVAT,
		KeyLocalIncomeTax:      t.LocalIncomeTax,
		KeyTaxCredit:           t.TaxCredit,
		KeyNationalPension:     t.Insurance.NationalPension,
		KeyHealthInsurance:     t.Insurance.HealthInsurance,
		KeyLongTermCare:        t.Insurance.LongTermCare,
		KeyEmploymentInsurance: t.Insurance.EmploymentInsurance,
	}
	for ind, r := range t.SimplifiedVATByIndustry {
		out[SimplifiedVATKeyPrefix+string(ind)] = r
	}
	return out
}
