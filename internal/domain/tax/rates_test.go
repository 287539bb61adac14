package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/domain/tax"
)

func TestDefaultRateTable_Valida(t *testing.T) {
	require.NoError(t, tax.DefaultRateTable().Validate())
	require.NoError(t, tax.StandaloneBrackets.Validate())
}

func TestValidate_TramoNoAscendente(t *testing.T) {
	rt := tax.DefaultRateTable()
	rt.IncomeBrackets[1].Max = rt.IncomeBrackets[0].Max
	err := rt.Validate()
	assert.ErrorIs(t, err, tax.ErrInvalidRateTable)
}

func TestValidate_TarifaNoCreciente(t *testing.T) {
	rt := tax.DefaultRateTable()
	rt.IncomeBrackets[2].Rate = rt.IncomeBrackets[1].Rate
	assert.ErrorIs(t, rt.Validate(), tax.ErrInvalidRateTable)
}

func TestValidate_UltimoTramoDebeSerIlimitado(t *testing.T) {
	b := tax.Brackets{{Max: 100, Rate: rate("0.1")}}
	assert.ErrorIs(t, b.Validate(), tax.ErrInvalidRateTable)
}

func TestValidate_TarifaFueraDeRango(t *testing.T) {
	rt := tax.DefaultRateTable()
	rt.TaxCredit = rate("1.5")
	assert.ErrorIs(t, rt.Validate(), tax.ErrInvalidRateTable)
}

// ── Selección de tarifa de IVA ───────────────────────────────────────────────

func TestVATRate_SeleccionPorTipo(t *testing.T) {
	rt := tax.DefaultRateTable()

	corp := entity.BusinessInfo{TaxType: entity.TaxTypeCorporation, IsSimplified: true, Industry: entity.IndustryService}
	assert.True(t, rate("0.1").Equal(rt.VATRate(corp)), "persona jurídica siempre usa la tarifa general")

	sole := entity.BusinessInfo{TaxType: entity.TaxTypeSole, Industry: entity.IndustryService}
	assert.True(t, rate("0.1").Equal(rt.VATRate(sole)))

	sole.IsSimplified = true
	assert.True(t, rate("0.04").Equal(rt.VATRate(sole)))

	sole.Industry = "MINING"
	assert.True(t, rate("0.03").Equal(rt.VATRate(sole)), "sector desconocido usa la tarifa simplificada genérica")
}
