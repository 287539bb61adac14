package tax_test

import (
	"testing"

	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithOverrides_NoMutaLaOriginal(t *testing.T) {
	base := tax.DefaultRateTable()
	out, err := base.WithOverrides(map[string]decimal.Decimal{
		tax.KeyVAT:                   rate("0.12"),
		"simplified_vat:RETAIL":      rate("0.02"),
		"simplified_vat:AGRICULTURE": rate("0.01"),
	}, nil)
	require.NoError(t, err)

	assert.True(t, out.VAT.Equal(rate("0.12")))
	assert.True(t, out.SimplifiedRate(entity.IndustryRetail).Equal(rate("0.02")))
	assert.True(t, out.SimplifiedRate("AGRICULTURE").Equal(rate("0.01")))

	assert.True(t, base.VAT.Equal(rate("0.1")))
	assert.True(t, base.SimplifiedRate(entity.IndustryRetail).Equal(rate("0.015")))
	assert.Equal(t, base.IncomeBrackets, out.IncomeBrackets)
}

func TestWithOverrides_Tramos(t *testing.T) {
	brackets := tax.Brackets{
		{Max: 10_000_000, Rate: rate("0.05")},
		{Max: tax.Unbounded, Rate: rate("0.30")},
	}
	out, err := tax.DefaultRateTable().WithOverrides(nil, brackets)
	require.NoError(t, err)
	assert.True(t, out.ResolveRate(10_000_001).Equal(rate("0.30")))
}

func TestWithOverrides_Errores(t *testing.T) {
	base := tax.DefaultRateTable()

	_, err := base.WithOverrides(map[string]decimal.Decimal{"stamp_duty": rate("0.01")}, nil)
	assert.ErrorIs(t, err, tax.ErrInvalidRateTable)

	_, err = base.WithOverrides(map[string]decimal.Decimal{tax.KeyTaxCredit: rate("1.5")}, nil)
	assert.ErrorIs(t, err, tax.ErrInvalidRateTable)

	_, err = base.WithOverrides(nil, tax.Brackets{{Max: 1_000, Rate: rate("0.1")}})
	assert.ErrorIs(t, err, tax.ErrInvalidRateTable)
}

func TestEntries_IdaYVueltaConWithOverrides(t *testing.T) {
	base := tax.DefaultRateTable()
	entries := base.Entries()
	assert.True(t, entries[tax.KeyVAT].Equal(base.VAT))
	assert.True(t, entries[tax.SimplifiedVATKeyPrefix+"RETAIL"].Equal(decimal.RequireFromString("0.015")))

	again, err := base.WithOverrides(entries, nil)
	require.NoError(t, err)
	assert.Equal(t, len(entries), len(again.Entries()))
	for k, v := range entries {
		assert.True(t, again.Entries()[k].Equal(v), k)
	}
}
