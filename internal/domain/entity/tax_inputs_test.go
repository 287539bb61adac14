package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
)

func TestIncomeInfo_TotalSumaTodosLosRubros(t *testing.T) {
	i := entity.IncomeInfo{
		BusinessIncome: 50_000_000,
		OtherIncome:    1_000_000,
		CapitalGains:   200_000,
		InterestIncome: 30_000,
		DividendIncome: 4_000,
	}
	assert.Equal(t, int64(51_234_000), i.Total())
	assert.Zero(t, entity.IncomeInfo{}.Total())
}

func TestDeductions_TotalSumaTodosLosRubros(t *testing.T) {
	d := entity.Deductions{
		Insurance:  1,
		Medical:    10,
		Education:  100,
		Donation:   1_000,
		Retirement: 10_000,
		Other:      100_000,
	}
	assert.Equal(t, int64(111_111), d.Total())
}

func TestSalesInfo_TaxableSales(t *testing.T) {
	s := entity.SalesInfo{TotalSales: 100_000_000, TotalPurchases: 60_000_000, NonTaxableSales: 5_000_000}
	assert.Equal(t, int64(95_000_000), s.TaxableSales())

	// no gravadas mayores que las ventas: el resultado negativo se propaga
	s = entity.SalesInfo{TotalSales: 1_000, NonTaxableSales: 3_000}
	assert.Equal(t, int64(-2_000), s.TaxableSales())
}
