// Package tax contiene el motor de cálculo de impuestos coreanos: tablas de tarifas,
// resolución de tramos, IVA, impuesto sobre la renta, retención salarial.
// Todas las funciones son puras; los montos son wones enteros y las tarifas decimal.Decimal.
package tax

import (
	"errors"
	"fmt"
	"math"

	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Unbounded marca el último tramo sin tope superior.
const Unbounded int64 = math.MaxInt64

// ErrInvalidRateTable la tabla de tarifas no cumple los invariantes.
var ErrInvalidRateTable = errors.New("tabla de tarifas inválida")

// Bracket tramo de la tabla progresiva. Max es inclusivo.
type Bracket struct {
	Max  int64
	Rate decimal.Decimal
}

// Brackets tramos ordenados de menor a mayor tope.
type Brackets []Bracket

// InsuranceRates tarifas de los cuatro seguros sociales a cargo del trabajador.
// LongTermCare se aplica sobre el monto del seguro de salud, no sobre el salario.
type InsuranceRates struct {
	NationalPension     decimal.Decimal
	HealthInsurance     decimal.Decimal
	LongTermCare        decimal.Decimal
	EmploymentInsurance decimal.Decimal
}

// RateTable configuración completa de tarifas. Se pasa por valor a cada calculadora;
// no existe estado global mutable.
type RateTable struct {
	VAT                     decimal.Decimal
	SimplifiedVAT           decimal.Decimal // tarifa genérica si el sector no está en la tabla
	SimplifiedVATByIndustry map[entity.Industry]decimal.Decimal
	IncomeBrackets          Brackets
	LocalIncomeTax          decimal.Decimal
	TaxCredit               decimal.Decimal
	Insurance               InsuranceRates
}

func mustDecimal(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultRateTable tabla vigente usada por todas las calculadoras salvo CalculateTax.
func DefaultRateTable() RateTable {
	return RateTable{
		VAT:           mustDecimal("0.1"),
		SimplifiedVAT: mustDecimal("0.03"),
		SimplifiedVATByIndustry: map[entity.Industry]decimal.Decimal{
			entity.IndustryRetail:                    mustDecimal("0.015"),
			entity.IndustryFoodLodging:               mustDecimal("0.03"),
			entity.IndustryManufacturingConstruction: mustDecimal("0.025"),
			entity.IndustryService:                   mustDecimal("0.04"),
		},
		IncomeBrackets: Brackets{
			{Max: 12_000_000, Rate: mustDecimal("0.06")},
			{Max: 46_000_000, Rate: mustDecimal("0.15")},
			{Max: 88_000_000, Rate: mustDecimal("0.24")},
			{Max: 150_000_000, Rate: mustDecimal("0.35")},
			{Max: 300_000_000, Rate: mustDecimal("0.38")},
			{Max: 500_000_000, Rate: mustDecimal("0.40")},
			{Max: Unbounded, Rate: mustDecimal("0.42")},
		},
		LocalIncomeTax: mustDecimal("0.1"),
		TaxCredit:      mustDecimal("0.55"),
		Insurance: InsuranceRates{
			NationalPension:     mustDecimal("0.045"),
			HealthInsurance:     mustDecimal("0.0343"),
			LongTermCare:        mustDecimal("0.1227"),
			EmploymentInsurance: mustDecimal("0.008"),
		},
	}
}

// StandaloneBrackets tabla propia de CalculateTax. Sus topes y tarifas NO coinciden con
// DefaultRateTable().IncomeBrackets (12M vs 14M, 46M vs 50M, tramo de 45%).
// Se mantienen separadas a propósito hasta que producto confirme cuál es la correcta.
var StandaloneBrackets = Brackets{
	{Max: 14_000_000, Rate: mustDecimal("0.06")},
	{Max: 50_000_000, Rate: mustDecimal("0.15")},
	{Max: 88_000_000, Rate: mustDecimal("0.24")},
	{Max: 150_000_000, Rate: mustDecimal("0.35")},
	{Max: 300_000_000, Rate: mustDecimal("0.38")},
	{Max: 500_000_000, Rate: mustDecimal("0.40")},
	{Max: 1_000_000_000, Rate: mustDecimal("0.42")},
	{Max: Unbounded, Rate: mustDecimal("0.45")},
}

// Validate comprueba que los tramos sean contiguos y ascendentes, que la tarifa crezca
// estrictamente y que todas las tarifas estén en [0,1].
func (b Brackets) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("%w: sin tramos", ErrInvalidRateTable)
	}
	for i, br := range b {
		if !inUnitInterval(br.Rate) {
			return fmt.Errorf("%w: tramo %d con tarifa %s fuera de [0,1]", ErrInvalidRateTable, i, br.Rate)
		}
		if i == 0 {
			if br.Max < 0 {
				return fmt.Errorf("%w: tope negativo en el primer tramo", ErrInvalidRateTable)
			}
			continue
		}
		prev := b[i-1]
		if br.Max <= prev.Max {
			return fmt.Errorf("%w: tramo %d no es ascendente (%d <= %d)", ErrInvalidRateTable, i, br.Max, prev.Max)
		}
		if !br.Rate.GreaterThan(prev.Rate) {
			return fmt.Errorf("%w: tramo %d no incrementa la tarifa (%s <= %s)", ErrInvalidRateTable, i, br.Rate, prev.Rate)
		}
	}
	if b[len(b)-1].Max != Unbounded {
		return fmt.Errorf("%w: el último tramo debe ser ilimitado", ErrInvalidRateTable)
	}
	return nil
}

// Validate valida la tabla completa.
func (t RateTable) Validate() error {
	if err := t.IncomeBrackets.Validate(); err != nil {
		return err
	}
	for name, r := range t.Entries() {
		if !inUnitInterval(r) {
			return fmt.Errorf("%w: %s=%s fuera de [0,1]", ErrInvalidRateTable, name, r)
		}
	}
	return nil
}

func inUnitInterval(r decimal.Decimal) bool {
	return !r.IsNegative() && r.LessThanOrEqual(decimal.NewFromInt(1))
}

// SimplifiedRate tarifa de IVA simplificado del sector; genérica si el sector no existe.
func (t RateTable) SimplifiedRate(industry entity.Industry) decimal.Decimal {
	if r, ok := t.SimplifiedVATByIndustry[industry]; ok {
		return r
	}
	return t.SimplifiedVAT
}

// VATRate selecciona la tarifa de IVA: personas jurídicas siempre la general; personas
// naturales la general salvo régimen simplificado, donde aplica la del sector.
func (t RateTable) VATRate(info entity.BusinessInfo) decimal.Decimal {
	if info.IsCorporation() || !info.IsSimplified {
		return t.VAT
	}
	return t.SimplifiedRate(info.Industry)
}
