package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/taxhelper-api/internal/domain/repository"
	"github.com/jhoicas/taxhelper-api/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// Asegura que RateTableRepo implementa repository.RateTableRepository.
var _ repository.RateTableRepository = (*RateTableRepo)(nil)

// RateTableRepo lee las sobreescrituras de tarifas (tax_rates, income_tax_brackets).
// Las columnas NUMERIC se escanean directo a decimal.Decimal gracias al codec
// pgx-shopspring-decimal registrado en NewPool.
type RateTableRepo struct {
	q Querier
}

// NewRateTableRepository construye el adaptador.
func NewRateTableRepository(q Querier) *RateTableRepo {
	return &RateTableRepo{q: q}
}

// Load aplica sobre base las filas guardadas. Devuelve overridden=false si no hay filas
// (o si las tablas aún no existen) y en ese caso base sin cambios.
func (r *RateTableRepo) Load(ctx context.Context, base tax.RateTable) (tax.RateTable, bool, error) {
	rates, err := r.loadRates(ctx)
	if err != nil {
		return base, false, err
	}
	brackets, err := r.loadBrackets(ctx)
	if err != nil {
		return base, false, err
	}
	if len(rates) == 0 && len(brackets) == 0 {
		return base, false, nil
	}
	table, err := base.WithOverrides(rates, brackets)
	if err != nil {
		return base, false, err
	}
	return table, true, nil
}

func (r *RateTableRepo) loadRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	rows, err := r.q.Query(ctx, `SELECT key, rate FROM tax_rates`)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list tax rates: %w", err)
	}
	defer rows.Close()

	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			key  string
			rate decimal.Decimal
		)
		if err := rows.Scan(&key, &rate); err != nil {
			return nil, fmt.Errorf("scan tax rate: %w", err)
		}
		out[key] = rate
	}
	if err := rows.Err(); err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list tax rates: %w", err)
	}
	return out, nil
}

func (r *RateTableRepo) loadBrackets(ctx context.Context) (tax.Brackets, error) {
	rows, err := r.q.Query(ctx, `SELECT max_income, rate FROM income_tax_brackets ORDER BY position`)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list income brackets: %w", err)
	}
	defer rows.Close()

	var out tax.Brackets
	for rows.Next() {
		var (
			maxIncome *int64
			rate      decimal.Decimal
		)
		if err := rows.Scan(&maxIncome, &rate); err != nil {
			return nil, fmt.Errorf("scan income bracket: %w", err)
		}
		b := tax.Bracket{Max: tax.Unbounded, Rate: rate}
		if maxIncome != nil {
			b.Max = *maxIncome
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list income brackets: %w", err)
	}
	return out, nil
}
