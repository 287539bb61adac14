package repository

import (
	"context"

	"github.com/jhoicas/taxhelper-api/internal/domain/tax"
)

// RateTableRepository fuente persistente de tarifas que sobrescriben DefaultRateTable.
type RateTableRepository interface {
	// Load aplica sobre base las tarifas guardadas. ok es false si no hay nada guardado.
	Load(ctx context.Context, base tax.RateTable) (table tax.RateTable, ok bool, err error)
}
