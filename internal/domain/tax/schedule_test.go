package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/domain/tax"
)

func kinds(entries []tax.ScheduleEntry) []tax.Kind {
	out := make([]tax.Kind, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Kind)
	}
	return out
}

func TestSchedule_PorTipoDeContribuyente(t *testing.T) {
	assert.Equal(t, []tax.Kind{tax.KindVAT, tax.KindWithholding, tax.KindCorporate}, kinds(tax.Schedule(entity.TaxTypeCorporation)))
	assert.Equal(t, []tax.Kind{tax.KindIncome, tax.KindVAT, tax.KindWithholding}, kinds(tax.Schedule(entity.TaxTypeSole)))
	assert.Equal(t, kinds(tax.Schedule(entity.TaxTypeSole)), kinds(tax.Schedule("OTHER")))
}
