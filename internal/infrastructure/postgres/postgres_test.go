package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/taxhelper-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier registra los Exec y devuelve tag/err configurados.
type fakeQuerier struct {
	execs []string
	args  [][]any
	tag   pgconn.CommandTag
	err   error
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	f.args = append(f.args, args)
	return f.tag, f.err
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no implementado")
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func TestMigrate_AplicaEnOrden(t *testing.T) {
	q := &fakeQuerier{}
	require.NoError(t, Migrate(context.Background(), q))
	require.Len(t, q.execs, 2)
	assert.True(t, strings.Contains(q.execs[0], "business_profiles"))
	assert.True(t, strings.Contains(q.execs[1], "tax_rates"))
}

func TestMigrate_PropagaError(t *testing.T) {
	q := &fakeQuerier{err: errors.New("permiso denegado")}
	err := Migrate(context.Background(), q)
	assert.ErrorContains(t, err, "001_business_profiles.sql")
}

func TestBusinessProfileRepo_DeleteSinFilas(t *testing.T) {
	q := &fakeQuerier{tag: pgconn.NewCommandTag("DELETE 0")}
	err := NewBusinessProfileRepository(q).Delete(context.Background(), "kakao-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []any{"kakao-1"}, q.args[0])

	q.tag = pgconn.NewCommandTag("DELETE 1")
	assert.NoError(t, NewBusinessProfileRepository(q).Delete(context.Background(), "kakao-1"))
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, isUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUndefinedTable(errors.New("42P01")))
	assert.True(t, isNoRows(pgx.ErrNoRows))
	assert.NoError(t, ignoreNoRows(pgx.ErrNoRows))
}

func TestLookupIPv4_Literales(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "127.0.0.1", lookupIPv4(ctx, "127.0.0.1"))
	assert.Empty(t, lookupIPv4(ctx, "::1"))
}
