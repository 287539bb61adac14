package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taxhelper-api/internal/domain"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/infrastructure/memory"
)

func TestBusinessProfileRepo_CicloCompleto(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBusinessProfileRepository()

	got, err := repo.GetByKakaoID(ctx, "k1")
	require.NoError(t, err)
	assert.Nil(t, got)

	created := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &entity.BusinessProfile{
		ID: "id-1", KakaoID: "k1", CompanyName: "A", CreatedAt: created,
	}))

	// el segundo upsert conserva ID y CreatedAt
	p := &entity.BusinessProfile{ID: "id-2", KakaoID: "k1", CompanyName: "B", CreatedAt: time.Now()}
	require.NoError(t, repo.Upsert(ctx, p))
	assert.Equal(t, "id-1", p.ID)

	got, err = repo.GetByKakaoID(ctx, "k1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "B", got.CompanyName)
	assert.Equal(t, created, got.CreatedAt)

	// copia: modificar lo devuelto no altera lo guardado
	got.CompanyName = "mutado"
	again, _ := repo.GetByKakaoID(ctx, "k1")
	assert.Equal(t, "B", again.CompanyName)

	require.NoError(t, repo.Delete(ctx, "k1"))
	assert.ErrorIs(t, repo.Delete(ctx, "k1"), domain.ErrNotFound)
}

func TestBusinessProfileRepo_SinKakaoID(t *testing.T) {
	repo := memory.NewBusinessProfileRepository()
	assert.ErrorIs(t, repo.Upsert(context.Background(), &entity.BusinessProfile{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, repo.Upsert(context.Background(), nil), domain.ErrInvalidInput)
}

func TestBusinessProfileRepo_Concurrente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBusinessProfileRepository()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Upsert(ctx, &entity.BusinessProfile{KakaoID: "k", CompanyName: "C"})
			_, _ = repo.GetByKakaoID(ctx, "k")
		}()
	}
	wg.Wait()
	got, err := repo.GetByKakaoID(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "C", got.CompanyName)
}
