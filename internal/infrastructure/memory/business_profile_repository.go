// Package memory implementa los repositorios en memoria que usa la API cuando no hay
// PostgreSQL configurado (desarrollo local). Los datos se pierden al reiniciar.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/taxhelper-api/internal/domain"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/domain/repository"
)

// BusinessProfileRepo implementa repository.BusinessProfileRepository sobre un mapa.
type BusinessProfileRepo struct {
	mu       sync.RWMutex
	profiles map[string]entity.BusinessProfile
}

// NewBusinessProfileRepository construye el repositorio vacío.
func NewBusinessProfileRepository() *BusinessProfileRepo {
	return &BusinessProfileRepo{profiles: make(map[string]entity.BusinessProfile)}
}

// Upsert guarda una copia del perfil; conserva ID y CreatedAt del perfil existente.
func (r *BusinessProfileRepo) Upsert(_ context.Context, p *entity.BusinessProfile) error {
	if p == nil || p.KakaoID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.profiles[p.KakaoID]; ok {
		p.ID = prev.ID
		p.CreatedAt = prev.CreatedAt
	}
	r.profiles[p.KakaoID] = *p
	return nil
}

// GetByKakaoID devuelve una copia del perfil o (nil, nil).
func (r *BusinessProfileRepo) GetByKakaoID(_ context.Context, kakaoID string) (*entity.BusinessProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[kakaoID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Delete elimina el perfil.
func (r *BusinessProfileRepo) Delete(_ context.Context, kakaoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[kakaoID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.profiles, kakaoID)
	return nil
}

var _ repository.BusinessProfileRepository = (*BusinessProfileRepo)(nil)
