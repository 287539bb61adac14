package repository

import (
	"context"

	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
)

// BusinessProfileRepository define el puerto de persistencia para BusinessProfile (DIP).
// La implementación vive en infrastructure.
type BusinessProfileRepository interface {
	// Upsert crea o reemplaza el perfil del usuario (un perfil por KakaoID).
	Upsert(ctx context.Context, profile *entity.BusinessProfile) error
	// GetByKakaoID devuelve (nil, nil) si el usuario no tiene perfil.
	GetByKakaoID(ctx context.Context, kakaoID string) (*entity.BusinessProfile, error)
	// Delete devuelve domain.ErrNotFound si no había perfil.
	Delete(ctx context.Context, kakaoID string) error
}
