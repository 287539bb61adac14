package business

import (
	"context"
	"time"

	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
)

// RegistryClient puerto de salida hacia el servicio de estado de negocios del NTS.
// Las implementaciones devuelven domain.ErrRegistryUnavailable (envuelto) cuando el
// servicio no responde o la respuesta viene vacía.
type RegistryClient interface {
	Status(ctx context.Context, businessNumber string) (*entity.RegistryStatus, error)
	Validate(ctx context.Context, q entity.RegistryQuery) (*entity.RegistryValidation, error)
}

// StatusCache caché de consultas de estado. Una ausencia se informa con (nil, nil).
type StatusCache interface {
	Get(ctx context.Context, businessNumber string) (*entity.RegistryStatus, error)
	Set(ctx context.Context, st *entity.RegistryStatus, ttl time.Duration) error
}

// Config parámetros del caso de uso.
type Config struct {
	// Production desactiva el registro de prueba cuando el NTS no responde.
	Production bool
	CacheTTL   time.Duration
}
