package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/taxhelper-api/internal/domain"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/domain/repository"
	"github.com/jhoicas/taxhelper-api/internal/infrastructure/observability"
)

// Asegura que BusinessProfileRepo implementa repository.BusinessProfileRepository.
var _ repository.BusinessProfileRepository = (*BusinessProfileRepo)(nil)

const profileColumns = `id, kakao_id, company_name, business_number, representative_name, open_date,
	corporation_number, business_type, business_category, address,
	tax_type, is_simplified, industry, registry_status, registry_tax_type,
	verified, last_checked_at, created_at, updated_at`

// BusinessProfileRepo implementación del puerto BusinessProfileRepository sobre PostgreSQL.
type BusinessProfileRepo struct {
	q Querier
}

// NewBusinessProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessProfileRepository(q Querier) *BusinessProfileRepo {
	return &BusinessProfileRepo{q: q}
}

// Upsert crea el perfil o reemplaza el existente del mismo kakao_id (conserva id y created_at).
func (r *BusinessProfileRepo) Upsert(ctx context.Context, p *entity.BusinessProfile) (err error) {
	defer func() {
		observability.DatabaseOperations.WithLabelValues("upsert_profile", observability.StatusLabel(err)).Inc()
	}()

	query := `
		INSERT INTO business_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (kakao_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			business_number = EXCLUDED.business_number,
			representative_name = EXCLUDED.representative_name,
			open_date = EXCLUDED.open_date,
			corporation_number = EXCLUDED.corporation_number,
			business_type = EXCLUDED.business_type,
			business_category = EXCLUDED.business_category,
			address = EXCLUDED.address,
			tax_type = EXCLUDED.tax_type,
			is_simplified = EXCLUDED.is_simplified,
			industry = EXCLUDED.industry,
			registry_status = EXCLUDED.registry_status,
			registry_tax_type = EXCLUDED.registry_tax_type,
			verified = EXCLUDED.verified,
			last_checked_at = EXCLUDED.last_checked_at,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err = r.q.QueryRow(ctx, query,
		p.ID, p.KakaoID, p.CompanyName, p.BusinessNumber, p.RepresentativeName, p.OpenDate,
		p.CorporationNumber, p.BusinessType, p.BusinessCategory, p.Address,
		string(p.TaxType), p.IsSimplified, string(p.Industry), p.RegistryStatus, p.RegistryTaxType,
		p.Verified, p.LastCheckedAt, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert business profile: %w", err)
	}
	return nil
}

// GetByKakaoID obtiene el perfil del usuario; (nil, nil) si no existe.
func (r *BusinessProfileRepo) GetByKakaoID(ctx context.Context, kakaoID string) (*entity.BusinessProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM business_profiles WHERE kakao_id = $1`
	var (
		p        entity.BusinessProfile
		taxType  string
		industry string
	)
	err := r.q.QueryRow(ctx, query, kakaoID).Scan(
		&p.ID, &p.KakaoID, &p.CompanyName, &p.BusinessNumber, &p.RepresentativeName, &p.OpenDate,
		&p.CorporationNumber, &p.BusinessType, &p.BusinessCategory, &p.Address,
		&taxType, &p.IsSimplified, &industry, &p.RegistryStatus, &p.RegistryTaxType,
		&p.Verified, &p.LastCheckedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	observability.DatabaseOperations.WithLabelValues("get_profile", observability.StatusLabel(ignoreNoRows(err))).Inc()
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business profile: %w", err)
	}
	p.TaxType = entity.TaxType(taxType)
	p.Industry = entity.Industry(industry)
	return &p, nil
}

// Delete elimina el perfil; domain.ErrNotFound si no existía.
func (r *BusinessProfileRepo) Delete(ctx context.Context, kakaoID string) (err error) {
	defer func() {
		observability.DatabaseOperations.WithLabelValues("delete_profile", observability.StatusLabel(err)).Inc()
	}()

	tag, err := r.q.Exec(ctx, `DELETE FROM business_profiles WHERE kakao_id = $1`, kakaoID)
	if err != nil {
		return fmt.Errorf("delete business profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func ignoreNoRows(err error) error {
	if err != nil && isNoRows(err) {
		return nil
	}
	return err
}
