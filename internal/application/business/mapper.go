package business

import (
	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
)

// toProfileResponse convierte el perfil persistido al DTO de respuesta.
func toProfileResponse(p *entity.BusinessProfile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:                 p.ID,
		KakaoID:            p.KakaoID,
		BusinessNumber:     p.BusinessNumber,
		CompanyName:        p.CompanyName,
		RepresentativeName: p.RepresentativeName,
		OpenDate:           p.OpenDate,
		CorporationNumber:  p.CorporationNumber,
		BusinessType:       p.BusinessType,
		BusinessCategory:   p.BusinessCategory,
		Address:            p.Address,
		TaxType:            string(p.TaxType),
		IsSimplified:       p.IsSimplified,
		Industry:           string(p.Industry),
		RegistryStatus:     p.RegistryStatus,
		RegistryTaxType:    p.RegistryTaxType,
		Verified:           p.Verified,
		LastCheckedAt:      p.LastCheckedAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
