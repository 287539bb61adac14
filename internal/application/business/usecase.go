package business

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/domain"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/domain/repository"
	"github.com/jhoicas/taxhelper-api/pkg/logger"
	"github.com/jhoicas/taxhelper-api/pkg/nts"
)

const minNameLength = 2

// Textos del registro de prueba y de números no registrados.
const (
	unregisteredCompany = "미등록 사업자"
	unregisteredStatus  = "미등록"
)

// UseCase verificación de negocios ante el NTS y perfil de negocio del usuario.
type UseCase struct {
	registry RegistryClient
	cache    StatusCache // opcional
	profiles repository.BusinessProfileRepository
	cfg      Config
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. cache puede ser nil.
func NewUseCase(registry RegistryClient, cache StatusCache, profiles repository.BusinessProfileRepository, cfg Config, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		registry: registry,
		cache:    cache,
		profiles: profiles,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Status consulta el estado del número de registro. Usa la caché si está configurada.
// Si el NTS no responde y no estamos en producción devuelve un registro de prueba
// marcado con IsDummy.
func (uc *UseCase) Status(ctx context.Context, in dto.BusinessStatusRequest) (*dto.BusinessStatusResponse, error) {
	number, err := nts.ValidateBusinessNumber(in.BusinessNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBusinessNumber, err)
	}

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, number)
		if err != nil {
			uc.log.Warn().Err(err).Str("business_number", number).Msg("caché de estado no disponible")
		} else if cached != nil {
			return uc.statusResponse(cached), nil
		}
	}

	st, err := uc.registry.Status(ctx, number)
	if err != nil {
		if uc.cfg.Production {
			return nil, err
		}
		uc.log.Warn().Err(err).Str("business_number", number).Msg("NTS no disponible, se devuelve registro de prueba")
		return uc.dummyStatus(number), nil
	}

	if uc.cache != nil && uc.cfg.CacheTTL > 0 {
		if err := uc.cache.Set(ctx, st, uc.cfg.CacheTTL); err != nil {
			uc.log.Warn().Err(err).Str("business_number", number).Msg("no se pudo guardar el estado en caché")
		}
	}
	return uc.statusResponse(st), nil
}

// Validate chequeo de autenticidad: número, representante y fecha de apertura deben
// coincidir con el registro del NTS. CompanyName es opcional.
func (uc *UseCase) Validate(ctx context.Context, in dto.ValidateBusinessRequest) (*dto.BusinessValidationResponse, error) {
	q, err := buildQuery(in.BusinessNumber, in.RepresentativeName, in.OpenDate, in.CompanyName, false)
	if err != nil {
		return nil, err
	}
	v, err := uc.registry.Validate(ctx, q)
	if err != nil {
		return nil, err
	}
	return uc.validationResponse(v), nil
}

// GetProfile perfil guardado del usuario. ErrNotFound si no tiene.
func (uc *UseCase) GetProfile(ctx context.Context, kakaoID string) (*dto.ProfileResponse, error) {
	if kakaoID == "" {
		return nil, domain.ErrUnauthorized
	}
	p, err := uc.profiles.GetByKakaoID(ctx, kakaoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(p), nil
}

// UpdateProfile valida los datos con las reglas locales y con el NTS y luego crea o
// reemplaza el perfil. Un número no registrado devuelve ErrUnregisteredBusiness.
func (uc *UseCase) UpdateProfile(ctx context.Context, kakaoID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if kakaoID == "" {
		return nil, domain.ErrUnauthorized
	}
	q, err := buildQuery(in.BusinessNumber, in.RepresentativeName, in.OpenDate, in.CompanyName, true)
	if err != nil {
		return nil, err
	}
	taxType, industry, err := parseCategory(in.TaxType, in.Industry)
	if err != nil {
		return nil, err
	}

	v, err := uc.registry.Validate(ctx, q)
	if err != nil {
		return nil, err
	}
	if !v.Valid {
		return nil, domain.ErrUnregisteredBusiness
	}

	existing, err := uc.profiles.GetByKakaoID(ctx, kakaoID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	p := &entity.BusinessProfile{
		ID:                 uuid.New().String(),
		KakaoID:            kakaoID,
		CompanyName:        strings.TrimSpace(in.CompanyName),
		BusinessNumber:     q.BusinessNumber,
		RepresentativeName: q.RepresentativeName,
		OpenDate:           q.OpenDate,
		CorporationNumber:  strings.TrimSpace(in.CorporationNumber),
		BusinessType:       strings.TrimSpace(in.BusinessType),
		BusinessCategory:   strings.TrimSpace(in.BusinessCategory),
		Address:            strings.TrimSpace(in.Address),
		TaxType:            taxType,
		IsSimplified:       bool(in.IsSimplified),
		Industry:           industry,
		Verified:           true,
		LastCheckedAt:      &now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if existing != nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	}
	if st := v.Status; st != nil {
		p.RegistryStatus = nts.StatusLabel(st.StatusCode)
		p.RegistryTaxType = nts.TaxTypeLabel(st.TaxTypeCode, st.TaxType)
		if taxType == entity.TaxTypeSole && nts.IsSimplifiedTaxType(st.TaxTypeCode) {
			p.IsSimplified = true
		}
	}
	if taxType == entity.TaxTypeCorporation {
		p.IsSimplified = false
	}

	if err := uc.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("kakao_id", kakaoID).Str("business_number", p.BusinessNumber).Msg("perfil de negocio actualizado")
	return toProfileResponse(p), nil
}

// DeleteProfile elimina el perfil del usuario.
func (uc *UseCase) DeleteProfile(ctx context.Context, kakaoID string) error {
	if kakaoID == "" {
		return domain.ErrUnauthorized
	}
	return uc.profiles.Delete(ctx, kakaoID)
}

// ProfileBusinessInfo datos de negocio del perfil guardado para alimentar las
// calculadoras; (nil, nil) si el usuario no tiene perfil.
func (uc *UseCase) ProfileBusinessInfo(ctx context.Context, kakaoID string) (*entity.BusinessInfo, error) {
	p, err := uc.profiles.GetByKakaoID(ctx, kakaoID)
	if err != nil || p == nil {
		return nil, err
	}
	info := p.BusinessInfo()
	return &info, nil
}

// buildQuery aplica las reglas locales y normaliza número y fecha.
func buildQuery(number, representative, openDate, company string, requireCompany bool) (entity.RegistryQuery, error) {
	representative = strings.TrimSpace(representative)
	company = strings.TrimSpace(company)
	if strings.TrimSpace(number) == "" || representative == "" || strings.TrimSpace(openDate) == "" {
		return entity.RegistryQuery{}, fmt.Errorf("%w: número de registro, representante y fecha de apertura son obligatorios", domain.ErrInvalidInput)
	}
	cleaned, err := nts.ValidateBusinessNumber(number)
	if err != nil {
		return entity.RegistryQuery{}, fmt.Errorf("%w: %v", domain.ErrInvalidBusinessNumber, err)
	}
	if utf8.RuneCountInString(representative) < minNameLength {
		return entity.RegistryQuery{}, fmt.Errorf("%w: el representante debe tener al menos %d caracteres", domain.ErrInvalidInput, minNameLength)
	}
	if (requireCompany || company != "") && utf8.RuneCountInString(company) < minNameLength {
		return entity.RegistryQuery{}, fmt.Errorf("%w: el nombre de la empresa debe tener al menos %d caracteres", domain.ErrInvalidInput, minNameLength)
	}
	date, err := nts.CleanOpenDate(openDate)
	if err != nil {
		return entity.RegistryQuery{}, fmt.Errorf("%w: %v", domain.ErrInvalidOpenDate, err)
	}
	return entity.RegistryQuery{
		BusinessNumber:     cleaned,
		OpenDate:           date,
		RepresentativeName: representative,
		CompanyName:        company,
	}, nil
}

func parseCategory(taxType, industry string) (entity.TaxType, entity.Industry, error) {
	tt := entity.TaxType(strings.ToUpper(strings.TrimSpace(taxType)))
	switch tt {
	case "":
		tt = entity.DefaultTaxType
	case entity.TaxTypeSole, entity.TaxTypeCorporation:
	default:
		return "", "", fmt.Errorf("%w: tipo de contribuyente %q", domain.ErrInvalidInput, taxType)
	}
	ind := entity.Industry(strings.ToUpper(strings.TrimSpace(industry)))
	switch ind {
	case "":
		ind = entity.DefaultIndustry
	case entity.IndustryRetail, entity.IndustryFoodLodging, entity.IndustryManufacturingConstruction, entity.IndustryService:
	default:
		return "", "", fmt.Errorf("%w: sector %q", domain.ErrInvalidInput, industry)
	}
	return tt, ind, nil
}

func (uc *UseCase) statusResponse(st *entity.RegistryStatus) *dto.BusinessStatusResponse {
	res := &dto.BusinessStatusResponse{
		BusinessNumber:  st.BusinessNumber,
		Representative:  nts.NotAvailable,
		Address:         nts.NotAvailable,
		LastCheckedDate: uc.now(),
	}
	if !st.Registered {
		res.CompanyName = unregisteredCompany
		res.BusinessType = nts.NotAvailable
		res.Status = unregisteredStatus
		res.TaxType = nts.NotAvailable
		return res
	}
	res.Valid = st.StatusCode != ""
	res.CompanyName = orNotAvailable(st.CompanyName)
	res.BusinessType = orNotAvailable(st.Sector)
	res.Status = nts.StatusLabel(st.StatusCode)
	res.TaxType = nts.TaxTypeLabel(st.TaxTypeCode, st.TaxType)
	return res
}

func (uc *UseCase) dummyStatus(number string) *dto.BusinessStatusResponse {
	return &dto.BusinessStatusResponse{
		BusinessNumber:    number,
		Valid:             true,
		CompanyName:       "세금도우미 주식회사 (더미)",
		Representative:    "홍길동",
		BusinessType:      "서비스업",
		Address:           "서울특별시 강남구 테헤란로 123",
		EstablishmentDate: "2020-01-01",
		Status:            nts.StatusLabels[nts.StatusActive],
		TaxType:           nts.TaxTypeLabels[nts.TaxTypeGeneral],
		LastCheckedDate:   uc.now(),
		IsDummy:           true,
	}
}

func (uc *UseCase) validationResponse(v *entity.RegistryValidation) *dto.BusinessValidationResponse {
	res := &dto.BusinessValidationResponse{
		BusinessNumber:  v.BusinessNumber,
		Valid:           v.Valid,
		LastCheckedDate: uc.now(),
	}
	switch {
	case v.Status != nil:
		res.Status = nts.StatusLabel(v.Status.StatusCode)
		res.TaxType = nts.TaxTypeLabel(v.Status.TaxTypeCode, v.Status.TaxType)
		res.Message = fmt.Sprintf("%s이며, %s입니다.", res.Status, res.TaxType)
	case v.Valid:
		res.Message = "등록되어 있는 사업자등록번호입니다."
	default:
		res.Message = "등록되지 않은 사업자등록번호입니다."
	}
	return res
}

func orNotAvailable(s string) string {
	if s == "" {
		return nts.NotAvailable
	}
	return s
}

// IsClientError informa si err proviene de datos de entrada (y no del NTS o la DB).
func IsClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidBusinessNumber) ||
		errors.Is(err, domain.ErrInvalidOpenDate)
}
