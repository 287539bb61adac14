package business_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jhoicas/taxhelper-api/internal/application/business"
	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/domain"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validNumber = "1234567891"

// ─────────────────────────────────────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────────────────────────────────────

type fakeRegistry struct {
	status      *entity.RegistryStatus
	statusErr   error
	validation  *entity.RegistryValidation
	validateErr error
	statusCalls int
	lastQuery   entity.RegistryQuery
}

func (f *fakeRegistry) Status(_ context.Context, number string) (*entity.RegistryStatus, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	st := *f.status
	st.BusinessNumber = number
	return &st, nil
}

func (f *fakeRegistry) Validate(_ context.Context, q entity.RegistryQuery) (*entity.RegistryValidation, error) {
	f.lastQuery = q
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	return f.validation, nil
}

type memCache struct {
	items map[string]*entity.RegistryStatus
	ttl   time.Duration
}

func (c *memCache) Get(_ context.Context, number string) (*entity.RegistryStatus, error) {
	return c.items[number], nil
}

func (c *memCache) Set(_ context.Context, st *entity.RegistryStatus, ttl time.Duration) error {
	c.items[st.BusinessNumber] = st
	c.ttl = ttl
	return nil
}

type memProfiles struct {
	items map[string]*entity.BusinessProfile
}

func (r *memProfiles) Upsert(_ context.Context, p *entity.BusinessProfile) error {
	r.items[p.KakaoID] = p
	return nil
}

func (r *memProfiles) GetByKakaoID(_ context.Context, id string) (*entity.BusinessProfile, error) {
	return r.items[id], nil
}

func (r *memProfiles) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func activeStatus() *entity.RegistryStatus {
	return &entity.RegistryStatus{
		Registered:  true,
		StatusCode:  "01",
		Status:      "계속사업자",
		TaxTypeCode: "02",
		TaxType:     "부가가치세 간이과세자",
	}
}

func setup(cfg business.Config) (*business.UseCase, *fakeRegistry, *memCache, *memProfiles) {
	reg := &fakeRegistry{
		status: activeStatus(),
		validation: &entity.RegistryValidation{
			BusinessNumber: validNumber,
			Valid:          true,
			Status:         activeStatus(),
		},
	}
	cache := &memCache{items: map[string]*entity.RegistryStatus{}}
	profiles := &memProfiles{items: map[string]*entity.BusinessProfile{}}
	return business.NewUseCase(reg, cache, profiles, cfg, nil), reg, cache, profiles
}

// ─────────────────────────────────────────────────────────────────────────────
// Status
// ─────────────────────────────────────────────────────────────────────────────

func TestStatus_RegistradoYCacheado(t *testing.T) {
	uc, reg, cache, _ := setup(business.Config{CacheTTL: time.Hour})
	ctx := context.Background()

	res, err := uc.Status(ctx, dto.BusinessStatusRequest{BusinessNumber: "123-45-67891"})
	require.NoError(t, err)
	assert.Equal(t, validNumber, res.BusinessNumber)
	assert.True(t, res.Valid)
	assert.Equal(t, "계속사업자", res.Status)
	assert.Equal(t, "간이과세자", res.TaxType)
	assert.Equal(t, "정보없음", res.CompanyName)
	assert.False(t, res.IsDummy)
	assert.Equal(t, time.Hour, cache.ttl)

	_, err = uc.Status(ctx, dto.BusinessStatusRequest{BusinessNumber: validNumber})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.statusCalls, "la segunda consulta debe salir de la caché")
}

func TestStatus_NoRegistrado(t *testing.T) {
	uc, reg, _, _ := setup(business.Config{})
	reg.status = &entity.RegistryStatus{Registered: false}

	res, err := uc.Status(context.Background(), dto.BusinessStatusRequest{BusinessNumber: validNumber})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "미등록 사업자", res.CompanyName)
	assert.Equal(t, "미등록", res.Status)
}

func TestStatus_RegistroCaidoFueraDeProduccionDevuelveDummy(t *testing.T) {
	uc, reg, cache, _ := setup(business.Config{CacheTTL: time.Hour})
	reg.statusErr = fmt.Errorf("%w: timeout", domain.ErrRegistryUnavailable)

	res, err := uc.Status(context.Background(), dto.BusinessStatusRequest{BusinessNumber: validNumber})
	require.NoError(t, err)
	assert.True(t, res.IsDummy)
	assert.True(t, res.Valid)
	assert.Equal(t, validNumber, res.BusinessNumber)
	assert.Empty(t, cache.items, "un registro de prueba no se guarda en caché")
}

func TestStatus_RegistroCaidoEnProduccionPropagaError(t *testing.T) {
	uc, reg, _, _ := setup(business.Config{Production: true})
	reg.statusErr = fmt.Errorf("%w: timeout", domain.ErrRegistryUnavailable)

	_, err := uc.Status(context.Background(), dto.BusinessStatusRequest{BusinessNumber: validNumber})
	assert.ErrorIs(t, err, domain.ErrRegistryUnavailable)
}

func TestStatus_NumeroInvalido(t *testing.T) {
	uc, reg, _, _ := setup(business.Config{})
	for _, n := range []string{"", "12345", "1234567890"} {
		_, err := uc.Status(context.Background(), dto.BusinessStatusRequest{BusinessNumber: n})
		assert.ErrorIs(t, err, domain.ErrInvalidBusinessNumber, n)
		assert.True(t, business.IsClientError(err))
	}
	assert.Zero(t, reg.statusCalls)
}

// ─────────────────────────────────────────────────────────────────────────────
// Validate
// ─────────────────────────────────────────────────────────────────────────────

func TestValidate_NormalizaYConstruyeMensaje(t *testing.T) {
	uc, reg, _, _ := setup(business.Config{})

	res, err := uc.Validate(context.Background(), dto.ValidateBusinessRequest{
		BusinessNumber:     "123-45-67891",
		RepresentativeName: " 홍길동 ",
		OpenDate:           "2020-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RegistryQuery{
		BusinessNumber:     validNumber,
		OpenDate:           "20200101",
		RepresentativeName: "홍길동",
	}, reg.lastQuery)
	assert.True(t, res.Valid)
	assert.Equal(t, "계속사업자이며, 간이과세자입니다.", res.Message)
}

func TestValidate_SinCoincidencia(t *testing.T) {
	uc, reg, _, _ := setup(business.Config{})
	reg.validation = &entity.RegistryValidation{BusinessNumber: validNumber, Valid: false}

	res, err := uc.Validate(context.Background(), dto.ValidateBusinessRequest{
		BusinessNumber: validNumber, RepresentativeName: "홍길동", OpenDate: "20200101",
	})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "등록되지 않은 사업자등록번호입니다.", res.Message)
}

func TestValidate_ReglasLocales(t *testing.T) {
	uc, _, _, _ := setup(business.Config{})
	casos := []struct {
		in   dto.ValidateBusinessRequest
		want error
	}{
		{dto.ValidateBusinessRequest{RepresentativeName: "홍길동", OpenDate: "20200101"}, domain.ErrInvalidInput},
		{dto.ValidateBusinessRequest{BusinessNumber: validNumber, RepresentativeName: "홍", OpenDate: "20200101"}, domain.ErrInvalidInput},
		{dto.ValidateBusinessRequest{BusinessNumber: validNumber, RepresentativeName: "홍길동", OpenDate: "20200101", CompanyName: "A"}, domain.ErrInvalidInput},
		{dto.ValidateBusinessRequest{BusinessNumber: validNumber, RepresentativeName: "홍길동", OpenDate: "2020-13-01"}, domain.ErrInvalidOpenDate},
		{dto.ValidateBusinessRequest{BusinessNumber: "1234567890", RepresentativeName: "홍길동", OpenDate: "20200101"}, domain.ErrInvalidBusinessNumber},
	}
	for i, c := range casos {
		_, err := uc.Validate(context.Background(), c.in)
		assert.ErrorIs(t, err, c.want, "caso %d", i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Perfil
// ─────────────────────────────────────────────────────────────────────────────

func profileRequest() dto.UpdateProfileRequest {
	return dto.UpdateProfileRequest{
		BusinessNumber:     "123-45-67891",
		RepresentativeName: "홍길동",
		OpenDate:           "2020-01-01",
		CompanyName:        "세금도우미",
		TaxType:            "sole",
		Industry:           "service",
	}
}

func TestUpdateProfile_CreaYConservaID(t *testing.T) {
	uc, _, _, profiles := setup(business.Config{})
	ctx := context.Background()

	first, err := uc.UpdateProfile(ctx, "kakao-1", profileRequest())
	require.NoError(t, err)
	assert.Equal(t, validNumber, first.BusinessNumber)
	assert.Equal(t, "20200101", first.OpenDate)
	assert.Equal(t, "SOLE", first.TaxType)
	assert.Equal(t, "SERVICE", first.Industry)
	assert.True(t, first.IsSimplified, "el NTS reporta régimen simplificado")
	assert.True(t, first.Verified)
	assert.Equal(t, "간이과세자", first.RegistryTaxType)
	require.NotNil(t, first.LastCheckedAt)

	req := profileRequest()
	req.CompanyName = "세금도우미 2"
	second, err := uc.UpdateProfile(ctx, "kakao-1", req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "세금도우미 2", second.CompanyName)
	assert.Len(t, profiles.items, 1)

	got, err := uc.GetProfile(ctx, "kakao-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	info, err := uc.ProfileBusinessInfo(ctx, "kakao-1")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, entity.IndustryService, info.Industry)
}

func TestUpdateProfile_PersonaJuridicaNuncaSimplificada(t *testing.T) {
	uc, _, _, _ := setup(business.Config{})
	req := profileRequest()
	req.TaxType = "CORPORATION"
	req.IsSimplified = true

	res, err := uc.UpdateProfile(context.Background(), "kakao-2", req)
	require.NoError(t, err)
	assert.False(t, res.IsSimplified)
}

func TestUpdateProfile_Errores(t *testing.T) {
	uc, reg, _, profiles := setup(business.Config{})
	ctx := context.Background()

	_, err := uc.UpdateProfile(ctx, "", profileRequest())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	req := profileRequest()
	req.CompanyName = ""
	_, err = uc.UpdateProfile(ctx, "kakao-1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = profileRequest()
	req.TaxType = "PARTNERSHIP"
	_, err = uc.UpdateProfile(ctx, "kakao-1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	reg.validation = &entity.RegistryValidation{BusinessNumber: validNumber, Valid: false}
	_, err = uc.UpdateProfile(ctx, "kakao-1", profileRequest())
	assert.ErrorIs(t, err, domain.ErrUnregisteredBusiness)

	reg.validateErr = errors.New("boom")
	_, err = uc.UpdateProfile(ctx, "kakao-1", profileRequest())
	assert.EqualError(t, err, "boom")
	assert.Empty(t, profiles.items)
}

func TestGetAndDeleteProfile_SinPerfil(t *testing.T) {
	uc, _, _, _ := setup(business.Config{})
	ctx := context.Background()

	_, err := uc.GetProfile(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.DeleteProfile(ctx, "nadie"), domain.ErrNotFound)

	info, err := uc.ProfileBusinessInfo(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, info)
}
