package entity

import "time"

// TaxType tipo de contribuyente (persona natural con negocio o persona jurídica).
type TaxType string

const (
	TaxTypeSole        TaxType = "SOLE"
	TaxTypeCorporation TaxType = "CORPORATION"
)

// Industry sector del negocio; determina la tarifa de IVA simplificado.
type Industry string

const (
	IndustryRetail                    Industry = "RETAIL"
	IndustryFoodLodging               Industry = "FOOD_LODGING"
	IndustryManufacturingConstruction Industry = "MANUFACTURING_CONSTRUCTION"
	IndustryService                   Industry = "SERVICE"
)

// Valores por defecto que aplica la normalización cuando el campo no viene en la petición.
const (
	DefaultCompanyName    = "Unknown"
	DefaultBusinessNumber = "N/A"
	DefaultTaxType        = TaxTypeSole
	DefaultIndustry       = IndustryRetail
)

// BusinessInfo atributos del negocio que acompañan a cada cálculo.
// IsSimplified solo tiene sentido cuando TaxType es SOLE.
type BusinessInfo struct {
	CompanyName    string
	BusinessNumber string
	TaxType        TaxType
	IsSimplified   bool
	Industry       Industry
}

// IsCorporation informa si el negocio es persona jurídica.
func (b BusinessInfo) IsCorporation() bool {
	return b.TaxType == TaxTypeCorporation
}

// BusinessProfile perfil de negocio guardado para un usuario del chatbot (clave: Kakao user id).
type BusinessProfile struct {
	ID                 string
	KakaoID            string
	CompanyName        string
	BusinessNumber     string // 10 dígitos, sin guiones
	RepresentativeName string
	OpenDate           string // YYYYMMDD
	CorporationNumber  string
	BusinessType       string // 업태
	BusinessCategory   string // 종목
	Address            string
	TaxType            TaxType
	IsSimplified       bool
	Industry           Industry
	RegistryStatus     string // etiqueta del NTS, ej. 계속사업자
	RegistryTaxType    string // etiqueta del NTS, ej. 간이과세자
	Verified           bool
	LastCheckedAt      *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BusinessInfo proyecta el perfil al registro que consumen las calculadoras.
func (p *BusinessProfile) BusinessInfo() BusinessInfo {
	return BusinessInfo{
		CompanyName:    p.CompanyName,
		BusinessNumber: p.BusinessNumber,
		TaxType:        p.TaxType,
		IsSimplified:   p.IsSimplified,
		Industry:       p.Industry,
	}
}
