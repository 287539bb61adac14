package dto

import "time"

// ValidateBusinessRequest datos para el chequeo de autenticidad ante el NTS.
type ValidateBusinessRequest struct {
	BusinessNumber     string `json:"businessNumber"`
	RepresentativeName string `json:"representativeName"`
	OpenDate           string `json:"openDate"`
	CompanyName        string `json:"companyName"`
}

// BusinessStatusRequest consulta de estado de un número de registro.
type BusinessStatusRequest struct {
	BusinessNumber string `json:"businessNumber"`
}

// BusinessStatusResponse estado del negocio según el NTS.
// IsDummy se marca cuando el registro no respondió y se devuelve un registro de prueba (fuera de producción).
type BusinessStatusResponse struct {
	BusinessNumber    string    `json:"businessNumber"`
	Valid             bool      `json:"valid"`
	CompanyName       string    `json:"companyName"`
	Representative    string    `json:"representative"`
	BusinessType      string    `json:"businessType"`
	Address           string    `json:"address"`
	EstablishmentDate string    `json:"establishmentDate,omitempty"`
	Status            string    `json:"status"`
	TaxType           string    `json:"taxType"`
	LastCheckedDate   time.Time `json:"lastCheckedDate"`
	IsDummy           bool      `json:"isDummy,omitempty"`
}

// BusinessValidationResponse resultado del chequeo de autenticidad.
type BusinessValidationResponse struct {
	BusinessNumber  string    `json:"businessNumber"`
	Valid           bool      `json:"valid"`
	Status          string    `json:"status,omitempty"`
	TaxType         string    `json:"taxType,omitempty"`
	Message         string    `json:"message"`
	LastCheckedDate time.Time `json:"lastCheckedDate"`
}

// UpdateProfileRequest perfil de negocio a registrar o actualizar.
type UpdateProfileRequest struct {
	BusinessNumber     string `json:"businessNumber"`
	RepresentativeName string `json:"representativeName"`
	OpenDate           string `json:"openDate"`
	CompanyName        string `json:"companyName"`
	CorporationNumber  string `json:"corporationNumber"`
	BusinessType       string `json:"businessType"`
	BusinessCategory   string `json:"businessCategory"`
	Address            string `json:"address"`
	TaxType            string `json:"taxType"` // SOLE | CORPORATION
	IsSimplified       Flag   `json:"isSimplified"`
	Industry           string `json:"industry"`
}

// ProfileResponse perfil de negocio almacenado.
type ProfileResponse struct {
	ID                 string     `json:"id"`
	KakaoID            string     `json:"kakaoId"`
	BusinessNumber     string     `json:"businessNumber"`
	CompanyName        string     `json:"companyName"`
	RepresentativeName string     `json:"representativeName"`
	OpenDate           string     `json:"openDate"`
	CorporationNumber  string     `json:"corporationNumber,omitempty"`
	BusinessType       string     `json:"businessType,omitempty"`
	BusinessCategory   string     `json:"businessCategory,omitempty"`
	Address            string     `json:"address,omitempty"`
	TaxType            string     `json:"taxType"`
	IsSimplified       bool       `json:"isSimplified"`
	Industry           string     `json:"industry"`
	RegistryStatus     string     `json:"registryStatus,omitempty"`
	RegistryTaxType    string     `json:"registryTaxType,omitempty"`
	Verified           bool       `json:"verified"`
	LastCheckedAt      *time.Time `json:"lastCheckedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
