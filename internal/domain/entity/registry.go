package entity

// RegistryStatus estado de un número de registro según el servicio del NTS (/status).
// Registered es false cuando el NTS responde que el número no existe.
type RegistryStatus struct {
	BusinessNumber string
	Registered     bool
	StatusCode     string // b_stt_cd: 01..04, vacío si no registrado
	Status         string // b_stt
	TaxTypeCode    string // tax_type_cd: 01..05
	TaxType        string // tax_type (texto libre)
	CompanyName    string // b_nm, cuando el servicio lo entrega
	Sector         string // b_sector, cuando el servicio lo entrega
	EndDate        string // end_dt: fecha de cierre YYYYMMDD
}

// RegistryQuery datos enviados al chequeo de autenticidad (/validate).
type RegistryQuery struct {
	BusinessNumber     string // 10 dígitos
	OpenDate           string // YYYYMMDD
	RepresentativeName string
	CompanyName        string
}

// RegistryValidation resultado del chequeo de autenticidad.
// Status viene nil cuando los datos no coinciden con el registro.
type RegistryValidation struct {
	BusinessNumber string
	Valid          bool
	Message        string // valid_msg
	Status         *RegistryStatus
}
