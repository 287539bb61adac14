// Package nts contiene catálogos y validaciones del servicio de estado de negocios del
// Servicio Nacional de Impuestos de Corea (국세청, API nts-businessman/v1 de odcloud).
package nts

// =============================================================================
// Estado del negocio (b_stt_cd)
// =============================================================================

const (
	StatusActive     = "01" // 계속사업자
	StatusSuspended  = "02" // 휴업자
	StatusClosed     = "03" // 폐업자
	StatusUnitClosed = "04" // 단위사업장폐업자
)

// StatusLabels etiqueta oficial por código de estado.
var StatusLabels = map[string]string{
	StatusActive:     "계속사업자",
	StatusSuspended:  "휴업자",
	StatusClosed:     "폐업자",
	StatusUnitClosed: "단위사업장폐업자",
}

// =============================================================================
// Tipo de tributación (tax_type_cd)
// =============================================================================

const (
	TaxTypeGeneral          = "01" // 일반과세자
	TaxTypeSimplified       = "02" // 간이과세자
	TaxTypeExempt           = "03" // 면세사업자
	TaxTypeSpecial          = "04" // 과세특례자
	TaxTypeSimplifiedExempt = "05" // 간이과세 면세사업자
)

// TaxTypeLabels etiqueta oficial por código de tipo de tributación.
var TaxTypeLabels = map[string]string{
	TaxTypeGeneral:          "일반과세자",
	TaxTypeSimplified:       "간이과세자",
	TaxTypeExempt:           "면세사업자",
	TaxTypeSpecial:          "과세특례자",
	TaxTypeSimplifiedExempt: "간이과세 면세사업자",
}

// UnregisteredMessage texto que devuelve el NTS en tax_type cuando el número no existe.
const UnregisteredMessage = "국세청에 등록되지 않은 사업자등록번호입니다."

// NotAvailable texto para datos que el registro no entrega.
const NotAvailable = "정보없음"

// StatusLabel etiqueta del estado; un código fuera del catálogo se devuelve tal cual
// y uno vacío como NotAvailable.
func StatusLabel(code string) string {
	return label(StatusLabels, code, code)
}

// TaxTypeLabel etiqueta del tipo de tributación; fuera del catálogo usa el texto libre
// que acompaña al código (tax_type) o NotAvailable.
func TaxTypeLabel(code, text string) string {
	return label(TaxTypeLabels, code, text)
}

// IsSimplifiedTaxType informa si el código corresponde al régimen simplificado de IVA.
func IsSimplifiedTaxType(code string) bool {
	return code == TaxTypeSimplified || code == TaxTypeSimplifiedExempt
}

func label(m map[string]string, code, fallback string) string {
	if l, ok := m[code]; ok {
		return l
	}
	if fallback != "" {
		return fallback
	}
	return NotAvailable
}
