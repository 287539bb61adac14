package nts

import (
	"fmt"
	"strings"
	"time"
)

// pesos del dígito de control del número de registro de negocio (사업자등록번호).
// Se aplican a los 9 primeros dígitos, de izquierda a derecha.
var bizNoWeights = [9]int{1, 3, 7, 1, 3, 7, 1, 3, 5}

// CleanBusinessNumber quita guiones y espacios y exige exactamente 10 dígitos.
// "123-45-67891" → "1234567891".
func CleanBusinessNumber(s string) (string, error) {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(s))
	if len(cleaned) != 10 || !allDigits(cleaned) {
		return "", fmt.Errorf("nts: el número de registro debe tener 10 dígitos, se recibió %q", s)
	}
	return cleaned, nil
}

// ComputeCheckDigit dígito de control para los 9 primeros dígitos de un número limpio.
func ComputeCheckDigit(digits string) (byte, error) {
	if len(digits) < 9 || !allDigits(digits[:9]) {
		return 0, fmt.Errorf("nts: se requieren 9 dígitos para calcular el dígito de control")
	}
	var sum int
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * bizNoWeights[i]
	}
	// el noveno dígito aporta además la decena de su producto por 5
	sum += int(digits[8]-'0') * 5 / 10
	return byte('0' + (10-sum%10)%10), nil
}

// ValidateBusinessNumber limpia el número y verifica su dígito de control.
// Devuelve el número limpio.
func ValidateBusinessNumber(s string) (string, error) {
	cleaned, err := CleanBusinessNumber(s)
	if err != nil {
		return "", err
	}
	expected, _ := ComputeCheckDigit(cleaned)
	if cleaned[9] != expected {
		return "", fmt.Errorf("nts: dígito de control inválido: esperado %c, recibido %c", expected, cleaned[9])
	}
	return cleaned, nil
}

// FormatBusinessNumber presenta un número limpio como XXX-XX-XXXXX.
// Si no tiene 10 dígitos lo devuelve sin cambios.
func FormatBusinessNumber(cleaned string) string {
	if len(cleaned) != 10 {
		return cleaned
	}
	return cleaned[:3] + "-" + cleaned[3:5] + "-" + cleaned[5:]
}

// CleanOpenDate quita guiones y exige una fecha YYYYMMDD válida.
func CleanOpenDate(s string) (string, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if len(cleaned) != 8 || !allDigits(cleaned) {
		return "", fmt.Errorf("nts: la fecha de apertura debe tener 8 dígitos (YYYYMMDD), se recibió %q", s)
	}
	if _, err := time.Parse("20060102", cleaned); err != nil {
		return "", fmt.Errorf("nts: fecha de apertura inexistente %q", s)
	}
	return cleaned, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
