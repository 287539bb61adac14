package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount monto en wones recibido en JSON. Acepta número, string numérico, booleano o null;
// cualquier valor ausente, vacío, no numérico o fuera de rango se interpreta como 0 (nunca falla).
// La fracción se trunca hacia cero.
type Amount int64

// MaxAmount magnitud máxima aceptada (10^15 wones). Acota también la aritmética de las
// calculadoras: salario*12 más sumas de rubros no desbordan int64.
const MaxAmount int64 = 1_000_000_000_000_000

const (
	maxAmountDigits = 16 // dígitos enteros de MaxAmount
	maxAmountLen    = 64 // longitud máxima del literal
)

var maxAmountDecimal = decimal.NewFromInt(MaxAmount)

// UnmarshalJSON implementa json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = 0
	s := strings.TrimSpace(string(b))
	switch s {
	case "", "null", "false":
		return nil
	case "true":
		*a = 1
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return nil
		}
	}
	*a = Amount(parseAmount(s))
	return nil
}

// parseAmount acota exponente y cantidad de dígitos antes de reescalar, así un literal
// corto como "1e20000000" no dispara el cálculo de un entero gigante.
func parseAmount(s string) int64 {
	if len(s) > maxAmountLen {
		return 0
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	intDigits := int64(v.NumDigits()) + int64(v.Exponent())
	if intDigits <= 0 || intDigits > maxAmountDigits {
		return 0 // |v| < 1 o fuera de rango
	}
	v = v.Truncate(0)
	if v.Abs().GreaterThan(maxAmountDecimal) {
		return 0
	}
	return v.IntPart()
}

// Int64 valor en wones.
func (a Amount) Int64() int64 { return int64(a) }

// Flag booleano tolerante: true para true, números distintos de cero y strings no vacíos.
type Flag bool

// UnmarshalJSON implementa json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "true":
		*f = true
	case s == "false", s == "null", s == `""`, s == "":
		*f = false
	case strings.HasPrefix(s, `"`), strings.HasPrefix(s, "{"), strings.HasPrefix(s, "["):
		*f = true
	default:
		v, err := decimal.NewFromString(s)
		*f = Flag(err == nil && !v.IsZero())
	}
	return nil
}
