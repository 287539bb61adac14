package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrInvalidBusinessNumber = errors.New("número de registro de negocio inválido")
	ErrInvalidOpenDate       = errors.New("fecha de apertura inválida")
	ErrRegistryUnavailable   = errors.New("registro de negocios del NTS no disponible")
	ErrUnregisteredBusiness  = errors.New("negocio no registrado en el NTS")
)
