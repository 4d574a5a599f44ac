package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrDanglingReference = errors.New("referencia a producto o ubicación inexistente")
	ErrInvalidInput      = errors.New("entrada inválida")
)
