package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrAdminNotFound     = errors.New("administrador no encontrado")
	ErrUsernameExists    = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero positivo")
	ErrInvalidPrice      = errors.New("precio inválido")
	ErrInvalidThresholds = errors.New("el stock máximo debe ser mayor al mínimo")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStockExceedsMax   = errors.New("la operación excede el stock máximo configurado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
