package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrCategoryInUse      = errors.New("la categoría está siendo usada por algunos productos")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrCheckoutInProgress = errors.New("ya hay un cobro en curso")
	ErrInvalidBackup      = errors.New("el archivo no es un respaldo válido de Comanda Eventos")
)
