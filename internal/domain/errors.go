package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que un decremento excede el stock disponible.
// Envuelve ErrInsufficientStock para que errors.Is siga funcionando en los handlers,
// y conserva el faltante para mostrarlo al usuario final.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int64 // unidades solicitadas (valor absoluto)
	Available   int64 // unidades en stock al momento de la validación
}

// Error implementa error.
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %q: solicitado %d, disponible %d (faltan %d)",
		e.ProductName, e.Requested, e.Available, e.Shortfall())
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Shortfall devuelve cuántas unidades faltan para cubrir la solicitud.
func (e *InsufficientStockError) Shortfall() int64 { return e.Requested - e.Available }
