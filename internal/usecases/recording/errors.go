package recording

import (
	"errors"
	"fmt"

	"github.com/vfg2006/channel-dashboard-api/pkg/apiErrors"
)

var (
	// ErrUnknownChannel indica um canal fora da enumeração fixa.
	ErrUnknownChannel = errors.New("canal inválido")

	// ErrEntryNotFound indica que a entrada não existe no store.
	ErrEntryNotFound = errors.New("entrada não encontrada")
)

// ValidationError é um erro de validação detectado antes de qualquer chamada
// ao store. A mensagem nomeia o campo problemático e Code é o código de erro
// da API.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newRequiredFieldError(field, label string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    apiErrors.ErrMissingRequiredData,
		Message: fmt.Sprintf("%s is required", label),
	}
}

func newUnknownFieldError(field string, channel string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    apiErrors.ErrUnknownField,
		Message: fmt.Sprintf("field %q is not allowed for channel %q", field, channel),
	}
}
