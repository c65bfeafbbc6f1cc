package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestNotFoundError_ErrorInterface(t *testing.T) {
	var err error = NewNotFoundError("entity not found")
	assert.NotNil(t, err)
	assert.Equal(t, "entity not found", err.Error())
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "email", Message: "invalid email"},
		{Field: "name", Message: "required field"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to query database", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to query database", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to query database")
	assert.Contains(t, err.Error(), "database error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestValidationError_IsValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("submitting form: %w", NewValidationError("Debe seleccionar un cliente"))

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "Debe seleccionar un cliente", ve.Message)
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("GET", "http://localhost:8080/api/clientes", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "GET http://localhost:8080/api/clientes")

	te, ok := IsTransportError(fmt.Errorf("loading: %w", err))
	assert.True(t, ok)
	assert.Equal(t, "GET", te.Method)
}

func TestStatusError_Message(t *testing.T) {
	err := NewStatusError("POST", "http://localhost:8081/api/facturas", 500)

	assert.Equal(t, "API Error: 500 (POST http://localhost:8081/api/facturas)", err.Error())

	se, ok := IsStatusError(err)
	assert.True(t, ok)
	assert.Equal(t, 500, se.Status)
}

func TestDecodeError_KeepsRawBody(t *testing.T) {
	err := NewDecodeError("http://localhost:8080/api/pedidos", "Pedido eliminado", errors.New("invalid character"))

	de, ok := IsDecodeError(err)
	assert.True(t, ok)
	assert.Equal(t, "Pedido eliminado", de.Raw)
}

func TestIsUpstreamError(t *testing.T) {
	assert.True(t, IsUpstreamError(NewTransportError("GET", "u", errors.New("x"))))
	assert.True(t, IsUpstreamError(NewStatusError("GET", "u", 404)))
	assert.True(t, IsUpstreamError(NewDecodeError("u", "", errors.New("x"))))
	assert.False(t, IsUpstreamError(NewNotFoundError("cliente no encontrado")))
	assert.False(t, IsUpstreamError(errors.New("plain")))
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(NewNotFoundError("x")))
	assert.True(t, IsMissing(fmt.Errorf("wrapped: %w", NewStatusError("GET", "/clientes/1", 404))))
	assert.False(t, IsMissing(NewStatusError("GET", "/clientes/1", 500)))
	assert.False(t, IsMissing(nil))
}
