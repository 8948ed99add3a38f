package errors

import (
	"net/http"

	"rpromo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches catalogued errors by business code, so a copy carrying
// details still compares equal to its catalogue entry.
func (e *BaseError) Is(target error) bool {
	if t, ok := target.(*BaseError); ok {
		return e.errorCode == t.errorCode
	}

	return false
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Registration-related errors
	ErrPersonNotFound = NewBaseError(
		http.StatusNotFound,
		"PERSON_NOT_FOUND",
		"Pessoa não encontrada",
		"",
	)

	ErrPersonAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PERSON_ALREADY_EXISTS",
		"Já existe um cadastro com este CPF",
		"",
	)

	ErrPersonCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSON_CREATION_FAILED",
		"Erro ao salvar o cadastro",
		"",
	)

	ErrPersonUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSON_UPDATE_FAILED",
		"Erro ao atualizar o cadastro",
		"",
	)

	ErrInactivationReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"INACTIVATION_REASON_REQUIRED",
		"Informe o motivo da inativação",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Status inválido",
		"",
	)

	// Photo-related errors
	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"Foto não encontrada",
		"",
	)

	ErrPhotoTooLarge = NewBaseError(
		http.StatusBadRequest,
		"PHOTO_TOO_LARGE",
		"Arquivo muito grande. Máximo 5MB",
		"",
	)

	ErrPhotoNotImage = NewBaseError(
		http.StatusBadRequest,
		"PHOTO_NOT_IMAGE",
		"Apenas arquivos de imagem são permitidos",
		"",
	)

	ErrInvalidPhotoCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHOTO_CATEGORY",
		"Categoria de foto inválida",
		"",
	)

	// Provider-related errors
	ErrProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"Erro ao acessar o servidor de dados",
		"",
	)

	ErrUnknownProvider = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PROVIDER",
		"Provedor de dados não implementado",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuário ou senha incorretos",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_INACTIVE",
		"Usuário não encontrado ou inativo",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Sessão inválida ou expirada",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados do formulário inválidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Erro ao acessar o banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
