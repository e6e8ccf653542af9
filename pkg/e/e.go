package e

import (
	"errors"
	"fmt"
)

// Виды ошибок, которые доходят до клиента как есть.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

var (
	// Внутренние ошибки хранилищ
	ErrRecordNotFound = fmt.Errorf("record not found")
	ErrDuplicate      = fmt.Errorf("duplicate record")
	ErrCacheMiss      = fmt.Errorf("cache miss")
	ErrCacheStale     = fmt.Errorf("cache version changed")

	// Внутренние ошибки загрузки
	ErrEmptyImageURL = fmt.Errorf("uploader returned empty url")
	ErrEmptyFile     = fmt.Errorf("empty file")

	// Ошибки окружения
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// Ошибки HTTP слоя
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidID            = fmt.Errorf("invalid id")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrInternalServerError  = fmt.Errorf("internal server error")
)

// Ошибки каталога с фиксированными сообщениями для клиента.
var (
	ErrBrandNotExist       = NewNotFound("Brand does not exist")
	ErrCategoryNotExist    = NewNotFound("Category does not exist")
	ErrProductNotExist     = NewNotFound("Product does not exist")
	ErrUserNotExist        = NewNotFound("User does not exist")
	ErrNoFileUploaded      = NewBadRequest("No file uploaded. Please upload an image.")
	ErrImageUploadFailed   = NewBadRequest("Failed to upload image. Please try again.")
	ErrNegativeLikeCount   = NewBadRequest("Like count must not be negative")
	ErrBrandNameRequired   = NewBadRequest("Brand name is required")
	ErrCategoryNameMissing = NewBadRequest("Category name is required")
	ErrBrandExists         = NewBadRequest("Brand already exists")
	ErrCategoryExists      = NewBadRequest("Category already exists")

	// Единственная операция, которая прячет причину ошибки хранилища.
	ErrFilterByColor = errors.New("Failed to filter accessories by color.")
)

// APIError: ошибка с сообщением для клиента и видом (ErrNotFound, ErrBadRequest).
type APIError struct {
	kind error
	msg  string
}

func NewNotFound(msg string) *APIError {
	return &APIError{kind: ErrNotFound, msg: msg}
}

func NewBadRequest(msg string) *APIError {
	return &APIError{kind: ErrBadRequest, msg: msg}
}

func (a *APIError) Error() string {
	return a.msg
}

// Unwrap позволяет проверять вид ошибки через errors.Is.
func (a *APIError) Unwrap() error {
	return a.kind
}

// Kind возвращает вид ошибки.
func (a *APIError) Kind() error {
	return a.kind
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
