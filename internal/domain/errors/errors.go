package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing notice
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

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors carrying the same business code, so WithDetails copies
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"入力内容を確認してください",
		"",
	)

	ErrConfirmationRequired = NewBaseError(
		http.StatusBadRequest,
		"CONFIRMATION_REQUIRED",
		"本当に削除しますか？",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"データが見つかりませんでした",
		"",
	)

	ErrBookNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOK_NOT_FOUND",
		"書籍が見つかりませんでした",
		"",
	)

	ErrReservationFailed = NewBaseError(
		http.StatusBadGateway,
		"RESERVATION_FAILED",
		"予約に失敗しました。",
		"",
	)

	ErrReviewFailed = NewBaseError(
		http.StatusBadGateway,
		"REVIEW_FAILED",
		"口コミの投稿に失敗しました。",
		"",
	)

	ErrTitleRequired = NewBaseError(
		http.StatusBadRequest,
		"TITLE_REQUIRED",
		"タイトルを入力してください",
		"",
	)

	ErrAILookupFailed = NewBaseError(
		http.StatusBadGateway,
		"AI_LOOKUP_FAILED",
		"AIによる情報取得に失敗しました",
		"",
	)

	ErrAIBulkFailed = NewBaseError(
		http.StatusBadGateway,
		"AI_BULK_FAILED",
		"エラーが発生しました。",
		"",
	)

	ErrLibrarianBusy = NewBaseError(
		http.StatusConflict,
		"LIBRARIAN_BUSY",
		"AI司書が処理中です。しばらくお待ちください",
		"",
	)

	ErrLibrarianUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LIBRARIAN_UNAVAILABLE",
		"AI司書は現在利用できません",
		"",
	)

	ErrUnsupportedFile = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_FILE",
		"このファイル形式はアップロードできません",
		"",
	)

	ErrUnknownMarkupTool = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_MARKUP_TOOL",
		"この装飾は使用できません",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusBadGateway,
		"STORE_UNAVAILABLE",
		"保存に失敗しました。もう一度お試しください",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"システム内部エラー",
		"",
	)
)

// StoreExecuteError represents a failed record store call, implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a record-store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "record store call failed").Error()
}

func (e *StoreExecuteError) Unwrap() error {
	return e.err
}

func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

func (e *StoreExecuteError) Message() string {
	return ErrStoreUnavailable.Message()
}

func (e *StoreExecuteError) Details() string {
	return e.details
}
