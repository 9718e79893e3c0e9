package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

// CaptureError means the document view could not be rasterized.
type CaptureError struct {
	Message string
	Cause   error
}

func (e *CaptureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CaptureError) Unwrap() error {
	return e.Cause
}

func NewCaptureError(message string, cause error) *CaptureError {
	return &CaptureError{Message: message, Cause: cause}
}

func IsCaptureError(err error) (*CaptureError, bool) {
	if ce, ok := err.(*CaptureError); ok {
		return ce, true
	}
	return nil, false
}

// PdfBuildError means the captured image could not be embedded into a PDF.
type PdfBuildError struct {
	Message string
	Cause   error
}

func (e *PdfBuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PdfBuildError) Unwrap() error {
	return e.Cause
}

func NewPdfBuildError(message string, cause error) *PdfBuildError {
	return &PdfBuildError{Message: message, Cause: cause}
}

func IsPdfBuildError(err error) (*PdfBuildError, bool) {
	if pe, ok := err.(*PdfBuildError); ok {
		return pe, true
	}
	return nil, false
}

// MissingDestinationError means a share was attempted with no configured
// destination number. The pipeline signals it before doing any render work.
type MissingDestinationError struct {
	Message string
}

func (e *MissingDestinationError) Error() string {
	return e.Message
}

func NewMissingDestinationError(message string) *MissingDestinationError {
	return &MissingDestinationError{Message: message}
}

func IsMissingDestinationError(err error) (*MissingDestinationError, bool) {
	if me, ok := err.(*MissingDestinationError); ok {
		return me, true
	}
	return nil, false
}

// StorageUnavailableError means the persisted store could not be written.
// Reads never produce it; an unreadable store reads as empty.
type StorageUnavailableError struct {
	Message string
	Cause   error
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Cause
}

func NewStorageUnavailableError(message string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Message: message, Cause: cause}
}

func IsStorageUnavailableError(err error) (*StorageUnavailableError, bool) {
	if se, ok := err.(*StorageUnavailableError); ok {
		return se, true
	}
	return nil, false
}
