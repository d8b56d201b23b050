package domain

import "errors"

// ============================================================================
// Lookup Errors
// ============================================================================

var (
	// ErrMultipleFound means a natural-key lookup matched more than one row,
	// which only happens if the unique constraint was bypassed.
	ErrMultipleFound = errors.New("multiple records found for natural key")
	ErrInvalidName   = errors.New("name is required")
)

// ============================================================================
// Active Model Errors
// ============================================================================

var (
	ErrActiveModelNotFound     = errors.New("active model not found")
	ErrActiveModelNameConflict = errors.New("active model with this name already exists")
	ErrModelMetaNotFound       = errors.New("model meta not found")
	ErrModelMetaConflict       = errors.New("model meta with this name and version already exists")
	ErrModelMetaAlreadyBound   = errors.New("model meta is already bound to another active model")
)

// ============================================================================
// User Errors
// ============================================================================

var (
	ErrLxUserNotFound     = errors.New("lx user not found")
	ErrLxUserNameConflict = errors.New("lx user with this name already exists")
)

// ============================================================================
// Clinical Data Errors
// ============================================================================

// Not found errors
var (
	ErrCenterNotFound      = errors.New("center not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrFrameNotFound       = errors.New("frame not found")
	ErrLegacyFrameNotFound = errors.New("legacy frame not found")
)

// Conflict errors
var (
	ErrCenterNameConflict = errors.New("center with this name already exists")
	ErrFrameConflict      = errors.New("frame with this number already exists for the video")
)
