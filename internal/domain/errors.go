package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")

	ErrPetNotFound      = errors.New("pet not found")
	ErrInvalidPetRole   = errors.New("invalid pet role")
	ErrSelfMemberRemove = errors.New("cannot remove your own membership")
	ErrMemberNotFound   = errors.New("user is not registered")

	ErrInvalidFileType      = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrStorage              = errors.New("file storage operation failed")
	ErrUnknownImportVariant = errors.New("unknown import variant")
	ErrProcessNotSupported  = errors.New("uploads of this kind are processed on upload")

	ErrUploadNotFound     = errors.New("upload not found")
	ErrUploadInProgress   = errors.New("upload is already being processed")
	ErrExtractionNotFound = errors.New("extraction not found")
	ErrExtractionExists   = errors.New("extraction already exists for upload")
	ErrItemNotFound       = errors.New("extraction item not found")
	ErrItemResolved       = errors.New("extraction item already approved or rejected")

	ErrExtractionParse   = errors.New("could not parse model response")
	ErrExternalService   = errors.New("external analysis service failed")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidRecordType = errors.New("invalid record type")
	ErrRecordNotFound    = errors.New("health record not found")

	ErrEmergencyCardDisabled = errors.New("emergency card not found")
	ErrRateLimited           = errors.New("rate limit exceeded")
)
