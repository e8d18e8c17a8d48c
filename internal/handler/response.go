package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"petvault/internal/domain"
	"petvault/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondErrorWithData sends an error response that still carries a payload,
// e.g. the failed upload after a processing attempt.
func RespondErrorWithData(c *gin.Context, err error, data interface{}) {
	status, code, msg := MapDomainError(err)
	logInternal(c, status, err)
	c.JSON(status, APIResponse{
		Success: false,
		Data:    data,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "insufficient role for this action"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already registered"
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, "PET_NOT_FOUND", "pet not found"
	case errors.Is(err, domain.ErrInvalidPetRole):
		return http.StatusBadRequest, "INVALID_ROLE", "invalid role; allowed: editor, viewer"
	case errors.Is(err, domain.ErrSelfMemberRemove):
		return http.StatusBadRequest, "SELF_MEMBER_REMOVAL", "cannot remove your own membership"
	case errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound, "USER_NOT_FOUND", "no registered user with that email"
	case errors.Is(err, domain.ErrInvalidFileType):
		return http.StatusBadRequest, "INVALID_FILE_TYPE", "unsupported file type for this import"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrStorage):
		return http.StatusInternalServerError, "STORAGE_ERROR", "file storage operation failed"
	case errors.Is(err, domain.ErrUnknownImportVariant):
		return http.StatusNotFound, "NOT_FOUND", "unknown import route"
	case errors.Is(err, domain.ErrProcessNotSupported):
		return http.StatusBadRequest, "PROCESS_NOT_SUPPORTED", "uploads of this kind are processed on upload"
	case errors.Is(err, domain.ErrUploadNotFound):
		return http.StatusNotFound, "UPLOAD_NOT_FOUND", "upload not found"
	case errors.Is(err, domain.ErrUploadInProgress):
		return http.StatusConflict, "UPLOAD_IN_PROGRESS", "upload is already being processed"
	case errors.Is(err, domain.ErrExtractionNotFound):
		return http.StatusNotFound, "EXTRACTION_NOT_FOUND", "extraction not found"
	case errors.Is(err, domain.ErrExtractionExists):
		return http.StatusConflict, "EXTRACTION_EXISTS", "extraction already exists for upload"
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "ITEM_NOT_FOUND", "extraction item not found"
	case errors.Is(err, domain.ErrItemResolved):
		return http.StatusConflict, "ITEM_RESOLVED", "extraction item already approved or rejected"
	case errors.Is(err, domain.ErrExtractionParse):
		return http.StatusBadGateway, "EXTRACTION_PARSE_ERROR", "could not parse the analysis response"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "RATE_LIMITED", "too many requests; try again later"
	case errors.Is(err, domain.ErrExternalService):
		return http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR", "document analysis service failed"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrInvalidRecordType):
		return http.StatusBadRequest, "INVALID_RECORD_TYPE", "invalid record type"
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "RECORD_NOT_FOUND", "health record not found"
	case errors.Is(err, domain.ErrEmergencyCardDisabled):
		return http.StatusNotFound, "NOT_FOUND", "emergency card not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	logInternal(c, status, err)
	RespondError(c, status, code, msg)
}

func logInternal(c *gin.Context, status int, err error) {
	if status < 500 {
		return
	}
	requestID, _ := c.Get(middleware.ContextKeyRequestID)
	zap.L().Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
}

// requireUser reads the caller's id. Returns false if it is missing (error
// response already written).
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, false
	}
	return userID, true
}

// uuidParam parses a UUID path parameter, writing a 400 when malformed.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// petAndUser resolves the caller and the :petId parameter.
func petAndUser(c *gin.Context) (petID, userID uuid.UUID, ok bool) {
	if userID, ok = requireUser(c); !ok {
		return uuid.Nil, uuid.Nil, false
	}
	if petID, ok = uuidParam(c, "petId"); !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return petID, userID, true
}

// parsePagination reads offset and limit query parameters. Limit defaults to
// 20 and is capped at 100.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
