package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"petvault/internal/analyzer"
	"petvault/internal/domain"
	"petvault/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidFileType, http.StatusBadRequest, "INVALID_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{fmt.Errorf("%w: bucket gone", domain.ErrStorage), http.StatusInternalServerError, "STORAGE_ERROR"},
		{fmt.Errorf("%w: no json", domain.ErrExtractionParse), http.StatusBadGateway, "EXTRACTION_PARSE_ERROR"},
		{fmt.Errorf("%w: timeout", domain.ErrExternalService), http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR"},
		{domain.ErrUploadInProgress, http.StatusConflict, "UPLOAD_IN_PROGRESS"},
		{domain.ErrItemResolved, http.StatusConflict, "ITEM_RESOLVED"},
		{domain.ErrProcessNotSupported, http.StatusBadRequest, "PROCESS_NOT_SUPPORTED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrItemNotFound, http.StatusNotFound, "ITEM_NOT_FOUND"},
		{fmt.Errorf("%w: name is required", domain.ErrValidation), http.StatusBadRequest, "VALIDATION_ERROR"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		status, code, _ := handler.MapDomainError(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestMapDomainError_ProviderRateLimit(t *testing.T) {
	err := fmt.Errorf("%w: %w", domain.ErrExternalService, analyzer.NewRateLimitError("claude", fmt.Errorf("429"), 10))

	status, code, _ := handler.MapDomainError(err)

	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "RATE_LIMITED", code)
}
