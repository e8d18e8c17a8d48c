package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"petvault/internal/csvexport"
	"petvault/internal/domain"
	"petvault/internal/service"
)

// AuditHandler handles audit log endpoints.
type AuditHandler struct {
	auditService service.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles GET /api/v1/pets/:petId/audit-log
// @Summary List audit log entries
// @Description Newest-first changes to the pet's health records
// @Tags audit
// @Produce json
// @Param petId path string true "Pet ID"
// @Param entity_type query string false "Record type, e.g. vaccination"
// @Param entity_id query string false "Record ID"
// @Param action query string false "create, update or delete"
// @Param source_upload_id query string false "Upload the change came from"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.AuditLogEntry,meta=PagMeta} "Audit entries"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Failure 404 {object} ErrorResponseBody "Pet not found"
// @Security BearerAuth
// @Router /pets/{petId}/audit-log [get]
func (h *AuditHandler) List(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}
	filter, ok := parseAuditFilter(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	entries, total, err := h.auditService.List(c.Request.Context(), petID, userID, filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Export handles GET /api/v1/pets/:petId/audit-log/export
// @Summary Export the audit log as CSV
// @Description Same filters as the list endpoint, without pagination. UTF-8 with BOM.
// @Tags audit
// @Produce text/csv
// @Param petId path string true "Pet ID"
// @Param entity_type query string false "Record type, e.g. vaccination"
// @Param entity_id query string false "Record ID"
// @Param action query string false "create, update or delete"
// @Param source_upload_id query string false "Upload the change came from"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Failure 404 {object} ErrorResponseBody "Pet not found"
// @Security BearerAuth
// @Router /pets/{petId}/audit-log/export [get]
func (h *AuditHandler) Export(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}
	filter, ok := parseAuditFilter(c)
	if !ok {
		return
	}

	w := &attachmentWriter{
		c:           c,
		contentType: "text/csv; charset=utf-8",
		filename:    csvexport.BuildFilename(petID.String(), "audit", "csv"),
	}
	if err := h.auditService.ExportCSV(c.Request.Context(), petID, userID, filter, w); err != nil {
		if !w.started {
			HandleError(c, err)
			return
		}
		// Headers are out; all we can do is cut the stream short.
		logInternal(c, http.StatusInternalServerError, err)
		_ = c.Error(err)
	}
}

func parseAuditFilter(c *gin.Context) (domain.AuditFilter, bool) {
	filter := domain.AuditFilter{
		EntityType: c.Query("entity_type"),
		Action:     domain.AuditAction(c.Query("action")),
	}
	if filter.EntityType != "" {
		rt, err := domain.ParseRecordType(filter.EntityType)
		if err != nil {
			HandleError(c, err)
			return filter, false
		}
		filter.EntityType = string(rt)
	}
	for name, dst := range map[string]**uuid.UUID{
		"entity_id":        &filter.EntityID,
		"source_upload_id": &filter.SourceUploadID,
	} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name+" format")
			return filter, false
		}
		*dst = &id
	}
	return filter, true
}

// attachmentWriter sets download headers on the first write so errors raised
// before any output can still be sent as JSON.
type attachmentWriter struct {
	c           *gin.Context
	contentType string
	filename    string
	started     bool
}

func (w *attachmentWriter) Write(p []byte) (int, error) {
	if !w.started {
		w.started = true
		w.c.Header("Content-Type", w.contentType)
		w.c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", w.filename))
		w.c.Status(http.StatusOK)
	}
	return w.c.Writer.Write(p)
}
