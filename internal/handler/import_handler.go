package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"petvault/internal/domain"
	"petvault/internal/service"
)

// ImportHandler handles the upload and processing endpoints shared by all
// import variants.
type ImportHandler struct {
	importService  service.ImportService
	maxUploadBytes int64
}

// multipartOverhead is the room left for boundaries and part headers on top of
// the file size limit.
const multipartOverhead = 1 << 20

// NewImportHandler creates a new ImportHandler. Request bodies larger than
// maxUploadBytes plus multipart framing are cut off before they are parsed.
func NewImportHandler(importService service.ImportService, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{importService: importService, maxUploadBytes: maxUploadBytes}
}

// importScope is the pet, caller and variant of an import route.
type importScope struct {
	petID   uuid.UUID
	userID  uuid.UUID
	variant domain.ImportVariant
}

// resolveScope reads the caller, :petId and :variant. Returns false if any is
// missing or invalid (error response already written).
func resolveScope(c *gin.Context) (importScope, bool) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return importScope{}, false
	}
	variant, err := domain.ParseImportVariant(c.Param("variant"))
	if err != nil {
		HandleError(c, err)
		return importScope{}, false
	}
	return importScope{petID: petID, userID: userID, variant: variant}, true
}

// respondProcess writes a processing outcome. A failed attempt still returns
// the upload so the client can show its error message.
func respondProcess(c *gin.Context, status int, result *service.ProcessResult, err error) {
	if err != nil {
		if result != nil && result.Upload != nil {
			RespondErrorWithData(c, err, result)
			return
		}
		HandleError(c, err)
		return
	}
	c.JSON(status, APIResponse{Success: true, Data: result})
}

// Upload handles POST /api/v1/pets/:petId/:variant/upload
// @Summary Upload a document for import
// @Description Store a vet document. pdf-import accepts PDFs, photo-import accepts images,
// @Description documents accepts both and is classified and extracted immediately.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param file formData file true "Document (PDF, JPEG, PNG, WebP or GIF)"
// @Success 201 {object} Response{data=service.ProcessResult} "Upload stored (and processed for documents)"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 403 {object} ErrorResponseBody "Editor role required"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 429 {object} ErrorResponseBody "Rate limited"
// @Failure 502 {object} ErrorResponseBody "Analysis failed; data carries the failed upload"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/upload [post]
func (h *ImportHandler) Upload(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.UploadInput{
		Variant:      scope.variant,
		PetID:        scope.petID,
		UploaderID:   scope.userID,
		OriginalName: header.Filename,
		DeclaredType: header.Header.Get("Content-Type"),
		Size:         header.Size,
		Body:         file,
	}

	result, err := h.importService.Upload(c.Request.Context(), input)
	respondProcess(c, http.StatusCreated, result, err)
}

// List handles GET /api/v1/pets/:petId/:variant/uploads
// @Summary List uploads
// @Tags imports
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Upload,meta=PagMeta} "Uploads, newest first"
// @Failure 404 {object} ErrorResponseBody "Pet not found"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/uploads [get]
func (h *ImportHandler) List(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	uploads, total, err := h.importService.List(c.Request.Context(), scope.petID, scope.userID, scope.variant, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, uploads, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/pets/:petId/:variant/uploads/:id
// @Summary Get an upload
// @Tags imports
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param id path string true "Upload ID"
// @Success 200 {object} Response{data=domain.Upload} "Upload"
// @Failure 404 {object} ErrorResponseBody "Upload not found"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/uploads/{id} [get]
func (h *ImportHandler) GetByID(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	uploadID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	upload, err := h.importService.Get(c.Request.Context(), scope.petID, scope.userID, scope.variant, uploadID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, upload)
}

// Download handles GET /api/v1/pets/:petId/:variant/uploads/:id/download
// @Summary Get a download link
// @Description Returns a time-limited link to the stored file
// @Tags imports
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param id path string true "Upload ID"
// @Success 200 {object} Response{data=DownloadURLResponse} "Download link"
// @Failure 404 {object} ErrorResponseBody "Upload not found"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/uploads/{id}/download [get]
func (h *ImportHandler) Download(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	uploadID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	url, err := h.importService.DownloadURL(c.Request.Context(), scope.petID, scope.userID, scope.variant, uploadID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, DownloadURLResponse{DownloadURL: url})
}

// Delete handles DELETE /api/v1/pets/:petId/:variant/uploads/:id
// @Summary Delete an upload
// @Description Removes the stored file and the upload; its extraction and items go with it
// @Tags imports
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param id path string true "Upload ID"
// @Success 200 {object} Response{data=MessageResponse} "Upload deleted"
// @Failure 403 {object} ErrorResponseBody "Editor role required"
// @Failure 404 {object} ErrorResponseBody "Upload not found"
// @Failure 409 {object} ErrorResponseBody "Upload is being processed"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/uploads/{id} [delete]
func (h *ImportHandler) Delete(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	uploadID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.importService.Delete(c.Request.Context(), scope.petID, scope.userID, scope.variant, uploadID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "upload deleted"})
}

// Process handles POST /api/v1/pets/:petId/:variant/uploads/:id/process
// @Summary Process an upload
// @Description Run extraction on a pending or failed upload. Completed uploads return their existing extraction.
// @Tags imports
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param id path string true "Upload ID"
// @Success 200 {object} Response{data=service.ProcessResult} "Extraction"
// @Failure 400 {object} ErrorResponseBody "Variant is processed on upload"
// @Failure 404 {object} ErrorResponseBody "Upload not found"
// @Failure 409 {object} ErrorResponseBody "Upload is already being processed"
// @Failure 429 {object} ErrorResponseBody "Rate limited"
// @Failure 502 {object} ErrorResponseBody "Analysis failed; data carries the failed upload"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/uploads/{id}/process [post]
func (h *ImportHandler) Process(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	uploadID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	result, err := h.importService.Process(c.Request.Context(), scope.petID, scope.userID, scope.variant, uploadID)
	respondProcess(c, http.StatusOK, result, err)
}
