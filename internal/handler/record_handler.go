package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"petvault/internal/domain"
	"petvault/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RecordHandler handles health record endpoints.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

func recordTypeParam(c *gin.Context) (domain.RecordType, bool) {
	rt, err := domain.ParseRecordType(c.Param("recordType"))
	if err != nil {
		HandleError(c, err)
		return "", false
	}
	return rt, true
}

// List handles GET /api/v1/pets/:petId/records/:recordType
// @Summary List health records
// @Tags records
// @Produce json
// @Param petId path string true "Pet ID"
// @Param recordType path string true "Record type" Enums(vaccination, medication, condition, allergy, vet, emergency_contact)
// @Success 200 {object} Response{data=[]domain.HealthRecord} "Records"
// @Failure 400 {object} ErrorResponseBody "Invalid record type"
// @Failure 404 {object} ErrorResponseBody "Pet not found"
// @Security BearerAuth
// @Router /pets/{petId}/records/{recordType} [get]
func (h *RecordHandler) List(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}
	recordType, ok := recordTypeParam(c)
	if !ok {
		return
	}

	records, err := h.recordService.List(c.Request.Context(), petID, userID, recordType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// Create handles POST /api/v1/pets/:petId/records/:recordType
// @Summary Add a health record
// @Description Manually add a record. Audited with source "manual".
// @Tags records
// @Accept json
// @Produce json
// @Param petId path string true "Pet ID"
// @Param recordType path string true "Record type" Enums(vaccination, medication, condition, allergy, vet, emergency_contact)
// @Param request body CreateRecordRequest true "Record fields"
// @Success 201 {object} Response{data=domain.HealthRecord} "Record created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Editor role required"
// @Security BearerAuth
// @Router /pets/{petId}/records/{recordType} [post]
func (h *RecordHandler) Create(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}
	recordType, ok := recordTypeParam(c)
	if !ok {
		return
	}

	var input service.CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.PetID = petID
	input.UserID = userID
	input.RecordType = recordType
	input.IPAddress = c.ClientIP()
	input.UserAgent = c.Request.UserAgent()

	record, err := h.recordService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// Delete handles DELETE /api/v1/pets/:petId/records/:recordType/:recordId
// @Summary Delete a health record
// @Tags records
// @Produce json
// @Param petId path string true "Pet ID"
// @Param recordType path string true "Record type" Enums(vaccination, medication, condition, allergy, vet, emergency_contact)
// @Param recordId path string true "Record ID"
// @Success 200 {object} Response{data=MessageResponse} "Record deleted"
// @Failure 403 {object} ErrorResponseBody "Editor role required"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Security BearerAuth
// @Router /pets/{petId}/records/{recordType}/{recordId} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}
	recordType, ok := recordTypeParam(c)
	if !ok {
		return
	}
	recordID, ok := uuidParam(c, "recordId")
	if !ok {
		return
	}

	err := h.recordService.Delete(c.Request.Context(), service.DeleteRecordInput{
		PetID:      petID,
		UserID:     userID,
		RecordType: recordType,
		RecordID:   recordID,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "record deleted"})
}

// Export handles GET /api/v1/pets/:petId/records/export
// @Summary Export all records as a spreadsheet
// @Description One sheet per record type
// @Tags records
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param petId path string true "Pet ID"
// @Success 200 {file} file "XLSX workbook"
// @Failure 404 {object} ErrorResponseBody "Pet not found"
// @Security BearerAuth
// @Router /pets/{petId}/records/export [get]
func (h *RecordHandler) Export(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}

	file, err := h.recordService.ExportWorkbook(c.Request.Context(), petID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, xlsxContentType, file.Data)
}
