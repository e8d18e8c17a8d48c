package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petvault/internal/service"
)

// ReviewHandler handles extraction review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GetExtraction handles GET /api/v1/pets/:petId/:variant/uploads/:id/extraction
// @Summary Get an upload's extraction
// @Description Returns the extraction and all of its items with their review state
// @Tags review
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param id path string true "Upload ID"
// @Success 200 {object} Response{data=domain.Extraction} "Extraction"
// @Failure 404 {object} ErrorResponseBody "Upload or extraction not found"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/uploads/{id}/extraction [get]
func (h *ReviewHandler) GetExtraction(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	uploadID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	ex, err := h.reviewService.GetExtraction(c.Request.Context(), scope.petID, scope.userID, scope.variant, uploadID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ex)
}

// Approve handles POST /api/v1/pets/:petId/:variant/uploads/:id/extraction/approve
// @Summary Approve extraction items
// @Description Create health records from the given items. Each item succeeds or fails on its own;
// @Description failures are listed in errors and leave the item unchanged.
// @Tags review
// @Accept json
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param id path string true "Upload ID"
// @Param request body ReviewItemsRequest true "Items to approve"
// @Success 200 {object} Response{data=service.ApproveResult} "Batch outcome"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Editor role required"
// @Failure 404 {object} ErrorResponseBody "Upload or extraction not found"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/uploads/{id}/extraction/approve [post]
func (h *ReviewHandler) Approve(c *gin.Context) {
	input, ok := h.bindReview(c)
	if !ok {
		return
	}

	result, err := h.reviewService.Approve(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Reject handles POST /api/v1/pets/:petId/:variant/uploads/:id/extraction/reject
// @Summary Reject extraction items
// @Tags review
// @Accept json
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param id path string true "Upload ID"
// @Param request body ReviewItemsRequest true "Items to reject"
// @Success 200 {object} Response{data=service.RejectResult} "Batch outcome"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Editor role required"
// @Failure 404 {object} ErrorResponseBody "Upload or extraction not found"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/uploads/{id}/extraction/reject [post]
func (h *ReviewHandler) Reject(c *gin.Context) {
	input, ok := h.bindReview(c)
	if !ok {
		return
	}

	result, err := h.reviewService.Reject(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

func (h *ReviewHandler) bindReview(c *gin.Context) (service.ReviewInput, bool) {
	var input service.ReviewInput
	scope, ok := resolveScope(c)
	if !ok {
		return input, false
	}
	uploadID, ok := uuidParam(c, "id")
	if !ok {
		return input, false
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return input, false
	}

	input.PetID = scope.petID
	input.UserID = scope.userID
	input.Variant = scope.variant
	input.UploadID = uploadID
	input.IPAddress = c.ClientIP()
	input.UserAgent = c.Request.UserAgent()
	return input, true
}

// UpdateItem handles PATCH /api/v1/pets/:petId/:variant/extraction-items/:itemId
// @Summary Edit an extraction item
// @Description Replace the data an item will be approved with. Only pending or modified items can be edited.
// @Tags review
// @Accept json
// @Produce json
// @Param petId path string true "Pet ID"
// @Param variant path string true "Import variant" Enums(pdf-import, photo-import, documents)
// @Param itemId path string true "Extraction item ID"
// @Param request body UpdateItemRequest true "Edited data"
// @Success 200 {object} Response{data=domain.ExtractionItem} "Updated item"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Item not found"
// @Failure 409 {object} ErrorResponseBody "Item already resolved"
// @Security BearerAuth
// @Router /pets/{petId}/{variant}/extraction-items/{itemId} [patch]
func (h *ReviewHandler) UpdateItem(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	itemID, ok := uuidParam(c, "itemId")
	if !ok {
		return
	}

	var input service.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.PetID = scope.petID
	input.UserID = scope.userID
	input.Variant = scope.variant
	input.ItemID = itemID

	item, err := h.reviewService.UpdateItem(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}
