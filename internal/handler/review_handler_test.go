package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
	"petvault/internal/handler"
	"petvault/internal/service"
	"petvault/mocks"
)

func TestReviewHandler_Approve(t *testing.T) {
	reviewSvc := new(mocks.MockReviewService)
	h := handler.NewReviewHandler(reviewSvc)
	petID, userID, uploadID := uuid.New(), uuid.New(), uuid.New()
	good, bad := uuid.New(), uuid.New()

	reviewSvc.On("Approve", mock.Anything, mock.MatchedBy(func(in service.ReviewInput) bool {
		return in.PetID == petID && in.UserID == userID && in.UploadID == uploadID &&
			in.Variant == domain.VariantPhotoImport && len(in.ItemIDs) == 2
	})).Return(&service.ApproveResult{
		Approved: []uuid.UUID{good},
		Rejected: []uuid.UUID{},
		Errors:   []service.ItemError{{ItemID: bad, Error: "validation failed: vaccine_name is required"}},
		Status:   domain.ExtractionStatusPartiallyApproved,
	}, nil)

	c, w := newTestContext(http.MethodPost, "/", jsonBody(t, map[string]any{
		"item_ids": []uuid.UUID{good, bad},
	}))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = importParams(petID, "photo-import", gin.Param{Key: "id", Value: uploadID.String()})
	setAuthContext(c, userID)

	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w).Data.(map[string]interface{})
	assert.Len(t, data["approved"], 1)
	assert.Len(t, data["errors"], 1)
	assert.Equal(t, "partially_approved", data["status"])
	reviewSvc.AssertExpectations(t)
}

func TestReviewHandler_Approve_EmptyItemIDs(t *testing.T) {
	reviewSvc := new(mocks.MockReviewService)
	h := handler.NewReviewHandler(reviewSvc)
	petID := uuid.New()

	c, w := newTestContext(http.MethodPost, "/", jsonBody(t, map[string]any{"item_ids": []string{}}))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = importParams(petID, "pdf-import", gin.Param{Key: "id", Value: uuid.NewString()})
	setAuthContext(c, uuid.New())

	h.Approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reviewSvc.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
}

func TestReviewHandler_Reject(t *testing.T) {
	reviewSvc := new(mocks.MockReviewService)
	h := handler.NewReviewHandler(reviewSvc)
	petID, userID, uploadID, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	reviewSvc.On("Reject", mock.Anything, mock.AnythingOfType("service.ReviewInput")).Return(&service.RejectResult{
		Rejected: []uuid.UUID{itemID},
		Errors:   []service.ItemError{},
		Status:   domain.ExtractionStatusRejected,
	}, nil)

	c, w := newTestContext(http.MethodPost, "/", jsonBody(t, map[string]any{"item_ids": []uuid.UUID{itemID}}))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = importParams(petID, "pdf-import", gin.Param{Key: "id", Value: uploadID.String()})
	setAuthContext(c, userID)

	h.Reject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rejected", parseResponse(t, w).Data.(map[string]interface{})["status"])
}

func TestReviewHandler_GetExtraction_NotFound(t *testing.T) {
	reviewSvc := new(mocks.MockReviewService)
	h := handler.NewReviewHandler(reviewSvc)
	petID, userID, uploadID := uuid.New(), uuid.New(), uuid.New()

	reviewSvc.On("GetExtraction", mock.Anything, petID, userID, domain.VariantPDFImport, uploadID).
		Return(nil, domain.ErrExtractionNotFound)

	c, w := newTestContext(http.MethodGet, "/", nil)
	c.Params = importParams(petID, "pdf-import", gin.Param{Key: "id", Value: uploadID.String()})
	setAuthContext(c, userID)

	h.GetExtraction(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "EXTRACTION_NOT_FOUND", parseResponse(t, w).Error.Code)
}

func TestReviewHandler_UpdateItem_Resolved(t *testing.T) {
	reviewSvc := new(mocks.MockReviewService)
	h := handler.NewReviewHandler(reviewSvc)
	petID, userID, itemID := uuid.New(), uuid.New(), uuid.New()

	reviewSvc.On("UpdateItem", mock.Anything, mock.MatchedBy(func(in service.UpdateItemInput) bool {
		return in.ItemID == itemID && in.ModifiedData["vaccine_name"] == "Rabies"
	})).Return(nil, domain.ErrItemResolved)

	c, w := newTestContext(http.MethodPatch, "/", jsonBody(t, map[string]any{
		"modified_data": map[string]any{"vaccine_name": "Rabies"},
	}))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = importParams(petID, "pdf-import", gin.Param{Key: "itemId", Value: itemID.String()})
	setAuthContext(c, userID)

	h.UpdateItem(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ITEM_RESOLVED", parseResponse(t, w).Error.Code)
}
