package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petvault/internal/service"
)

// PetHandler handles pet, membership and emergency card endpoints.
type PetHandler struct {
	petService service.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(petService service.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// Create handles POST /api/v1/pets
// @Summary Create a pet
// @Description Create a pet; the caller becomes its owner
// @Tags pets
// @Accept json
// @Produce json
// @Param request body CreatePetRequest true "Pet details"
// @Success 201 {object} Response{data=domain.Pet} "Pet created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /pets [post]
func (h *PetHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var input service.CreatePetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.OwnerID = userID

	pet, err := h.petService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, pet)
}

// List handles GET /api/v1/pets
// @Summary List my pets
// @Description List pets the caller is a member of, with the caller's role
// @Tags pets
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.PetWithRole,meta=PagMeta} "Pets"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /pets [get]
func (h *PetHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	pets, total, err := h.petService.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, pets, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/pets/:petId
// @Summary Get a pet
// @Tags pets
// @Produce json
// @Param petId path string true "Pet ID"
// @Success 200 {object} Response{data=domain.PetWithRole} "Pet"
// @Failure 404 {object} ErrorResponseBody "Pet not found"
// @Security BearerAuth
// @Router /pets/{petId} [get]
func (h *PetHandler) GetByID(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}

	pet, err := h.petService.Get(c.Request.Context(), petID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pet)
}

// ListMembers handles GET /api/v1/pets/:petId/members
// @Summary List pet members
// @Tags pets
// @Produce json
// @Param petId path string true "Pet ID"
// @Success 200 {object} Response{data=[]domain.PetMember} "Members"
// @Failure 404 {object} ErrorResponseBody "Pet not found"
// @Security BearerAuth
// @Router /pets/{petId}/members [get]
func (h *PetHandler) ListMembers(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}

	members, err := h.petService.ListMembers(c.Request.Context(), petID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, members)
}

// Share handles POST /api/v1/pets/:petId/members
// @Summary Share a pet
// @Description Grant a registered user editor or viewer access (owner only). The user is notified by email.
// @Tags pets
// @Accept json
// @Produce json
// @Param petId path string true "Pet ID"
// @Param request body SharePetRequest true "Member to add"
// @Success 201 {object} Response{data=domain.PetMember} "Member added"
// @Failure 400 {object} ErrorResponseBody "Invalid role"
// @Failure 403 {object} ErrorResponseBody "Owner role required"
// @Failure 404 {object} ErrorResponseBody "Pet or user not found"
// @Security BearerAuth
// @Router /pets/{petId}/members [post]
func (h *PetHandler) Share(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}

	var input service.SharePetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.PetID = petID
	input.CallerID = userID

	member, err := h.petService.Share(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, member)
}

// RemoveMember handles DELETE /api/v1/pets/:petId/members/:userId
// @Summary Remove a pet member
// @Tags pets
// @Produce json
// @Param petId path string true "Pet ID"
// @Param userId path string true "Member user ID"
// @Success 200 {object} Response{data=MessageResponse} "Member removed"
// @Failure 400 {object} ErrorResponseBody "Cannot remove yourself"
// @Failure 403 {object} ErrorResponseBody "Owner role required"
// @Security BearerAuth
// @Router /pets/{petId}/members/{userId} [delete]
func (h *PetHandler) RemoveMember(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}
	memberID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.petService.RemoveMember(c.Request.Context(), petID, userID, memberID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "member removed"})
}

// EnableEmergencyCard handles POST /api/v1/pets/:petId/emergency-card
// @Summary Enable the emergency card
// @Description Issue a new public emergency card token (owner only). Any previous token stops working.
// @Tags pets
// @Produce json
// @Param petId path string true "Pet ID"
// @Success 200 {object} Response{data=EmergencyTokenResponse} "Token issued"
// @Failure 403 {object} ErrorResponseBody "Owner role required"
// @Security BearerAuth
// @Router /pets/{petId}/emergency-card [post]
func (h *PetHandler) EnableEmergencyCard(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}

	token, err := h.petService.EnableEmergencyCard(c.Request.Context(), petID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, EmergencyTokenResponse{Token: token})
}

// DisableEmergencyCard handles DELETE /api/v1/pets/:petId/emergency-card
// @Summary Disable the emergency card
// @Tags pets
// @Produce json
// @Param petId path string true "Pet ID"
// @Success 200 {object} Response{data=MessageResponse} "Card disabled"
// @Failure 403 {object} ErrorResponseBody "Owner role required"
// @Security BearerAuth
// @Router /pets/{petId}/emergency-card [delete]
func (h *PetHandler) DisableEmergencyCard(c *gin.Context) {
	petID, userID, ok := petAndUser(c)
	if !ok {
		return
	}

	if err := h.petService.DisableEmergencyCard(c.Request.Context(), petID, userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "emergency card disabled"})
}
