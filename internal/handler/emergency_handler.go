package handler

import (
	"github.com/gin-gonic/gin"

	"petvault/internal/service"
)

// EmergencyHandler serves the public emergency card.
type EmergencyHandler struct {
	cardService service.EmergencyCardService
}

// NewEmergencyHandler creates a new EmergencyHandler.
func NewEmergencyHandler(cardService service.EmergencyCardService) *EmergencyHandler {
	return &EmergencyHandler{cardService: cardService}
}

// Get handles GET /api/v1/public/emergency/:token
// @Summary Get a pet's emergency card
// @Description Public, read-only summary of a pet and all of its health records
// @Tags public
// @Produce json
// @Param token path string true "Emergency card token"
// @Success 200 {object} Response{data=domain.EmergencyCard} "Emergency card"
// @Failure 404 {object} ErrorResponseBody "Unknown or disabled token"
// @Router /public/emergency/{token} [get]
func (h *EmergencyHandler) Get(c *gin.Context) {
	card, err := h.cardService.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, card)
}
