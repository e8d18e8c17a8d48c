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

func TestPetHandler_Create(t *testing.T) {
	petSvc := new(mocks.MockPetService)
	h := handler.NewPetHandler(petSvc)
	userID := uuid.New()

	petSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreatePetInput) bool {
		return in.OwnerID == userID && in.Name == "Biscuit" && in.Species == "dog"
	})).Return(&domain.Pet{ID: uuid.New(), OwnerID: userID, Name: "Biscuit", Species: "dog"}, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/pets", jsonBody(t, map[string]string{
		"name": "Biscuit", "species": "dog",
	}))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuthContext(c, userID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	petSvc.AssertExpectations(t)
}

func TestPetHandler_Create_Unauthenticated(t *testing.T) {
	h := handler.NewPetHandler(new(mocks.MockPetService))

	c, w := newTestContext(http.MethodPost, "/api/v1/pets", jsonBody(t, map[string]string{"name": "x"}))

	h.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPetHandler_List_Pagination(t *testing.T) {
	petSvc := new(mocks.MockPetService)
	h := handler.NewPetHandler(petSvc)
	userID := uuid.New()

	petSvc.On("List", mock.Anything, userID, 0, 20).Return([]domain.PetWithRole{}, 0, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/pets?limit=500&offset=-3", nil)
	setAuthContext(c, userID)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	if assert.NotNil(t, resp.Meta) {
		assert.Equal(t, 20, resp.Meta.Limit)
		assert.Equal(t, 0, resp.Meta.Offset)
	}
	petSvc.AssertExpectations(t)
}

func TestPetHandler_GetByID_InvalidID(t *testing.T) {
	h := handler.NewPetHandler(new(mocks.MockPetService))

	c, w := newTestContext(http.MethodGet, "/api/v1/pets/nope", nil)
	c.Params = gin.Params{{Key: "petId", Value: "nope"}}
	setAuthContext(c, uuid.New())

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", parseResponse(t, w).Error.Code)
}

func TestPetHandler_GetByID_NotMember(t *testing.T) {
	petSvc := new(mocks.MockPetService)
	h := handler.NewPetHandler(petSvc)
	petID, userID := uuid.New(), uuid.New()

	petSvc.On("Get", mock.Anything, petID, userID).Return(nil, domain.ErrPetNotFound)

	c, w := newTestContext(http.MethodGet, "/api/v1/pets/"+petID.String(), nil)
	c.Params = gin.Params{{Key: "petId", Value: petID.String()}}
	setAuthContext(c, userID)

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PET_NOT_FOUND", parseResponse(t, w).Error.Code)
}

func TestPetHandler_Share(t *testing.T) {
	petSvc := new(mocks.MockPetService)
	h := handler.NewPetHandler(petSvc)
	petID, userID := uuid.New(), uuid.New()

	petSvc.On("Share", mock.Anything, service.SharePetInput{
		PetID:    petID,
		CallerID: userID,
		Email:    "alex@example.com",
		Role:     domain.PetRoleViewer,
	}).Return(&domain.PetMember{PetID: petID, Role: domain.PetRoleViewer}, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/pets/"+petID.String()+"/members", jsonBody(t, map[string]string{
		"email": "alex@example.com", "role": "viewer",
	}))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "petId", Value: petID.String()}}
	setAuthContext(c, userID)

	h.Share(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	petSvc.AssertExpectations(t)
}

func TestPetHandler_RemoveMember_Forbidden(t *testing.T) {
	petSvc := new(mocks.MockPetService)
	h := handler.NewPetHandler(petSvc)
	petID, userID, memberID := uuid.New(), uuid.New(), uuid.New()

	petSvc.On("RemoveMember", mock.Anything, petID, userID, memberID).Return(domain.ErrForbidden)

	c, w := newTestContext(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "petId", Value: petID.String()}, {Key: "userId", Value: memberID.String()}}
	setAuthContext(c, userID)

	h.RemoveMember(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPetHandler_EnableEmergencyCard(t *testing.T) {
	petSvc := new(mocks.MockPetService)
	h := handler.NewPetHandler(petSvc)
	petID, userID := uuid.New(), uuid.New()

	petSvc.On("EnableEmergencyCard", mock.Anything, petID, userID).Return("tok123", nil)

	c, w := newTestContext(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "petId", Value: petID.String()}}
	setAuthContext(c, userID)

	h.EnableEmergencyCard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "tok123", data["token"])
}

func TestEmergencyHandler_Get(t *testing.T) {
	cardSvc := new(mocks.MockEmergencyCardService)
	h := handler.NewEmergencyHandler(cardSvc)

	cardSvc.On("Get", mock.Anything, "good").Return(&domain.EmergencyCard{PetName: "Biscuit"}, nil)
	cardSvc.On("Get", mock.Anything, "gone").Return(nil, domain.ErrEmergencyCardDisabled)

	c, w := newTestContext(http.MethodGet, "/api/v1/public/emergency/good", nil)
	c.Params = gin.Params{{Key: "token", Value: "good"}}
	h.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodGet, "/api/v1/public/emergency/gone", nil)
	c.Params = gin.Params{{Key: "token", Value: "gone"}}
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
