package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petvault/internal/domain"
	"petvault/internal/service"
	"petvault/mocks"
)

func TestAuditService_List(t *testing.T) {
	auditRepo := new(mocks.MockAuditLogRepo)
	members := new(mocks.MockPetMemberRepo)
	svc := service.NewAuditService(auditRepo, members)
	petID, userID, uploadID := uuid.New(), uuid.New(), uuid.New()
	grantRole(members, petID, userID, domain.PetRoleViewer)

	filter := domain.AuditFilter{SourceUploadID: &uploadID, Action: domain.AuditActionCreate}
	entries := []domain.AuditLogEntry{{ID: uuid.New(), Action: domain.AuditActionCreate}}
	auditRepo.On("ListByPet", mock.Anything, petID, filter, 0, 20).Return(entries, 1, nil)

	got, total, err := svc.List(context.Background(), petID, userID, filter, 0, 20)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, got, 1)
}

func TestAuditService_List_BadAction(t *testing.T) {
	members := new(mocks.MockPetMemberRepo)
	svc := service.NewAuditService(new(mocks.MockAuditLogRepo), members)
	petID, userID := uuid.New(), uuid.New()
	grantRole(members, petID, userID, domain.PetRoleViewer)

	_, _, err := svc.List(context.Background(), petID, userID, domain.AuditFilter{Action: "truncate"}, 0, 20)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuditService_ExportCSV_PagesThroughLog(t *testing.T) {
	auditRepo := new(mocks.MockAuditLogRepo)
	members := new(mocks.MockPetMemberRepo)
	svc := service.NewAuditService(auditRepo, members)
	petID, userID := uuid.New(), uuid.New()
	grantRole(members, petID, userID, domain.PetRoleViewer)

	page := func(n int) []domain.AuditLogEntry {
		out := make([]domain.AuditLogEntry, n)
		for i := range out {
			out[i] = domain.AuditLogEntry{
				ID: uuid.New(), EntityID: uuid.New(), EntityType: "vet",
				Action: domain.AuditActionDelete, Source: domain.AuditSourceManual,
				CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			}
		}
		return out
	}
	filter := domain.AuditFilter{}
	auditRepo.On("ListByPet", mock.Anything, petID, filter, 0, 500).Return(page(500), 501, nil)
	auditRepo.On("ListByPet", mock.Anything, petID, filter, 500, 500).Return(page(1), 501, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), petID, userID, filter, &buf))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
	rows, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 502)
	assert.Equal(t, "delete", rows[1][1])
	auditRepo.AssertExpectations(t)
}

func TestAuditService_ExportCSV_NoAccessWritesNothing(t *testing.T) {
	members := new(mocks.MockPetMemberRepo)
	svc := service.NewAuditService(new(mocks.MockAuditLogRepo), members)
	petID, userID := uuid.New(), uuid.New()
	denyAccess(members, petID, userID)

	var buf bytes.Buffer
	err := svc.ExportCSV(context.Background(), petID, userID, domain.AuditFilter{}, &buf)

	assert.ErrorIs(t, err, domain.ErrPetNotFound)
	assert.Zero(t, buf.Len())
}
