package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"petvault/internal/csvexport"
	"petvault/internal/domain"
	"petvault/internal/healthrecord"
	"petvault/internal/port"
)

// CreateRecordInput is the DTO for adding a health record by hand.
type CreateRecordInput struct {
	PetID      uuid.UUID
	UserID     uuid.UUID
	RecordType domain.RecordType
	Data       map[string]any `json:"data" binding:"required"`
	IPAddress  string
	UserAgent  string
}

// DeleteRecordInput identifies a record to remove and who removed it.
type DeleteRecordInput struct {
	PetID      uuid.UUID
	UserID     uuid.UUID
	RecordType domain.RecordType
	RecordID   uuid.UUID
	IPAddress  string
	UserAgent  string
}

// ExportFile is a generated download.
type ExportFile struct {
	Filename string
	Data     []byte
}

// RecordService manages a pet's health records outside the import pipeline.
type RecordService interface {
	List(ctx context.Context, petID, userID uuid.UUID, recordType domain.RecordType) ([]domain.HealthRecord, error)
	Create(ctx context.Context, input CreateRecordInput) (*domain.HealthRecord, error)
	Delete(ctx context.Context, input DeleteRecordInput) error
	ExportWorkbook(ctx context.Context, petID, userID uuid.UUID) (*ExportFile, error)
}

type recordService struct {
	records port.HealthRecordRepository
	pets    port.PetRepository
	guard   petGuard
}

// NewRecordService creates a new RecordService implementation.
func NewRecordService(records port.HealthRecordRepository, pets port.PetRepository, members port.PetMemberRepository) RecordService {
	return &recordService{records: records, pets: pets, guard: petGuard{members: members}}
}

func (s *recordService) List(ctx context.Context, petID, userID uuid.UUID, recordType domain.RecordType) ([]domain.HealthRecord, error) {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleViewer); err != nil {
		return nil, err
	}
	return s.records.ListByPet(ctx, petID, recordType)
}

func (s *recordService) Create(ctx context.Context, input CreateRecordInput) (*domain.HealthRecord, error) {
	if _, err := s.guard.require(ctx, input.PetID, input.UserID, domain.PetRoleEditor); err != nil {
		return nil, err
	}

	fields, err := healthrecord.Map(input.RecordType, input.Data)
	if err != nil {
		return nil, err
	}
	if err := healthrecord.Validate(input.RecordType, fields); err != nil {
		return nil, err
	}

	userID := input.UserID
	now := time.Now().UTC()
	record := &domain.HealthRecord{
		ID:         uuid.New(),
		PetID:      input.PetID,
		RecordType: input.RecordType,
		Fields:     fields,
		CreatedBy:  &userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	audit, err := newAuditEntry(auditParams{
		PetID:     input.PetID,
		Record:    record,
		Action:    domain.AuditActionCreate,
		UserID:    userID,
		Source:    domain.AuditSourceManual,
		After:     fields,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	})
	if err != nil {
		return nil, err
	}
	if err := s.records.Create(ctx, record, audit); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *recordService) Delete(ctx context.Context, input DeleteRecordInput) error {
	if _, err := s.guard.require(ctx, input.PetID, input.UserID, domain.PetRoleEditor); err != nil {
		return err
	}

	record, err := s.records.GetByID(ctx, input.PetID, input.RecordType, input.RecordID)
	if err != nil {
		return err
	}
	audit, err := newAuditEntry(auditParams{
		PetID:     input.PetID,
		Record:    record,
		Action:    domain.AuditActionDelete,
		UserID:    input.UserID,
		Source:    domain.AuditSourceManual,
		Before:    record.Fields,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	})
	if err != nil {
		return err
	}
	return s.records.Delete(ctx, input.PetID, input.RecordType, input.RecordID, audit)
}

func (s *recordService) ExportWorkbook(ctx context.Context, petID, userID uuid.UUID) (*ExportFile, error) {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleViewer); err != nil {
		return nil, err
	}
	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	records, err := loadAllRecords(ctx, s.records, petID)
	if err != nil {
		return nil, err
	}

	data, err := buildWorkbook(records)
	if err != nil {
		return nil, err
	}
	zap.L().Info("recordService.ExportWorkbook: workbook built",
		zap.String("pet_id", petID.String()), zap.Int("bytes", len(data)))
	return &ExportFile{
		Filename: csvexport.BuildFilename(pet.Name, "records", "xlsx"),
		Data:     data,
	}, nil
}

// loadAllRecords fetches every record type for a pet concurrently.
func loadAllRecords(ctx context.Context, repo port.HealthRecordRepository, petID uuid.UUID) (map[domain.RecordType][]domain.HealthRecord, error) {
	results := make([][]domain.HealthRecord, len(domain.RecordTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, rt := range domain.RecordTypes {
		g.Go(func() error {
			recs, err := repo.ListByPet(gctx, petID, rt)
			if err != nil {
				return fmt.Errorf("loading %s records: %w", rt, err)
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[domain.RecordType][]domain.HealthRecord, len(domain.RecordTypes))
	for i, rt := range domain.RecordTypes {
		out[rt] = results[i]
	}
	return out, nil
}

// buildWorkbook lays out one sheet per record type, columns in schema order.
func buildWorkbook(records map[domain.RecordType][]domain.HealthRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, rt := range domain.RecordTypes {
		sheet := sheetNames[rt]
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("xlsx sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("xlsx sheet: %w", err)
		}

		schema := domain.RecordSchemas[rt]
		headers := append(append([]string{}, schema.Fields...), "created_at")
		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			_ = f.SetCellValue(sheet, cell, columnTitle(h))
		}

		for r, rec := range records[rt] {
			for col, field := range schema.Fields {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
				if v := rec.Fields[field]; v != nil {
					_ = f.SetCellValue(sheet, cell, v)
				}
			}
			cell, _ := excelize.CoordinatesToCellName(len(schema.Fields)+1, r+2)
			_ = f.SetCellValue(sheet, cell, rec.CreatedAt.UTC().Format("2006-01-02"))
		}

		last, _ := excelize.ColumnNumberToName(len(headers))
		_ = f.SetColWidth(sheet, "A", last, 20)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

var sheetNames = map[domain.RecordType]string{
	domain.RecordTypeVaccination:      "Vaccinations",
	domain.RecordTypeMedication:       "Medications",
	domain.RecordTypeCondition:        "Conditions",
	domain.RecordTypeAllergy:          "Allergies",
	domain.RecordTypeVet:              "Vets",
	domain.RecordTypeEmergencyContact: "Emergency Contacts",
}

// columnTitle turns a snake_case field into "Title Case".
func columnTitle(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
