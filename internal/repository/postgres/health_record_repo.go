package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"petvault/internal/domain"
	"petvault/internal/healthrecord"
	"petvault/internal/port"
)

type healthRecordRepo struct {
	db *sqlx.DB
}

// NewHealthRecordRepo creates a new PostgreSQL-backed HealthRecordRepository.
func NewHealthRecordRepo(db *sqlx.DB) port.HealthRecordRepository {
	return &healthRecordRepo{db: db}
}

func (r *healthRecordRepo) Create(ctx context.Context, record *domain.HealthRecord, audit *domain.AuditLogEntry) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := insertHealthRecord(ctx, tx, record); err != nil {
			return fmt.Errorf("healthRecordRepo.Create: %w", err)
		}
		audit.EntityID = record.ID
		if err := insertAuditEntry(ctx, tx, audit); err != nil {
			return fmt.Errorf("healthRecordRepo.Create audit: %w", err)
		}
		return nil
	})
}

func (r *healthRecordRepo) GetByID(ctx context.Context, petID uuid.UUID, recordType domain.RecordType, recordID uuid.UUID) (*domain.HealthRecord, error) {
	schema, err := healthrecord.Schema(recordType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND pet_id = $2",
		selectColumns(schema), schema.Table)
	rows, err := r.db.QueryxContext(ctx, query, recordID, petID)
	if err != nil {
		return nil, fmt.Errorf("healthRecordRepo.GetByID: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("healthRecordRepo.GetByID: %w", err)
		}
		return nil, domain.ErrRecordNotFound
	}
	rec, err := scanHealthRecord(rows, recordType, schema)
	if err != nil {
		return nil, fmt.Errorf("healthRecordRepo.GetByID: %w", err)
	}
	return rec, nil
}

func (r *healthRecordRepo) ListByPet(ctx context.Context, petID uuid.UUID, recordType domain.RecordType) ([]domain.HealthRecord, error) {
	schema, err := healthrecord.Schema(recordType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE pet_id = $1 ORDER BY created_at DESC",
		selectColumns(schema), schema.Table)
	rows, err := r.db.QueryxContext(ctx, query, petID)
	if err != nil {
		return nil, fmt.Errorf("healthRecordRepo.ListByPet: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []domain.HealthRecord{}
	for rows.Next() {
		rec, err := scanHealthRecord(rows, recordType, schema)
		if err != nil {
			return nil, fmt.Errorf("healthRecordRepo.ListByPet scan: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("healthRecordRepo.ListByPet: %w", err)
	}
	return records, nil
}

func (r *healthRecordRepo) Delete(ctx context.Context, petID uuid.UUID, recordType domain.RecordType, recordID uuid.UUID, audit *domain.AuditLogEntry) error {
	schema, err := healthrecord.Schema(recordType)
	if err != nil {
		return err
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND pet_id = $2", schema.Table),
			recordID, petID)
		if err != nil {
			return fmt.Errorf("healthRecordRepo.Delete: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrRecordNotFound
		}
		if err := insertAuditEntry(ctx, tx, audit); err != nil {
			return fmt.Errorf("healthRecordRepo.Delete audit: %w", err)
		}
		return nil
	})
}

// insertHealthRecord writes a record into its type's table. Table and column
// names come from domain.RecordSchemas, never from caller input.
func insertHealthRecord(ctx context.Context, ext sqlx.ExtContext, rec *domain.HealthRecord) error {
	schema, err := healthrecord.Schema(rec.RecordType)
	if err != nil {
		return err
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	cols := append([]string{"id", "pet_id"}, schema.Fields...)
	cols = append(cols, "created_by", "created_at", "updated_at")

	args := make([]interface{}, 0, len(cols))
	args = append(args, rec.ID, rec.PetID)
	for _, f := range schema.Fields {
		v, err := columnValue(f, rec.Fields[f])
		if err != nil {
			return err
		}
		args = append(args, v)
	}
	args = append(args, rec.CreatedBy, rec.CreatedAt, rec.UpdatedAt)

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		schema.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	if _, err := ext.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

// columnValue converts a mapped field value into a query argument. Date fields
// are sent as time.Time so they bind to DATE columns.
func columnValue(field string, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if healthrecord.IsDateField(field) {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrValidation, field)
		}
		return t, nil
	}
	return s, nil
}

func selectColumns(schema domain.RecordSchema) string {
	cols := []string{"id", "pet_id", "created_by", "created_at", "updated_at"}
	for _, f := range schema.Fields {
		if healthrecord.IsDateField(f) {
			cols = append(cols, fmt.Sprintf("to_char(%s, 'YYYY-MM-DD') AS %s", f, f))
			continue
		}
		cols = append(cols, f)
	}
	return strings.Join(cols, ", ")
}

func scanHealthRecord(rows *sqlx.Rows, recordType domain.RecordType, schema domain.RecordSchema) (*domain.HealthRecord, error) {
	rec := domain.HealthRecord{RecordType: recordType, Fields: make(map[string]any, len(schema.Fields))}
	var createdBy uuid.NullUUID
	values := make([]sql.NullString, len(schema.Fields))

	dest := []interface{}{&rec.ID, &rec.PetID, &createdBy, &rec.CreatedAt, &rec.UpdatedAt}
	for i := range values {
		dest = append(dest, &values[i])
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	if createdBy.Valid {
		id := createdBy.UUID
		rec.CreatedBy = &id
	}
	for i, f := range schema.Fields {
		if values[i].Valid {
			rec.Fields[f] = values[i].String
		} else {
			rec.Fields[f] = nil
		}
	}
	return &rec, nil
}

// errNoRows reports whether err is the not-found result of a single-row query.
func errNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
