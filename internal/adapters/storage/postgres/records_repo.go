package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"pawcare-service/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Create(ctx context.Context, rec records.HealthRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_records (
			id, pet_id, illness_id,
			type, severity,
			title, notes, veterinarian,
			occurred_at, recorded_at, reminder_at,
			attachments
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		rec.ID,
		rec.PetID,
		rec.IllnessID,
		rec.Type,
		rec.Severity,
		rec.Title,
		rec.Notes,
		rec.Veterinarian,
		rec.OccurredAt,
		rec.RecordedAt,
		rec.ReminderAt,
		toJSONAttachments(rec.Attachments),
	)
	return err
}

func (r *RecordsRepo) Update(ctx context.Context, rec records.HealthRecord) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE health_records
		SET
			illness_id = $2,
			type = $3,
			severity = $4,
			title = $5,
			notes = $6,
			veterinarian = $7,
			occurred_at = $8,
			reminder_at = $9,
			attachments = $10
		WHERE id = $1
	`,
		rec.ID,
		rec.IllnessID,
		rec.Type,
		rec.Severity,
		rec.Title,
		rec.Notes,
		rec.Veterinarian,
		rec.OccurredAt,
		rec.ReminderAt,
		toJSONAttachments(rec.Attachments),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RecordsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM health_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id string) (records.HealthRecord, error) {
	row := r.db.QueryRowContext(ctx, selectRecords+` WHERE id = $1`, id)
	rec, err := scanRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return records.HealthRecord{}, ErrNotFound
		}
		return records.HealthRecord{}, err
	}
	return rec, nil
}

const selectRecords = `
	SELECT
		id, pet_id, illness_id,
		type, severity,
		title, notes, veterinarian,
		occurred_at, recorded_at, reminder_at,
		attachments
	FROM health_records
`

func (r *RecordsRepo) ListByPet(ctx context.Context, petID string, filter records.ListFilter) ([]records.HealthRecord, error) {
	query := selectRecords + ` WHERE pet_id = $1`
	args := []any{petID}

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			args = append(args, string(t))
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		query += ` AND type IN (` + strings.Join(placeholders, ",") + `)`
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND occurred_at >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND occurred_at <= $%d`, len(args))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+strings.ToLower(q)+"%")
		query += fmt.Sprintf(` AND lower(title || ' ' || notes || ' ' || veterinarian) LIKE $%d`, len(args))
	}

	// recorded_at aproxima el orden de inserción; el id solo desempata
	// de forma determinista (UUIDs aleatorios, no secuenciales)
	query += ` ORDER BY recorded_at ASC, id ASC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.HealthRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) DeleteByPet(ctx context.Context, petID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM health_records WHERE pet_id = $1`, petID)
	return err
}

func scanRecord(scan func(...any) error) (records.HealthRecord, error) {
	var rec records.HealthRecord
	var reminder sql.NullTime
	var attachments []byte
	if err := scan(
		&rec.ID,
		&rec.PetID,
		&rec.IllnessID,
		&rec.Type,
		&rec.Severity,
		&rec.Title,
		&rec.Notes,
		&rec.Veterinarian,
		&rec.OccurredAt,
		&rec.RecordedAt,
		&reminder,
		&attachments,
	); err != nil {
		return records.HealthRecord{}, err
	}
	if reminder.Valid {
		t := reminder.Time
		rec.ReminderAt = &t
	}
	if len(attachments) > 0 {
		_ = json.Unmarshal(attachments, &rec.Attachments)
	}
	return rec, nil
}

// attachments van como JSONB embebido en el record (no hay tabla aparte en el MVP)
func toJSONAttachments(items []records.Attachment) []byte {
	if items == nil {
		items = []records.Attachment{}
	}
	b, _ := json.Marshal(items)
	return b
}
