package postgres

import (
	"context"
	"database/sql"

	"pawcare-service/internal/domain/weights"
)

type WeightsRepo struct {
	db *sql.DB
}

func NewWeightsRepo(db *sql.DB) *WeightsRepo {
	return &WeightsRepo{db: db}
}

func (r *WeightsRepo) Create(ctx context.Context, rec weights.WeightRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO weight_records (id, pet_id, weight_kg, measured_at, notes)
		VALUES ($1,$2,$3,$4,$5)
	`,
		rec.ID,
		rec.PetID,
		rec.Weight,
		rec.Date,
		rec.Notes,
	)
	return err
}

func (r *WeightsRepo) Update(ctx context.Context, rec weights.WeightRecord) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE weight_records
		SET weight_kg = $2, measured_at = $3, notes = $4
		WHERE id = $1
	`,
		rec.ID,
		rec.Weight,
		rec.Date,
		rec.Notes,
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

func (r *WeightsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM weight_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *WeightsRepo) GetByID(ctx context.Context, id string) (weights.WeightRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, weight_kg, measured_at, notes
		FROM weight_records
		WHERE id = $1
	`, id)

	var rec weights.WeightRecord
	if err := row.Scan(&rec.ID, &rec.PetID, &rec.Weight, &rec.Date, &rec.Notes); err != nil {
		if err == sql.ErrNoRows {
			return weights.WeightRecord{}, ErrNotFound
		}
		return weights.WeightRecord{}, err
	}
	return rec, nil
}

func (r *WeightsRepo) ListByPet(ctx context.Context, petID string) ([]weights.WeightRecord, error) {
	// descendente por fecha; en empates el id da un orden determinista
	// pero no el de alta (los ids son UUIDs aleatorios)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, weight_kg, measured_at, notes
		FROM weight_records
		WHERE pet_id = $1
		ORDER BY measured_at DESC, id ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]weights.WeightRecord, 0)
	for rows.Next() {
		var rec weights.WeightRecord
		if err := rows.Scan(&rec.ID, &rec.PetID, &rec.Weight, &rec.Date, &rec.Notes); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *WeightsRepo) DeleteByPet(ctx context.Context, petID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM weight_records WHERE pet_id = $1`, petID)
	return err
}
