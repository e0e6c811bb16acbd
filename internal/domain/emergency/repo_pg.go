package emergency

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebook/carebook/internal/platform/db"
)

type triageRepoPG struct{ pool *pgxpool.Pool }

func NewTriageRepoPG(pool *pgxpool.Pool) TriageRepository { return &triageRepoPG{pool: pool} }

func (r *triageRepoPG) conn(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *triageRepoPG) Create(ctx context.Context, t *Triage) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO emergency_triage (id, appointment_id, symptoms, emergency_score,
			severity_level, patient_lat, patient_lng, distance_km)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		t.ID, t.AppointmentID, t.Symptoms, t.Score, t.SeverityLevel,
		t.PatientLat, t.PatientLng, t.DistanceKm)
	return err
}

func (r *triageRepoPG) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Triage, error) {
	var t Triage
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, appointment_id, symptoms, emergency_score, severity_level,
			patient_lat, patient_lng, distance_km, created_at
		FROM emergency_triage WHERE appointment_id = $1`, appointmentID).
		Scan(&t.ID, &t.AppointmentID, &t.Symptoms, &t.Score, &t.SeverityLevel,
			&t.PatientLat, &t.PatientLng, &t.DistanceKm, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type queueRepoPG struct{ pool *pgxpool.Pool }

func NewQueueRepoPG(pool *pgxpool.Pool) QueueRepository { return &queueRepoPG{pool: pool} }

func (r *queueRepoPG) conn(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *queueRepoPG) Create(ctx context.Context, q *QueueEntry) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO emergency_queue (id, appointment_id, status)
		VALUES ($1,$2,$3)`,
		q.ID, q.AppointmentID, q.Status)
	return err
}

func (r *queueRepoPG) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*QueueEntry, error) {
	var q QueueEntry
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, appointment_id, status, created_at, updated_at
		FROM emergency_queue WHERE appointment_id = $1`, appointmentID).
		Scan(&q.ID, &q.AppointmentID, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *queueRepoPG) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status QueueStatus) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE emergency_queue SET status = $2, updated_at = NOW()
		WHERE appointment_id = $1`, appointmentID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotInQueue
	}
	return nil
}

func (r *queueRepoPG) ListByStatus(ctx context.Context, status QueueStatus, limit, offset int) ([]*QueueEntry, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM emergency_queue WHERE status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, appointment_id, status, created_at, updated_at
		FROM emergency_queue WHERE status = $1
		ORDER BY created_at ASC LIMIT $2 OFFSET $3`, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*QueueEntry
	for rows.Next() {
		var q QueueEntry
		if err := rows.Scan(&q.ID, &q.AppointmentID, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &q)
	}
	return items, total, rows.Err()
}
