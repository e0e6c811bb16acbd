package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebook/carebook/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const doctorCols = `id, name, specialty, location, latitude, longitude,
	telemedicine_available, rating, experience_years, created_at, updated_at`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Location, &d.Latitude, &d.Longitude,
		&d.TelemedicineAvailable, &d.Rating, &d.ExperienceYears, &d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO doctor (id, name, specialty, location, latitude, longitude,
			telemedicine_available, rating, experience_years)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		d.ID, d.Name, d.Specialty, d.Location, d.Latitude, d.Longitude,
		d.TelemedicineAvailable, d.Rating, d.ExperienceYears)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	d, err := scanDoctor(r.conn(ctx).QueryRow(ctx, `SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repoPG) List(ctx context.Context, f Filter, limit, offset int) ([]*Doctor, int, error) {
	where := ` WHERE 1=1`
	var args []interface{}
	idx := 1

	if f.Specialty != "" {
		where += fmt.Sprintf(` AND specialty ILIKE $%d`, idx)
		args = append(args, f.Specialty)
		idx++
	}
	if f.Location != "" {
		where += fmt.Sprintf(` AND location ILIKE $%d`, idx)
		args = append(args, f.Location)
		idx++
	}
	if f.Telemedicine != nil {
		where += fmt.Sprintf(` AND telemedicine_available = $%d`, idx)
		args = append(args, *f.Telemedicine)
		idx++
	}
	if f.Search != "" {
		where += fmt.Sprintf(` AND (name ILIKE $%d OR specialty ILIKE $%d OR location ILIKE $%d)`, idx, idx, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM doctor`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := ` ORDER BY name ASC`
	switch f.SortBy {
	case "rating":
		order = ` ORDER BY rating DESC NULLS LAST`
	case "experience":
		order = ` ORDER BY experience_years DESC NULLS LAST`
	}

	query := `SELECT ` + doctorCols + ` FROM doctor` + where + order +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}

func (r *repoPG) CreateAvailability(ctx context.Context, a *WeeklyAvailability) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO weekly_availability (id, doctor_id, day_of_week, start_time, end_time, is_available)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.DoctorID, a.DayOfWeek, a.StartTime, a.EndTime, a.IsAvailable)
	return err
}

func (r *repoPG) AvailabilityByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*WeeklyAvailability, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, doctor_id, day_of_week, start_time, end_time, is_available
		FROM weekly_availability
		WHERE doctor_id = $1
		ORDER BY day_of_week, start_time`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*WeeklyAvailability
	for rows.Next() {
		var a WeeklyAvailability
		if err := rows.Scan(&a.ID, &a.DoctorID, &a.DayOfWeek, &a.StartTime, &a.EndTime, &a.IsAvailable); err != nil {
			return nil, err
		}
		rules = append(rules, &a)
	}
	return rules, rows.Err()
}
