package repository

import (
	"context"
	"database/sql"
	"errors"

	"talent-match/internal/database"
	"talent-match/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSubjectNotFound = errors.New("subject not found")

// SubjectRepository loads the read-only candidate/mentee snapshot the engine
// scores from. The engine never issues its own queries.
type SubjectRepository interface {
	FindSubject(ctx context.Context, id uuid.UUID) (profile.RawSubject, error)
}

type PostgresSubjectRepository struct {
	db database.DB
}

func NewPostgresSubjectRepository(db database.DB) *PostgresSubjectRepository {
	return &PostgresSubjectRepository{db: db}
}

func (r *PostgresSubjectRepository) FindSubject(ctx context.Context, id uuid.UUID) (profile.RawSubject, error) {
	row := r.db.QueryRow(ctx,
		`SELECT p.user_id, COALESCE(p.skills, '{}'), p.location, p.work_mode,
		        p.salary_min, p.salary_max, COALESCE(p.industries, '{}'),
		        p.indigenous_identifying, p.seeking_elder_mentor,
		        COALESCE(p.cultural_interests, '{}'), COALESCE(p.goals, '{}'),
		        p.timezone, COALESCE(p.languages, '{}')
		 FROM candidate_profiles p
		 WHERE p.user_id = $1`,
		id,
	)

	var raw profile.RawSubject
	err := row.Scan(
		&raw.ID, &raw.Skills, &raw.Location, &raw.WorkMode,
		&raw.SalaryMin, &raw.SalaryMax, &raw.Industries,
		&raw.IndigenousIdentifying, &raw.SeekingElderMentor,
		&raw.CulturalInterests, &raw.Goals,
		&raw.Timezone, &raw.Languages,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return profile.RawSubject{}, ErrSubjectNotFound
		}
		return profile.RawSubject{}, err
	}

	raw.WorkHistory, err = r.findWorkHistory(ctx, id)
	if err != nil {
		return profile.RawSubject{}, err
	}

	raw.Availability, err = r.findAvailability(ctx, id)
	if err != nil {
		return profile.RawSubject{}, err
	}

	return raw, nil
}

func (r *PostgresSubjectRepository) findWorkHistory(ctx context.Context, userID uuid.UUID) ([]profile.WorkInterval, error) {
	rows, err := r.db.Query(ctx,
		`SELECT started_at, ended_at
		 FROM work_history
		 WHERE user_id = $1
		 ORDER BY started_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.WorkInterval, 0)
	for rows.Next() {
		var iv profile.WorkInterval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSubjectRepository) findAvailability(ctx context.Context, userID uuid.UUID) ([]profile.RawAvailability, error) {
	rows, err := r.db.Query(ctx,
		`SELECT day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		 FROM availability_slots
		 WHERE user_id = $1
		 ORDER BY day_of_week ASC, start_time ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.RawAvailability, 0)
	for rows.Next() {
		var slot profile.RawAvailability
		if err := rows.Scan(&slot.Day, &slot.Start, &slot.End); err != nil {
			return nil, err
		}
		out = append(out, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
