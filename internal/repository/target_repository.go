package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/domain/profile"

	"github.com/google/uuid"
)

// Pool fetches are bounded: scoring is O(pool) per request, so the read model
// is capped at a few hundred rows regardless of the caller's limit.
const maxPoolFetch = 300

type TargetFilter struct {
	Limit int
}

func (f TargetFilter) limit() int {
	if f.Limit <= 0 || f.Limit > maxPoolFetch {
		return maxPoolFetch
	}
	return f.Limit
}

type JobTargetRepository interface {
	FetchEligibleJobs(ctx context.Context, filter TargetFilter) ([]profile.RawTarget, error)
}

type MentorTargetRepository interface {
	FetchEligibleMentors(ctx context.Context, filter TargetFilter) ([]profile.RawTarget, error)
}

type PostgresJobTargetRepository struct {
	db database.DB
}

func NewPostgresJobTargetRepository(db database.DB) *PostgresJobTargetRepository {
	return &PostgresJobTargetRepository{db: db}
}

func (r *PostgresJobTargetRepository) FetchEligibleJobs(ctx context.Context, filter TargetFilter) ([]profile.RawTarget, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, COALESCE(j.required_skills, '{}'), COALESCE(j.preferred_skills, '{}'),
		        j.min_years, j.max_years, j.location, j.work_mode,
		        j.compensation_min, j.compensation_max, j.industry,
		        j.indigenous_affiliated, j.verified_org,
		        j.rating, j.rating_count, j.active, j.posted_at,
		        j.timezone, COALESCE(j.languages, '{}')
		 FROM job_openings j
		 WHERE j.active = TRUE
		 ORDER BY j.posted_at DESC NULLS LAST, j.id ASC
		 LIMIT $1`,
		filter.limit(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.RawTarget, 0)
	for rows.Next() {
		var t profile.RawTarget
		if err := rows.Scan(
			&t.ID, &t.RequiredSkills, &t.PreferredSkills,
			&t.MinYears, &t.MaxYears, &t.Location, &t.WorkMode,
			&t.CompensationMin, &t.CompensationMax, &t.Industry,
			&t.IndigenousAffiliated, &t.VerifiedOrg,
			&t.Rating, &t.RatingCount, &t.Active, &t.PostedAt,
			&t.Timezone, &t.Languages,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type PostgresMentorTargetRepository struct {
	db database.DB
}

func NewPostgresMentorTargetRepository(db database.DB) *PostgresMentorTargetRepository {
	return &PostgresMentorTargetRepository{db: db}
}

func (r *PostgresMentorTargetRepository) FetchEligibleMentors(ctx context.Context, filter TargetFilter) ([]profile.RawTarget, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.user_id, COALESCE(m.expertise, '{}'), COALESCE(m.secondary_expertise, '{}'),
		        m.experience_years, m.location, m.work_mode, m.specialization,
		        m.indigenous_affiliated, m.is_elder, COALESCE(m.cultural_tags, '{}'),
		        m.rating, m.rating_count, m.current_load, m.max_capacity,
		        m.active, m.timezone, COALESCE(m.languages, '{}')
		 FROM mentor_profiles m
		 WHERE m.active = TRUE AND (m.max_capacity IS NULL OR m.current_load < m.max_capacity)
		 ORDER BY m.rating DESC NULLS LAST, m.user_id ASC
		 LIMIT $1`,
		filter.limit(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.RawTarget, 0)
	for rows.Next() {
		var t profile.RawTarget
		if err := rows.Scan(
			&t.ID, &t.RequiredSkills, &t.PreferredSkills,
			&t.ExperienceYears, &t.Location, &t.WorkMode, &t.Industry,
			&t.IndigenousAffiliated, &t.IsElder, &t.CulturalTags,
			&t.Rating, &t.RatingCount, &t.CurrentLoad, &t.MaxCapacity,
			&t.Active, &t.Timezone, &t.Languages,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	if err := r.attachAvailability(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMentorTargetRepository) attachAvailability(ctx context.Context, mentors []profile.RawTarget) error {
	ids := make([]uuid.UUID, 0, len(mentors))
	index := make(map[uuid.UUID]int, len(mentors))
	for i, m := range mentors {
		if m.ID == uuid.Nil {
			continue
		}
		ids = append(ids, m.ID)
		index[m.ID] = i
	}

	rows, err := r.db.Query(ctx,
		`SELECT user_id, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		 FROM availability_slots
		 WHERE user_id = ANY($1)
		 ORDER BY user_id, day_of_week ASC, start_time ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var userID uuid.UUID
		var slot profile.RawAvailability
		if err := rows.Scan(&userID, &slot.Day, &slot.Start, &slot.End); err != nil {
			return err
		}
		if i, ok := index[userID]; ok {
			mentors[i].Availability = append(mentors[i].Availability, slot)
		}
	}
	return rows.Err()
}
