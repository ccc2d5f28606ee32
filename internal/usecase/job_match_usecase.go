package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/profile"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultFetchTimeout = 5 * time.Second

// MatchParams carries the caller-tunable ranking options shared by both match
// facades.
type MatchParams struct {
	Limit      int
	MinScore   float64
	ExcludeIDs []uuid.UUID
	Prioritize bool
}

type JobMatchUsecase interface {
	FindJobMatches(ctx context.Context, candidateID uuid.UUID, params MatchParams) ([]matching.MatchResult, error)
}

type JobMatch struct {
	subjects repository.SubjectRepository
	jobs     repository.JobTargetRepository
	ranker   *matching.Ranker

	cache        MatchCache
	cacheTTL     time.Duration
	fetchTimeout time.Duration
	logger       *zap.Logger
}

func NewJobMatchUsecase(subjects repository.SubjectRepository, jobs repository.JobTargetRepository, ranker *matching.Ranker, cache MatchCache, cacheTTL, fetchTimeout time.Duration, logger *zap.Logger) *JobMatch {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &JobMatch{
		subjects:     subjects,
		jobs:         jobs,
		ranker:       ranker,
		cache:        cache,
		cacheTTL:     cacheTTL,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

func (u *JobMatch) FindJobMatches(ctx context.Context, candidateID uuid.UUID, params MatchParams) ([]matching.MatchResult, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	key := MatchCacheKey(matching.DomainJob, candidateID, params)
	if u.cache != nil {
		var cached []matching.MatchResult
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	subject, pool, err := fetchSubjectAndPool(ctx, u.fetchTimeout, candidateID, u.subjects, func(gctx context.Context) ([]profile.RawTarget, error) {
		return u.jobs.FetchEligibleJobs(gctx, repository.TargetFilter{})
	})
	if err != nil {
		return nil, err
	}

	results, err := u.ranker.Rank(ctx, subject, pool, matching.Options{
		Limit:      params.Limit,
		MinScore:   params.MinScore,
		ExcludeIDs: params.ExcludeIDs,
		Prioritize: params.Prioritize,
	})
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, results, u.cacheTTL); err != nil {
			u.logger.Debug("match cache write skipped", zap.String("key", key), zap.Error(err))
		}
	}

	return results, nil
}

// fetchSubjectAndPool loads the subject and the eligible target pool
// concurrently, normalizing both. The fetch is the only I/O on the scoring
// path, so it carries its own timeout; a failure aborts the whole request.
func fetchSubjectAndPool(ctx context.Context, timeout time.Duration, subjectID uuid.UUID, subjects repository.SubjectRepository, fetchPool func(context.Context) ([]profile.RawTarget, error)) (profile.Subject, []profile.Target, error) {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var rawSubject profile.RawSubject
	var rawPool []profile.RawTarget

	g, gctx := errgroup.WithContext(fctx)
	g.Go(func() error {
		raw, err := subjects.FindSubject(gctx, subjectID)
		if err != nil {
			if errors.Is(err, repository.ErrSubjectNotFound) {
				return ErrSubjectNotFound
			}
			return fmt.Errorf("%w: subject: %v", ErrPoolFetchFailed, err)
		}
		rawSubject = raw
		return nil
	})
	g.Go(func() error {
		raw, err := fetchPool(gctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPoolFetchFailed, err)
		}
		rawPool = raw
		return nil
	})
	if err := g.Wait(); err != nil {
		return profile.Subject{}, nil, err
	}

	subject := profile.NormalizeSubject(rawSubject)
	pool := make([]profile.Target, 0, len(rawPool))
	for _, raw := range rawPool {
		pool = append(pool, profile.NormalizeTarget(raw))
	}
	return subject, pool, nil
}
