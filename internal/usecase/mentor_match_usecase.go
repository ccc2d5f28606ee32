package usecase

import (
	"context"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/profile"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MentorMatchUsecase interface {
	FindMentorMatches(ctx context.Context, menteeID uuid.UUID, params MatchParams) ([]matching.MatchResult, error)
}

type MentorMatch struct {
	subjects repository.SubjectRepository
	mentors  repository.MentorTargetRepository
	ranker   *matching.Ranker

	cache        MatchCache
	cacheTTL     time.Duration
	fetchTimeout time.Duration
	logger       *zap.Logger
}

func NewMentorMatchUsecase(subjects repository.SubjectRepository, mentors repository.MentorTargetRepository, ranker *matching.Ranker, cache MatchCache, cacheTTL, fetchTimeout time.Duration, logger *zap.Logger) *MentorMatch {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &MentorMatch{
		subjects:     subjects,
		mentors:      mentors,
		ranker:       ranker,
		cache:        cache,
		cacheTTL:     cacheTTL,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

func (u *MentorMatch) FindMentorMatches(ctx context.Context, menteeID uuid.UUID, params MatchParams) ([]matching.MatchResult, error) {
	if menteeID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	key := MatchCacheKey(matching.DomainMentorship, menteeID, params)
	if u.cache != nil {
		var cached []matching.MatchResult
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	subject, pool, err := fetchSubjectAndPool(ctx, u.fetchTimeout, menteeID, u.subjects, func(gctx context.Context) ([]profile.RawTarget, error) {
		return u.mentors.FetchEligibleMentors(gctx, repository.TargetFilter{})
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
