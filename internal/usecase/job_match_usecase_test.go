package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/profile"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockSubjectRepo struct {
	subject profile.RawSubject
	err     error
	calls   int
}

func (m *mockSubjectRepo) FindSubject(context.Context, uuid.UUID) (profile.RawSubject, error) {
	m.calls++
	return m.subject, m.err
}

type mockJobTargetRepo struct {
	targets []profile.RawTarget
	err     error
}

func (m *mockJobTargetRepo) FetchEligibleJobs(context.Context, repository.TargetFilter) ([]profile.RawTarget, error) {
	return m.targets, m.err
}

type mockMentorTargetRepo struct {
	targets []profile.RawTarget
	err     error
}

func (m *mockMentorTargetRepo) FetchEligibleMentors(context.Context, repository.TargetFilter) ([]profile.RawTarget, error) {
	return m.targets, m.err
}

type memoryCache struct {
	entries map[string][]matching.MatchResult
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]matching.MatchResult)}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	results, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	dst, ok := out.(*[]matching.MatchResult)
	if !ok {
		return false, nil
	}
	*dst = results
	return true, nil
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if results, ok := value.([]matching.MatchResult); ok {
		c.entries[key] = results
		c.sets++
	}
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func testJobRanker(t *testing.T) *matching.Ranker {
	t.Helper()
	r, err := matching.NewRanker(matching.Config{Domain: matching.DomainJob, Weights: matching.JobWeights()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return r
}

func rawJobTarget() profile.RawTarget {
	posted := time.Now().UTC().Add(-24 * time.Hour)
	return profile.RawTarget{
		ID:             uuid.New(),
		RequiredSkills: []string{"go"},
		PostedAt:       &posted,
	}
}

func TestJobMatch_NilCandidate(t *testing.T) {
	uc := NewJobMatchUsecase(&mockSubjectRepo{}, &mockJobTargetRepo{}, testJobRanker(t), nil, 0, 0, nil)

	_, err := uc.FindJobMatches(context.Background(), uuid.Nil, MatchParams{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestJobMatch_SubjectNotFound(t *testing.T) {
	uc := NewJobMatchUsecase(
		&mockSubjectRepo{err: repository.ErrSubjectNotFound},
		&mockJobTargetRepo{},
		testJobRanker(t), nil, 0, 0, nil,
	)

	_, err := uc.FindJobMatches(context.Background(), uuid.New(), MatchParams{})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
}

func TestJobMatch_PoolFetchFailure(t *testing.T) {
	uc := NewJobMatchUsecase(
		&mockSubjectRepo{subject: profile.RawSubject{ID: uuid.New()}},
		&mockJobTargetRepo{err: errors.New("connection refused")},
		testJobRanker(t), nil, 0, 0, nil,
	)

	_, err := uc.FindJobMatches(context.Background(), uuid.New(), MatchParams{})
	if !errors.Is(err, ErrPoolFetchFailed) {
		t.Fatalf("expected ErrPoolFetchFailed, got %v", err)
	}
}

func TestJobMatch_EmptyPoolIsValid(t *testing.T) {
	uc := NewJobMatchUsecase(
		&mockSubjectRepo{subject: profile.RawSubject{ID: uuid.New()}},
		&mockJobTargetRepo{},
		testJobRanker(t), nil, 0, 0, nil,
	)

	results, err := uc.FindJobMatches(context.Background(), uuid.New(), MatchParams{})
	if err != nil {
		t.Fatalf("empty pool must not error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestJobMatch_Success(t *testing.T) {
	candidateID := uuid.New()
	target := rawJobTarget()
	cache := newMemoryCache()

	uc := NewJobMatchUsecase(
		&mockSubjectRepo{subject: profile.RawSubject{ID: candidateID, Skills: []string{"go"}}},
		&mockJobTargetRepo{targets: []profile.RawTarget{target}},
		testJobRanker(t), cache, time.Minute, 0, nil,
	)

	results, err := uc.FindJobMatches(context.Background(), candidateID, MatchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].SubjectID != candidateID || results[0].TargetID != target.ID {
		t.Fatalf("unexpected pairing: %+v", results[0])
	}
	if cache.sets != 1 {
		t.Fatalf("expected result cached once, got %d writes", cache.sets)
	}
}

func TestJobMatch_CacheHitSkipsRepositories(t *testing.T) {
	candidateID := uuid.New()
	params := MatchParams{Limit: 10}
	cached := []matching.MatchResult{{SubjectID: candidateID, TargetID: uuid.New(), Total: 88}}

	cache := newMemoryCache()
	cache.entries[MatchCacheKey(matching.DomainJob, candidateID, params)] = cached

	subjects := &mockSubjectRepo{err: errors.New("db down")}
	uc := NewJobMatchUsecase(subjects, &mockJobTargetRepo{err: errors.New("db down")}, testJobRanker(t), cache, time.Minute, 0, nil)

	results, err := uc.FindJobMatches(context.Background(), candidateID, params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 1 || results[0].Total != 88 {
		t.Fatalf("expected cached result, got %v", results)
	}
	if subjects.calls != 0 {
		t.Fatalf("cache hit must not touch the subject repository")
	}
}

func TestMatchCacheKey_Stable(t *testing.T) {
	subjectID := uuid.New()
	a := uuid.New()
	b := uuid.New()

	k1 := MatchCacheKey(matching.DomainJob, subjectID, MatchParams{ExcludeIDs: []uuid.UUID{a, b}})
	k2 := MatchCacheKey(matching.DomainJob, subjectID, MatchParams{ExcludeIDs: []uuid.UUID{b, a}})
	if k1 != k2 {
		t.Fatalf("exclusion order must not change the key")
	}

	k3 := MatchCacheKey(matching.DomainMentorship, subjectID, MatchParams{ExcludeIDs: []uuid.UUID{a, b}})
	if k1 == k3 {
		t.Fatalf("different domains must not share keys")
	}
}
