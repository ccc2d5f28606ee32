package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"talent-match/internal/domain/profile"

	"github.com/google/uuid"
)

const (
	defaultRankLimit = 20
	maxRankLimit     = 100
	defaultWorkers   = 8
)

type Options struct {
	Limit      int
	MinScore   float64
	ExcludeIDs []uuid.UUID

	// Prioritize mixes each target's bonus into the sort key, but only when
	// the subject qualifies for the domain's bonus category. The bonus is
	// otherwise informational.
	Prioritize bool
}

type Config struct {
	Domain   Domain
	Weights  Weights
	Tiers    TierThresholds
	MinScore float64
	Workers  int
	Now      func() time.Time
}

// Ranker scores a subject against a pool of targets for one match domain. One
// ranker is constructed per weight-table configuration and injected where
// needed; there is no ambient singleton.
type Ranker struct {
	domain   Domain
	weights  Weights
	tiers    TierThresholds
	minScore float64
	workers  int
	now      func() time.Time
}

func NewRanker(cfg Config) (*Ranker, error) {
	if cfg.Domain != DomainJob && cfg.Domain != DomainMentorship {
		return nil, fmt.Errorf("unknown match domain %q", cfg.Domain)
	}
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}

	tiers := cfg.Tiers
	if tiers == (TierThresholds{}) {
		tiers = DefaultTierThresholds()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Ranker{
		domain:   cfg.Domain,
		weights:  cfg.Weights,
		tiers:    tiers,
		minScore: cfg.MinScore,
		workers:  workers,
		now:      now,
	}, nil
}

func (r *Ranker) Domain() Domain {
	return r.domain
}

// Score evaluates a single subject/target pair. It is pure apart from reading
// the ranker's clock once.
func (r *Ranker) Score(sub profile.Subject, tgt profile.Target) MatchResult {
	return r.score(sub, tgt, r.now().UTC())
}

func (r *Ranker) score(sub profile.Subject, tgt profile.Target, now time.Time) MatchResult {
	skills := SkillSetScore(sub.Skills, tgt.RequiredSkills, tgt.PreferredSkills)

	scores := FactorScores{
		FactorSkills:       skills.Score,
		FactorLocation:     LocationFactor(sub, tgt),
		FactorIndustry:     IndustryFactor(sub.Industries, tgt.Industry),
		FactorCultural:     CulturalFitFactor(sub, tgt),
		FactorReputation:   ReputationFactor(tgt.Rating, tgt.RatingCount),
		FactorAvailability: AvailabilityFactor(sub, tgt),
	}

	switch r.domain {
	case DomainJob:
		scores[FactorExperience] = ExperienceGapFactor(sub.ExperienceYears, tgt.MinYears, tgt.MaxYears)
		scores[FactorRecency] = RecencyFactor(tgt.PostedAt, now)
	case DomainMentorship:
		scores[FactorExperience] = MentorshipGapFactor(sub.ExperienceYears, tgt.ExperienceYears)
	}

	return Aggregate(sub.ID, tgt.ID, scores, r.weights, r.bonus(sub, tgt), skills, r.tiers)
}

func (r *Ranker) bonus(sub profile.Subject, tgt profile.Target) float64 {
	switch r.domain {
	case DomainJob:
		if tgt.VerifiedOrg || (sub.IndigenousIdentifying && tgt.IndigenousAffiliated) {
			return BonusCap
		}
	case DomainMentorship:
		if sub.SeekingElderMentor && tgt.IsElder {
			return BonusCap
		}
	}
	return 0
}

func (r *Ranker) bonusQualified(sub profile.Subject) bool {
	switch r.domain {
	case DomainJob:
		return sub.IndigenousIdentifying
	case DomainMentorship:
		return sub.SeekingElderMentor
	default:
		return false
	}
}

// eligible applies business filtering before any scoring cost is paid:
// inactive targets, explicit exclusions and at-capacity mentors are dropped
// up front.
func (r *Ranker) eligible(tgt profile.Target, excluded map[uuid.UUID]struct{}) bool {
	if !tgt.Active {
		return false
	}
	if _, ok := excluded[tgt.ID]; ok {
		return false
	}
	if r.domain == DomainMentorship && tgt.MaxCapacity > 0 && tgt.CurrentLoad >= tgt.MaxCapacity {
		return false
	}
	return true
}

type scoredTarget struct {
	result    MatchResult
	sortScore float64
	postedAt  time.Time
	id        uuid.UUID
}

// Rank scores the subject against every eligible pool member concurrently,
// filters by minimum score and returns a deterministically ordered, truncated
// result. A cancelled context aborts the whole call rather than returning a
// silently partial ranking.
func (r *Ranker) Rank(ctx context.Context, sub profile.Subject, pool []profile.Target, opts Options) ([]MatchResult, error) {
	now := r.now().UTC()

	minScore := opts.MinScore
	if minScore <= 0 {
		minScore = r.minScore
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultRankLimit
	}
	if limit > maxRankLimit {
		limit = maxRankLimit
	}

	excluded := make(map[uuid.UUID]struct{}, len(opts.ExcludeIDs))
	for _, id := range opts.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	eligible := make([]profile.Target, 0, len(pool))
	for _, tgt := range pool {
		if r.eligible(tgt, excluded) {
			eligible = append(eligible, tgt)
		}
	}
	if len(eligible) == 0 {
		return []MatchResult{}, nil
	}

	p := newScorePool(r.workers, len(eligible))
	prioritize := opts.Prioritize && r.bonusQualified(sub)
	for _, tgt := range eligible {
		tgt := tgt
		p.Submit(func() scoredTarget {
			res := r.score(sub, tgt, now)
			key := res.Total
			if prioritize {
				key += res.Bonus
			}
			if r.domain == DomainMentorship {
				key += CapacityFactor(tgt.CurrentLoad, tgt.MaxCapacity)
			}
			return scoredTarget{result: res, sortScore: key, postedAt: tgt.PostedAt, id: tgt.ID}
		})
	}
	p.Close()

	scored := make([]scoredTarget, 0, len(eligible))
	for st := range p.Run(ctx) {
		if st.result.Total < minScore {
			continue
		}
		scored = append(scored, st)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].sortScore != scored[j].sortScore {
			return scored[i].sortScore > scored[j].sortScore
		}
		if !scored[i].postedAt.Equal(scored[j].postedAt) {
			return scored[i].postedAt.After(scored[j].postedAt)
		}
		return strings.Compare(scored[i].id.String(), scored[j].id.String()) < 0
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]MatchResult, 0, len(scored))
	for _, st := range scored {
		out = append(out, st.result)
	}
	return out, nil
}
