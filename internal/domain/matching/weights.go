package matching

import (
	"errors"
	"fmt"
)

type Domain string

const (
	DomainJob        Domain = "job"
	DomainMentorship Domain = "mentorship"
)

type Factor string

const (
	FactorSkills       Factor = "skills"
	FactorExperience   Factor = "experience"
	FactorLocation     Factor = "location"
	FactorIndustry     Factor = "industry"
	FactorCultural     Factor = "cultural"
	FactorReputation   Factor = "reputation"
	FactorAvailability Factor = "availability"
	FactorRecency      Factor = "recency"
)

// Weights assigns an integer share of the 0-100 base total to each non-bonus
// factor. Tables must sum to exactly 100; this is validated at ranker
// construction, not per request.
type Weights map[Factor]int

var ErrInvalidWeightTable = errors.New("invalid weight table")

func (w Weights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidWeightTable)
	}
	sum := 0
	for f, v := range w {
		if v < 0 {
			return fmt.Errorf("%w: negative weight for %s", ErrInvalidWeightTable, f)
		}
		sum += v
	}
	if sum != 100 {
		return fmt.Errorf("%w: weights sum to %d, want 100", ErrInvalidWeightTable, sum)
	}
	return nil
}

func JobWeights() Weights {
	return Weights{
		FactorSkills:       35,
		FactorExperience:   20,
		FactorLocation:     15,
		FactorIndustry:     10,
		FactorCultural:     5,
		FactorReputation:   5,
		FactorAvailability: 5,
		FactorRecency:      5,
	}
}

func MentorshipWeights() Weights {
	return Weights{
		FactorSkills:       30,
		FactorExperience:   20,
		FactorAvailability: 15,
		FactorCultural:     15,
		FactorReputation:   10,
		FactorIndustry:     10,
	}
}

// Bonus points sit outside the 0-100 base and are individually capped. They
// influence the sort key when prioritization is requested, never eligibility.
const BonusCap = 5.0

type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierPossible  Tier = "possible"
)

// Tier thresholds and the recommendation cutoff are hand-tuned policy values,
// not derived from the weight tables. Tune them independently.
type TierThresholds struct {
	Excellent float64
	Good      float64
	Fair      float64
}

func DefaultTierThresholds() TierThresholds {
	return TierThresholds{Excellent: 80, Good: 60, Fair: 45}
}

const RecommendedThreshold = 60.0

func (t TierThresholds) TierFor(total float64) Tier {
	switch {
	case total >= t.Excellent:
		return TierExcellent
	case total >= t.Good:
		return TierGood
	case total >= t.Fair:
		return TierFair
	default:
		return TierPossible
	}
}

type reasonRule struct {
	factor Factor
	min    float64
	text   string
}

// Disclosure thresholds for human-readable reasons. Deliberately independent
// from the weight tables so copy can be tuned without touching scoring.
var reasonRules = []reasonRule{
	{FactorSkills, 0.8, "Strong skills match"},
	{FactorExperience, 0.99, "Experience level fits"},
	{FactorLocation, 0.99, "Location and work mode aligned"},
	{FactorIndustry, 0.99, "Industry match"},
	{FactorCultural, 0.8, "Strong cultural fit"},
	{FactorReputation, 0.9, "Highly rated"},
	{FactorAvailability, 0.8, "Schedules overlap well"},
	{FactorRecency, 0.99, "Recently posted"},
}

func matchReasons(scores FactorScores, w Weights) []string {
	out := make([]string, 0, 3)
	for _, rule := range reasonRules {
		if _, weighted := w[rule.factor]; !weighted {
			continue
		}
		if v, ok := scores[rule.factor]; ok && v >= rule.min {
			out = append(out, rule.text)
		}
	}
	return out
}
