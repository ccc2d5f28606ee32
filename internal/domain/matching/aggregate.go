package matching

import (
	"math"

	"github.com/google/uuid"
)

// FactorScores holds raw per-factor values, each in [0,1], before weighting.
type FactorScores map[Factor]float64

// MatchResult is the ephemeral outcome of scoring one subject/target pair.
// Total is bounded to [0,100]; Bonus sits outside that scale and is only mixed
// into the sort key when prioritization is requested.
type MatchResult struct {
	SubjectID uuid.UUID `json:"subject_id"`
	TargetID  uuid.UUID `json:"target_id"`

	Total float64 `json:"total"`
	Bonus float64 `json:"bonus"`

	Breakdown map[Factor]float64 `json:"breakdown"`

	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`

	Reasons     []string `json:"reasons"`
	Tier        Tier     `json:"tier"`
	Recommended bool     `json:"recommended"`
}

// Aggregate combines raw factor scores with a weight table into a bounded
// total plus per-factor breakdown. Each breakdown entry is the weighted point
// contribution, so it lies in [0, weight].
func Aggregate(subjectID, targetID uuid.UUID, scores FactorScores, w Weights, bonus float64, skills SkillScore, tiers TierThresholds) MatchResult {
	breakdown := make(map[Factor]float64, len(w))
	total := 0.0
	for factor, weight := range w {
		v := clamp01(scores[factor])
		pts := round1(v * float64(weight))
		breakdown[factor] = pts
		total += pts
	}

	total = round1(total)
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	if bonus < 0 {
		bonus = 0
	}
	if bonus > BonusCap {
		bonus = BonusCap
	}

	return MatchResult{
		SubjectID:     subjectID,
		TargetID:      targetID,
		Total:         total,
		Bonus:         bonus,
		Breakdown:     breakdown,
		MatchedSkills: skills.Matched,
		MissingSkills: skills.Missing,
		Reasons:       matchReasons(scores, w),
		Tier:          tiers.TierFor(total),
		Recommended:   total >= RecommendedThreshold,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
