package matching

import (
	"testing"

	"github.com/google/uuid"
)

func fullScores(w Weights, v float64) FactorScores {
	scores := make(FactorScores, len(w))
	for f := range w {
		scores[f] = v
	}
	return scores
}

func TestAggregate_FullScore(t *testing.T) {
	w := JobWeights()
	res := Aggregate(uuid.New(), uuid.New(), fullScores(w, 1.0), w, 0, SkillScore{}, DefaultTierThresholds())

	if res.Total != 100 {
		t.Fatalf("expected total 100, got %v", res.Total)
	}
	if res.Tier != TierExcellent {
		t.Fatalf("expected excellent tier, got %q", res.Tier)
	}
	if !res.Recommended {
		t.Fatalf("expected recommended at full score")
	}
	for f, weight := range w {
		if res.Breakdown[f] != float64(weight) {
			t.Fatalf("breakdown for %s = %v, want %v", f, res.Breakdown[f], float64(weight))
		}
	}
}

func TestAggregate_ZeroScore(t *testing.T) {
	w := JobWeights()
	res := Aggregate(uuid.New(), uuid.New(), fullScores(w, 0), w, 0, SkillScore{}, DefaultTierThresholds())

	if res.Total != 0 {
		t.Fatalf("expected total 0, got %v", res.Total)
	}
	if res.Tier != TierPossible {
		t.Fatalf("expected possible tier, got %q", res.Tier)
	}
	if res.Recommended {
		t.Fatalf("did not expect recommendation at zero score")
	}
}

func TestAggregate_NeutralProfileLandsMidScale(t *testing.T) {
	w := JobWeights()
	res := Aggregate(uuid.New(), uuid.New(), fullScores(w, 0.5), w, 0, SkillScore{}, DefaultTierThresholds())

	if res.Total != 50 {
		t.Fatalf("expected total 50 for all-neutral factors, got %v", res.Total)
	}
	if res.Tier != TierFair {
		t.Fatalf("expected fair tier, got %q", res.Tier)
	}
	if res.Recommended {
		t.Fatalf("neutral profile must not be recommended")
	}
}

func TestAggregate_ClampsOutOfRangeInputs(t *testing.T) {
	w := JobWeights()
	res := Aggregate(uuid.New(), uuid.New(), fullScores(w, 2.0), w, 0, SkillScore{}, DefaultTierThresholds())
	if res.Total != 100 {
		t.Fatalf("expected clamp at 100, got %v", res.Total)
	}

	res = Aggregate(uuid.New(), uuid.New(), fullScores(w, -1.0), w, 0, SkillScore{}, DefaultTierThresholds())
	if res.Total != 0 {
		t.Fatalf("expected clamp at 0, got %v", res.Total)
	}
}

func TestAggregate_BonusClamped(t *testing.T) {
	w := JobWeights()

	res := Aggregate(uuid.New(), uuid.New(), fullScores(w, 1.0), w, 10, SkillScore{}, DefaultTierThresholds())
	if res.Bonus != BonusCap {
		t.Fatalf("expected bonus capped at %v, got %v", BonusCap, res.Bonus)
	}
	if res.Total != 100 {
		t.Fatalf("bonus must not leak into total, got %v", res.Total)
	}

	res = Aggregate(uuid.New(), uuid.New(), fullScores(w, 1.0), w, -3, SkillScore{}, DefaultTierThresholds())
	if res.Bonus != 0 {
		t.Fatalf("expected negative bonus floored at 0, got %v", res.Bonus)
	}
}

func TestAggregate_CarriesSkillDetail(t *testing.T) {
	w := JobWeights()
	skills := SkillScore{Score: 1.0, Matched: []string{"go"}, Missing: []string{"rust"}}

	res := Aggregate(uuid.New(), uuid.New(), fullScores(w, 1.0), w, 0, skills, DefaultTierThresholds())
	if len(res.MatchedSkills) != 1 || res.MatchedSkills[0] != "go" {
		t.Fatalf("unexpected matched skills: %v", res.MatchedSkills)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "rust" {
		t.Fatalf("unexpected missing skills: %v", res.MissingSkills)
	}
}
