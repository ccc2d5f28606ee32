package matching

import (
	"testing"
	"time"

	"talent-match/internal/domain/profile"
)

func TestExperienceGapFactor(t *testing.T) {
	cases := []struct {
		name            string
		years, min, max float64
		want            float64
	}{
		{"in band", 6, 5, 8, 1.0},
		{"at min", 5, 5, 8, 1.0},
		{"at max", 8, 5, 8, 1.0},
		{"slightly over", 9, 5, 8, 0.8},
		{"far over", 12, 5, 8, 0.5},
		{"just under", 4.5, 5, 8, 0.7},
		{"two under", 3.5, 5, 8, 0.5},
		{"far under", 1, 5, 8, 0.3},
		{"no band", 5, 0, 0, 0.5},
	}
	for _, c := range cases {
		if got := ExperienceGapFactor(c.years, c.min, c.max); got != c.want {
			t.Fatalf("%s: ExperienceGapFactor(%v, %v, %v) = %v, want %v", c.name, c.years, c.min, c.max, got, c.want)
		}
	}
}

func TestMentorshipGapFactor(t *testing.T) {
	cases := []struct {
		name           string
		mentee, mentor float64
		want           float64
	}{
		{"sweet spot", 2, 12, 1.0},
		{"distant", 2, 20, 0.8},
		{"very distant", 2, 25, 0.6},
		{"near peer", 5, 8, 0.7},
		{"peer", 5, 6, 0.4},
		{"junior mentor", 8, 5, 0.2},
		{"unknown mentor years", 5, 0, 0.5},
	}
	for _, c := range cases {
		if got := MentorshipGapFactor(c.mentee, c.mentor); got != c.want {
			t.Fatalf("%s: MentorshipGapFactor(%v, %v) = %v, want %v", c.name, c.mentee, c.mentor, got, c.want)
		}
	}
}

func TestLocationFactor(t *testing.T) {
	cases := []struct {
		name    string
		subLoc  string
		subMode profile.WorkMode
		tgtLoc  string
		tgtMode profile.WorkMode
		want    float64
	}{
		{"remote job remote sub", "sydney", profile.WorkModeRemote, "melbourne", profile.WorkModeRemote, 1.0},
		{"remote job flexible sub", "sydney", profile.WorkModeFlexible, "melbourne", profile.WorkModeRemote, 1.0},
		{"remote job hybrid sub", "sydney", profile.WorkModeHybrid, "melbourne", profile.WorkModeRemote, 0.85},
		{"remote job onsite sub", "sydney", profile.WorkModeOnsite, "melbourne", profile.WorkModeRemote, 0.7},
		{"hybrid colocated flexible", "sydney", profile.WorkModeFlexible, "sydney", profile.WorkModeHybrid, 1.0},
		{"hybrid colocated remote sub", "sydney", profile.WorkModeRemote, "sydney", profile.WorkModeHybrid, 0.6},
		{"hybrid elsewhere", "sydney", profile.WorkModeHybrid, "melbourne", profile.WorkModeHybrid, 0.5},
		{"onsite colocated", "sydney", profile.WorkModeOnsite, "sydney", profile.WorkModeOnsite, 1.0},
		{"onsite elsewhere remote sub", "sydney", profile.WorkModeRemote, "melbourne", profile.WorkModeOnsite, 0.2},
		{"onsite elsewhere flexible sub", "sydney", profile.WorkModeFlexible, "melbourne", profile.WorkModeOnsite, 0.4},
		{"unknown mode colocated", "sydney", profile.WorkModeOnsite, "sydney", "", 0.8},
		{"unknown mode elsewhere", "sydney", profile.WorkModeOnsite, "melbourne", "", 0.5},
	}
	for _, c := range cases {
		sub := profile.Subject{Location: c.subLoc, WorkMode: c.subMode}
		tgt := profile.Target{Location: c.tgtLoc, WorkMode: c.tgtMode}
		if got := LocationFactor(sub, tgt); got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestLocationsMatch_CityToken(t *testing.T) {
	sub := profile.Subject{Location: "sydney, nsw, australia", WorkMode: profile.WorkModeOnsite}
	tgt := profile.Target{Location: "cbd office, sydney", WorkMode: profile.WorkModeOnsite}
	if got := LocationFactor(sub, tgt); got != 1.0 {
		t.Fatalf("expected shared city token to count as colocated, got %v", got)
	}
}

func TestIndustryFactor(t *testing.T) {
	if got := IndustryFactor(nil, "tech"); got != 0.5 {
		t.Fatalf("expected neutral for empty industries, got %v", got)
	}
	if got := IndustryFactor([]string{"health"}, ""); got != 0.5 {
		t.Fatalf("expected neutral for empty target industry, got %v", got)
	}
	if got := IndustryFactor([]string{"health", "tech"}, "Tech"); got != 1.0 {
		t.Fatalf("expected case-insensitive match, got %v", got)
	}
	if got := IndustryFactor([]string{"health"}, "tech"); got != 0 {
		t.Fatalf("expected 0 for mismatch, got %v", got)
	}
}

func TestCulturalFitFactor(t *testing.T) {
	neutral := CulturalFitFactor(profile.Subject{}, profile.Target{})
	if neutral != 0.5 {
		t.Fatalf("expected 0.5 baseline, got %v", neutral)
	}

	indigenous := CulturalFitFactor(
		profile.Subject{IndigenousIdentifying: true},
		profile.Target{IndigenousAffiliated: true},
	)
	if indigenous != 0.8 {
		t.Fatalf("expected 0.8 for indigenous pair, got %v", indigenous)
	}

	partial := CulturalFitFactor(
		profile.Subject{CulturalInterests: []string{"language", "art"}},
		profile.Target{CulturalTags: []string{"language"}},
	)
	if partial != 0.6 {
		t.Fatalf("expected 0.6 for half interest overlap, got %v", partial)
	}

	saturated := CulturalFitFactor(
		profile.Subject{IndigenousIdentifying: true, SeekingElderMentor: true, CulturalInterests: []string{"language"}},
		profile.Target{IndigenousAffiliated: true, IsElder: true, CulturalTags: []string{"language"}},
	)
	if saturated != 1.0 {
		t.Fatalf("expected saturation cap at 1.0, got %v", saturated)
	}
}

func TestReputationFactor(t *testing.T) {
	if got := ReputationFactor(4.5, 0); got != 0.5 {
		t.Fatalf("expected neutral for unrated, got %v", got)
	}
	if got := ReputationFactor(4.0, 10); got != 0.8 {
		t.Fatalf("expected 0.8, got %v", got)
	}
	if got := ReputationFactor(9.0, 10); got != 1.0 {
		t.Fatalf("expected clamp at 1.0, got %v", got)
	}
	if got := ReputationFactor(-1.0, 10); got != 0 {
		t.Fatalf("expected clamp at 0, got %v", got)
	}
}

func TestAvailabilityFactor(t *testing.T) {
	slot := profile.AvailabilitySlot{Day: 1, StartMin: 10 * 60, EndMin: 13 * 60}

	missing := AvailabilityFactor(profile.Subject{}, profile.Target{Availability: []profile.AvailabilitySlot{slot}})
	if missing != 0.5 {
		t.Fatalf("expected neutral for subject without slots, got %v", missing)
	}

	full := AvailabilityFactor(
		profile.Subject{Availability: []profile.AvailabilitySlot{slot}},
		profile.Target{Availability: []profile.AvailabilitySlot{slot}},
	)
	if full != 1.0 {
		t.Fatalf("expected 1.0 for 3h overlap, got %v", full)
	}

	half := AvailabilityFactor(
		profile.Subject{Availability: []profile.AvailabilitySlot{slot}},
		profile.Target{Availability: []profile.AvailabilitySlot{{Day: 1, StartMin: 11*60 + 30, EndMin: 14 * 60}}},
	)
	if half != 0.5 {
		t.Fatalf("expected 0.5 for 90min overlap, got %v", half)
	}

	none := AvailabilityFactor(
		profile.Subject{Availability: []profile.AvailabilitySlot{slot}},
		profile.Target{Availability: []profile.AvailabilitySlot{{Day: 2, StartMin: 10 * 60, EndMin: 13 * 60}}},
	)
	if none != 0 {
		t.Fatalf("expected 0 for disjoint days, got %v", none)
	}
}

func TestShiftSlots_MidnightSplit(t *testing.T) {
	in := []profile.AvailabilitySlot{{Day: 1, StartMin: 23 * 60, EndMin: 24 * 60}}

	out := shiftSlots(in, 30)
	if len(out) != 2 {
		t.Fatalf("expected midnight split into 2 segments, got %v", out)
	}
	if out[0].Day != 1 || out[0].StartMin != 23*60+30 || out[0].EndMin != 24*60 {
		t.Fatalf("unexpected first segment: %+v", out[0])
	}
	if out[1].Day != 2 || out[1].StartMin != 0 || out[1].EndMin != 30 {
		t.Fatalf("unexpected second segment: %+v", out[1])
	}
}

func TestShiftSlots_NegativeDeltaWrapsWeek(t *testing.T) {
	in := []profile.AvailabilitySlot{{Day: 0, StartMin: 0, EndMin: 60}}

	out := shiftSlots(in, -90)
	if len(out) != 1 {
		t.Fatalf("expected 1 segment, got %v", out)
	}
	if out[0].Day != 6 || out[0].StartMin != 22*60+30 || out[0].EndMin != 23*60+30 {
		t.Fatalf("unexpected wrapped segment: %+v", out[0])
	}
}

func TestZoneOffsetMinutes_UnknownZone(t *testing.T) {
	if got := zoneOffsetMinutes(""); got != 0 {
		t.Fatalf("expected 0 for empty zone, got %v", got)
	}
	if got := zoneOffsetMinutes("Not/AZone"); got != 0 {
		t.Fatalf("expected 0 for unknown zone, got %v", got)
	}
}

func TestRecencyFactor(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{"fresh", 3 * 24 * time.Hour, 1.0},
		{"week old", 10 * 24 * time.Hour, 0.7},
		{"month old", 20 * 24 * time.Hour, 0.4},
		{"stale", 45 * 24 * time.Hour, 0},
	}
	for _, c := range cases {
		if got := RecencyFactor(now.Add(-c.age), now); got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}

	if got := RecencyFactor(time.Time{}, now); got != 0.5 {
		t.Fatalf("expected neutral for missing posted date, got %v", got)
	}
}

func TestCapacityFactor(t *testing.T) {
	if got := CapacityFactor(1, 0); got != 0.5 {
		t.Fatalf("expected neutral for unknown capacity, got %v", got)
	}
	if got := CapacityFactor(1, 4); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
	if got := CapacityFactor(5, 4); got != 0 {
		t.Fatalf("expected floor at 0, got %v", got)
	}
}
