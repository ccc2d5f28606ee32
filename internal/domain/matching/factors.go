package matching

import (
	"strings"
	"time"

	"talent-match/internal/domain/profile"
)

// Every factor scorer is a total function returning a value in [0,1]. Missing
// input degrades to the neutral 0.5 so incomplete profiles dilute a score
// instead of killing it.
const neutralScore = 0.5

// ExperienceGapFactor scores a candidate's years against a job's [min,max]
// band. Over-qualification decays more gently than under-qualification.
func ExperienceGapFactor(subjectYears, minYears, maxYears float64) float64 {
	if maxYears <= 0 {
		return neutralScore
	}
	switch {
	case subjectYears >= minYears && subjectYears <= maxYears:
		return 1.0
	case subjectYears > maxYears:
		if subjectYears <= maxYears+3 {
			return 0.8
		}
		return 0.5
	case subjectYears >= minYears-1:
		return 0.7
	case subjectYears >= minYears-2:
		return 0.5
	default:
		return 0.3
	}
}

// MentorshipGapFactor scores the seniority distance between mentor and mentee.
// The sweet spot is a mentor 5-15 years ahead; close peers and very distant
// seniors both taper off.
func MentorshipGapFactor(menteeYears, mentorYears float64) float64 {
	if mentorYears <= 0 {
		return neutralScore
	}
	gap := mentorYears - menteeYears
	switch {
	case gap >= 5 && gap <= 15:
		return 1.0
	case gap > 15 && gap <= 20:
		return 0.8
	case gap > 20:
		return 0.6
	case gap >= 2:
		return 0.7
	case gap >= 0:
		return 0.4
	default:
		return 0.2
	}
}

func LocationFactor(sub profile.Subject, tgt profile.Target) float64 {
	located := locationsMatch(sub.Location, tgt.Location)

	switch tgt.WorkMode {
	case profile.WorkModeRemote:
		switch sub.WorkMode {
		case profile.WorkModeRemote, profile.WorkModeFlexible:
			return 1.0
		case profile.WorkModeHybrid:
			return 0.85
		default:
			return 0.7
		}
	case profile.WorkModeHybrid:
		if located && (sub.WorkMode == profile.WorkModeHybrid || sub.WorkMode == profile.WorkModeFlexible) {
			return 1.0
		}
		if located {
			return 0.6
		}
		return 0.5
	case profile.WorkModeOnsite:
		if located {
			return 1.0
		}
		switch sub.WorkMode {
		case profile.WorkModeFlexible:
			return 0.4
		case profile.WorkModeRemote:
			return 0.2
		default:
			return 0.3
		}
	default:
		if located {
			return 0.8
		}
		return neutralScore
	}
}

func locationsMatch(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	// Fallback: shared city/state token after splitting "City, State, Country".
	for _, ta := range strings.Split(a, ",") {
		ta = strings.TrimSpace(ta)
		if ta == "" {
			continue
		}
		for _, tb := range strings.Split(b, ",") {
			if ta == strings.TrimSpace(tb) {
				return true
			}
		}
	}
	return false
}

func IndustryFactor(subjectIndustries []string, targetIndustry string) float64 {
	if len(subjectIndustries) == 0 || strings.TrimSpace(targetIndustry) == "" {
		return neutralScore
	}
	for _, ind := range subjectIndustries {
		if strings.EqualFold(strings.TrimSpace(ind), strings.TrimSpace(targetIndustry)) {
			return 1.0
		}
	}
	return 0
}

// CulturalFitFactor starts from the neutral baseline and adds credit for each
// matching affiliation flag plus proportional overlap between the subject's
// stated cultural interests and the target's cultural tags, capped at 1.0.
func CulturalFitFactor(sub profile.Subject, tgt profile.Target) float64 {
	score := neutralScore

	if sub.IndigenousIdentifying && tgt.IndigenousAffiliated {
		score += 0.3
	}
	if sub.SeekingElderMentor && tgt.IsElder {
		score += 0.3
	}

	if len(sub.CulturalInterests) > 0 && len(tgt.CulturalTags) > 0 {
		overlap := 0
		for _, interest := range sub.CulturalInterests {
			for _, tag := range tgt.CulturalTags {
				if strings.EqualFold(interest, tag) {
					overlap++
					break
				}
			}
		}
		score += 0.2 * float64(overlap) / float64(len(sub.CulturalInterests))
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

func ReputationFactor(rating float64, ratingCount int) float64 {
	if ratingCount <= 0 {
		return neutralScore
	}
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return rating / 5
}

// Availability scoring considers slots on the same day of week after shifting
// the target's slots into the subject's local time. Three or more hours of
// weekly overlap is a full score.
const fullOverlapMinutes = 180

func AvailabilityFactor(sub profile.Subject, tgt profile.Target) float64 {
	if len(sub.Availability) == 0 || len(tgt.Availability) == 0 {
		return neutralScore
	}

	delta := zoneOffsetMinutes(sub.Timezone) - zoneOffsetMinutes(tgt.Timezone)
	shifted := shiftSlots(tgt.Availability, delta)

	total := 0
	for _, ss := range sub.Availability {
		for _, ts := range shifted {
			if ss.Day != ts.Day {
				continue
			}
			lo := ss.StartMin
			if ts.StartMin > lo {
				lo = ts.StartMin
			}
			hi := ss.EndMin
			if ts.EndMin < hi {
				hi = ts.EndMin
			}
			if hi > lo {
				total += hi - lo
			}
		}
	}

	if total >= fullOverlapMinutes {
		return 1.0
	}
	return float64(total) / fullOverlapMinutes
}

// shiftSlots moves each slot by delta minutes, splitting slots that cross a
// local midnight into two day-bound segments.
func shiftSlots(slots []profile.AvailabilitySlot, delta int) []profile.AvailabilitySlot {
	if delta == 0 {
		return slots
	}

	const dayMinutes = 24 * 60
	out := make([]profile.AvailabilitySlot, 0, len(slots))
	for _, s := range slots {
		start := s.StartMin + delta
		end := s.EndMin + delta
		day := s.Day

		for start < 0 {
			start += dayMinutes
			end += dayMinutes
			day = (day + 6) % 7
		}
		for start >= dayMinutes {
			start -= dayMinutes
			end -= dayMinutes
			day = (day + 1) % 7
		}

		if end <= dayMinutes {
			out = append(out, profile.AvailabilitySlot{Day: day, StartMin: start, EndMin: end})
			continue
		}
		out = append(out, profile.AvailabilitySlot{Day: day, StartMin: start, EndMin: dayMinutes})
		out = append(out, profile.AvailabilitySlot{Day: (day + 1) % 7, StartMin: 0, EndMin: end - dayMinutes})
	}
	return out
}

// A fixed reference instant keeps the offset stable across repeated calls,
// at the cost of ignoring DST transitions around the call time.
var zoneReference = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func zoneOffsetMinutes(name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return 0
	}
	_, offset := zoneReference.In(loc).Zone()
	return offset / 60
}

func RecencyFactor(postedAt, now time.Time) float64 {
	if postedAt.IsZero() {
		return neutralScore
	}
	age := now.Sub(postedAt)
	switch {
	case age <= 7*24*time.Hour:
		return 1.0
	case age <= 14*24*time.Hour:
		return 0.7
	case age <= 30*24*time.Hour:
		return 0.4
	default:
		return 0
	}
}

// CapacityFactor is an internal ranking nudge for mentors and never enters the
// published 0-100 total.
func CapacityFactor(currentLoad, maxCapacity int) float64 {
	if maxCapacity <= 0 {
		return neutralScore
	}
	if currentLoad < 0 {
		currentLoad = 0
	}
	v := 1 - float64(currentLoad)/float64(maxCapacity)
	if v < 0 {
		return 0
	}
	return v
}
