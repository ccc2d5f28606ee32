package profile

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const daysPerMonth = 30.44

// NormalizeSubject builds a canonical subject snapshot. It never fails: absent
// optional fields map to neutral defaults so factor scorers can degrade instead
// of erroring.
func NormalizeSubject(raw RawSubject) Subject {
	s := Subject{
		ID:                raw.ID,
		Skills:            NormalizeSkills(raw.Skills),
		ExperienceYears:   ExperienceYears(raw.WorkHistory, time.Now().UTC()),
		Location:          normalizeText(strValue(raw.Location)),
		WorkMode:          normalizeSubjectMode(strValue(raw.WorkMode)),
		Industries:        normalizeTextSet(raw.Industries),
		CulturalInterests: normalizeTextSet(raw.CulturalInterests),
		Goals:             normalizeTextSet(raw.Goals),
		Availability:      normalizeAvailability(raw.Availability),
		Timezone:          strings.TrimSpace(strValue(raw.Timezone)),
		Languages:         normalizeTextSet(raw.Languages),
	}

	if raw.IndigenousIdentifying != nil {
		s.IndigenousIdentifying = *raw.IndigenousIdentifying
	}
	if raw.SeekingElderMentor != nil {
		s.SeekingElderMentor = *raw.SeekingElderMentor
	}
	if raw.SalaryMin != nil || raw.SalaryMax != nil {
		s.Compensation = &CompensationRange{Min: floatValue(raw.SalaryMin), Max: floatValue(raw.SalaryMax)}
	}

	return s
}

// NormalizeTarget builds a canonical target snapshot. A target with no explicit
// active flag is treated as active; a work mode outside the known set is kept
// empty so the location scorer falls back to its neutral value.
func NormalizeTarget(raw RawTarget) Target {
	t := Target{
		ID:              raw.ID,
		RequiredSkills:  NormalizeSkills(raw.RequiredSkills),
		PreferredSkills: NormalizeSkills(raw.PreferredSkills),
		MinYears:        floatValue(raw.MinYears),
		MaxYears:        floatValue(raw.MaxYears),
		ExperienceYears: floatValue(raw.ExperienceYears),
		Location:        normalizeText(strValue(raw.Location)),
		WorkMode:        normalizeTargetMode(strValue(raw.WorkMode)),
		Industry:        normalizeText(strValue(raw.Industry)),
		CulturalTags:    normalizeTextSet(raw.CulturalTags),
		Rating:          floatValue(raw.Rating),
		RatingCount:     intValue(raw.RatingCount),
		CurrentLoad:     intValue(raw.CurrentLoad),
		MaxCapacity:     intValue(raw.MaxCapacity),
		Active:          true,
		Availability:    normalizeAvailability(raw.Availability),
		Timezone:        strings.TrimSpace(strValue(raw.Timezone)),
		Languages:       normalizeTextSet(raw.Languages),
	}

	if raw.MinYears != nil && t.MinYears < 0 {
		t.MinYears = 0
	}
	if t.MaxYears < t.MinYears {
		t.MaxYears = t.MinYears
	}
	if raw.IndigenousAffiliated != nil {
		t.IndigenousAffiliated = *raw.IndigenousAffiliated
	}
	if raw.IsElder != nil {
		t.IsElder = *raw.IsElder
	}
	if raw.VerifiedOrg != nil {
		t.VerifiedOrg = *raw.VerifiedOrg
	}
	if raw.Active != nil {
		t.Active = *raw.Active
	}
	if raw.PostedAt != nil {
		t.PostedAt = *raw.PostedAt
	}
	if raw.CompensationMin != nil || raw.CompensationMax != nil {
		t.Compensation = &CompensationRange{Min: floatValue(raw.CompensationMin), Max: floatValue(raw.CompensationMax)}
	}

	return t
}

// ExperienceYears sums the months of each work interval (end or now), clamped
// to zero per interval, and converts to years rounded to one decimal.
// Overlapping intervals are summed without deduplication, so concurrent roles
// count twice; this mirrors how upstream has always reported experience and
// changing it would silently reshuffle existing rankings.
func ExperienceYears(history []WorkInterval, now time.Time) float64 {
	if len(history) == 0 {
		return 0
	}

	months := 0.0
	for _, iv := range history {
		if iv.Start.IsZero() {
			continue
		}
		end := now
		if iv.End != nil && !iv.End.IsZero() {
			end = *iv.End
		}
		d := end.Sub(iv.Start)
		if d <= 0 {
			continue
		}
		months += d.Hours() / 24 / daysPerMonth
	}

	return math.Round(months/12*10) / 10
}

// Tier boundaries differ between the two match domains on purpose: job listings
// use the six market-level buckets, mentorship uses a coarser four-bucket
// scheme. Keep them as separate tables.

func JobExperienceTier(years float64) string {
	switch {
	case years < 1:
		return "entry"
	case years < 3:
		return "junior"
	case years < 5:
		return "mid"
	case years < 8:
		return "senior"
	case years < 12:
		return "lead"
	default:
		return "executive"
	}
}

func MentorshipExperienceTier(years float64) string {
	switch {
	case years < 3:
		return "entry"
	case years < 7:
		return "mid"
	case years < 12:
		return "senior"
	default:
		return "expert"
	}
}

// NormalizeSkills lower-cases, trims and deduplicates skill tokens, preserving
// first-seen order.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = normalizeText(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func normalizeAvailability(raw []RawAvailability) []AvailabilitySlot {
	out := make([]AvailabilitySlot, 0, len(raw))
	for _, r := range raw {
		if r.Day < 0 || r.Day > 6 {
			continue
		}
		start, ok := parseClock(r.Start)
		if !ok {
			continue
		}
		end, ok := parseClock(r.End)
		if !ok || end <= start {
			continue
		}
		out = append(out, AvailabilitySlot{Day: r.Day, StartMin: start, EndMin: end})
	}
	return out
}

func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	v := h*60 + m
	if v > 24*60 {
		return 0, false
	}
	return v, true
}

func normalizeSubjectMode(mode string) WorkMode {
	switch WorkMode(normalizeText(mode)) {
	case WorkModeRemote:
		return WorkModeRemote
	case WorkModeHybrid:
		return WorkModeHybrid
	case WorkModeOnsite:
		return WorkModeOnsite
	default:
		return WorkModeFlexible
	}
}

func normalizeTargetMode(mode string) WorkMode {
	switch WorkMode(normalizeText(mode)) {
	case WorkModeRemote:
		return WorkModeRemote
	case WorkModeHybrid:
		return WorkModeHybrid
	case WorkModeOnsite:
		return WorkModeOnsite
	default:
		return ""
	}
}

func normalizeTextSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = normalizeText(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func floatValue(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
