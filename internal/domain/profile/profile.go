package profile

import (
	"time"

	"github.com/google/uuid"
)

type WorkMode string

const (
	WorkModeRemote   WorkMode = "remote"
	WorkModeHybrid   WorkMode = "hybrid"
	WorkModeOnsite   WorkMode = "onsite"
	WorkModeFlexible WorkMode = "flexible"
)

// AvailabilitySlot is a weekly recurring slot in the profile's local time.
// Day is 0 (Sunday) through 6; minutes are counted from local midnight.
type AvailabilitySlot struct {
	Day      int
	StartMin int
	EndMin   int
}

type WorkInterval struct {
	Start time.Time
	End   *time.Time
}

type CompensationRange struct {
	Min float64
	Max float64
}

// Subject is the canonical read-only snapshot of a candidate or mentee.
type Subject struct {
	ID              uuid.UUID
	Skills          []string
	ExperienceYears float64
	Location        string
	WorkMode        WorkMode
	Compensation    *CompensationRange
	Industries      []string

	IndigenousIdentifying bool
	SeekingElderMentor    bool
	CulturalInterests     []string

	Goals        []string
	Availability []AvailabilitySlot
	Timezone     string
	Languages    []string
}

// Target is the canonical read-only snapshot of a job opening or mentor.
type Target struct {
	ID              uuid.UUID
	RequiredSkills  []string
	PreferredSkills []string
	MinYears        float64
	MaxYears        float64
	ExperienceYears float64
	Location        string
	WorkMode        WorkMode
	Compensation    *CompensationRange
	Industry        string

	IndigenousAffiliated bool
	IsElder              bool
	VerifiedOrg          bool
	CulturalTags         []string

	Rating      float64
	RatingCount int

	CurrentLoad int
	MaxCapacity int
	Active      bool

	PostedAt     time.Time
	Availability []AvailabilitySlot
	Timezone     string
	Languages    []string
}

type RawAvailability struct {
	Day   int
	Start string
	End   string
}

// RawSubject mirrors the upstream storage row. Optional columns are pointers so
// that absence is distinguishable from a zero value.
type RawSubject struct {
	ID                    uuid.UUID
	Skills                []string
	WorkHistory           []WorkInterval
	Location              *string
	WorkMode              *string
	SalaryMin             *float64
	SalaryMax             *float64
	Industries            []string
	IndigenousIdentifying *bool
	SeekingElderMentor    *bool
	CulturalInterests     []string
	Goals                 []string
	Availability          []RawAvailability
	Timezone              *string
	Languages             []string
}

type RawTarget struct {
	ID                   uuid.UUID
	RequiredSkills       []string
	PreferredSkills      []string
	MinYears             *float64
	MaxYears             *float64
	ExperienceYears      *float64
	Location             *string
	WorkMode             *string
	CompensationMin      *float64
	CompensationMax      *float64
	Industry             *string
	IndigenousAffiliated *bool
	IsElder              *bool
	VerifiedOrg          *bool
	CulturalTags         []string
	Rating               *float64
	RatingCount          *int
	CurrentLoad          *int
	MaxCapacity          *int
	Active               *bool
	PostedAt             *time.Time
	Availability         []RawAvailability
	Timezone             *string
	Languages            []string
}
