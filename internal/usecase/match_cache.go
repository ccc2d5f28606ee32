package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

// MatchCache is the optional write-through result cache. Misses and cache
// errors are both treated as "recompute"; the engine never fails a request on
// cache trouble.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type matchCacheKeyInput struct {
	Domain     string   `json:"domain"`
	SubjectID  string   `json:"subject_id"`
	Limit      int      `json:"limit"`
	MinScore   float64  `json:"min_score"`
	ExcludeIDs []string `json:"exclude_ids"`
	Prioritize bool     `json:"prioritize"`
}

// MatchCacheKey derives a stable cache key from the match domain, subject and
// normalized options. Exclusion ids are sorted so semantically identical
// requests share a key.
func MatchCacheKey(domain matching.Domain, subjectID uuid.UUID, params MatchParams) string {
	excl := make([]string, 0, len(params.ExcludeIDs))
	for _, id := range params.ExcludeIDs {
		if id == uuid.Nil {
			continue
		}
		excl = append(excl, id.String())
	}
	sort.Strings(excl)

	in := matchCacheKeyInput{
		Domain:     string(domain),
		SubjectID:  subjectID.String(),
		Limit:      params.Limit,
		MinScore:   params.MinScore,
		ExcludeIDs: excl,
		Prioritize: params.Prioritize,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "matches:" + string(domain) + ":" + hex.EncodeToString(sum[:])
}
