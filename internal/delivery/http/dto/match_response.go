package dto

import "talent-match/internal/domain/matching"

type MatchListResponse struct {
	Matches []matching.MatchResult `json:"matches"`
	Count   int                    `json:"count"`
}

func NewMatchListResponse(results []matching.MatchResult) MatchListResponse {
	if results == nil {
		results = []matching.MatchResult{}
	}
	return MatchListResponse{Matches: results, Count: len(results)}
}
