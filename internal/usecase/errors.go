package usecase

import "errors"

var (
	ErrUnauthorized = errors.New("Unauthorized")
	ErrInternal     = errors.New("Internal error")

	ErrSubjectNotFound = errors.New("Subject not found")

	// ErrPoolFetchFailed marks an upstream pool fetch error. It is always
	// surfaced to the caller: a partial or empty pool substituted for a failed
	// fetch would bias rankings unpredictably.
	ErrPoolFetchFailed = errors.New("Pool fetch failed")
)
