package depeval

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrAlignment indicates the gold and predicted streams disagree in
	// sentence count, filtered sentence length, or token surface forms.
	ErrAlignment = errors.New("depeval: streams are not aligned")

	// ErrMissingHead indicates a scored token carries no head relation.
	ErrMissingHead = errors.New("depeval: token has no head relation")

	// ErrMissingFeature indicates field scoring is enabled but a token
	// lacks the configured field feature.
	ErrMissingFeature = errors.New("depeval: token has no field feature")
)
