package depeval

import "log/slog"

// Option configures a Scorer.
type Option func(*config)

type config struct {
	keep      func(Token) bool
	goldField string
	predField string
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithTokenFilter sets a predicate selecting which tokens take part in
// scoring, applied to gold and predicted sentences alike before
// alignment. The default keeps every token. A common use is excluding
// punctuation from attachment scores.
func WithTokenFilter(keep func(Token) bool) Option {
	return func(c *config) {
		c.keep = keep
	}
}

// WithFieldScoring enables topological field scoring: for every scored
// token, the gold-side feature named goldField is compared against the
// predicted-side feature named predField in a separate confusion
// matrix. Disabled by default.
func WithFieldScoring(goldField, predField string) Option {
	return func(c *config) {
		if goldField != "" && predField != "" {
			c.goldField = goldField
			c.predField = predField
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
