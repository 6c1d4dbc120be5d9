package pipeline

import (
	"log/slog"
	"time"
)

// RunStats accumulates the outcome counters of a single pipeline run.
// A fresh value is created per run; counters are only touched by the
// run's own goroutine.
type RunStats struct {
	StartedAt time.Time
	Duration  time.Duration

	CountriesProcessed int
	TopicsAttempted    int

	ArticlesSucceeded int
	ArticlesFailed    int

	SearchesSucceeded int
	SearchesFailed    int

	RealTrends int
	MockTrends int
}

func newRunStats() *RunStats {
	return &RunStats{StartedAt: time.Now()}
}

func (s *RunStats) finish() {
	s.Duration = time.Since(s.StartedAt)
}

// LogSummary emits the run's counters in one structured record.
func (s *RunStats) LogSummary() {
	slog.Info("pipeline run complete",
		"duration", s.Duration.Round(time.Second).String(),
		"countries", s.CountriesProcessed,
		"topics", s.TopicsAttempted,
		"articlesSucceeded", s.ArticlesSucceeded,
		"articlesFailed", s.ArticlesFailed,
		"searchesSucceeded", s.SearchesSucceeded,
		"searchesFailed", s.SearchesFailed,
		"realTrends", s.RealTrends,
		"mockTrends", s.MockTrends,
	)
}
