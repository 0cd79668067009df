package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/capboard/internal/modules/leaderboard"
)

// WarmJob refreshes the leaderboard on a schedule so interactive reads hit
// warm data. A failed run leaves the cache empty and is retried on the next
// tick; it never stops the scheduler.
type WarmJob struct {
	service *leaderboard.Service
	timeout time.Duration
	log     zerolog.Logger
}

// NewWarmJob creates the cache-warm job. The timeout bounds one full fetch
// pass across all constituents.
func NewWarmJob(service *leaderboard.Service, timeout time.Duration, log zerolog.Logger) *WarmJob {
	return &WarmJob{
		service: service,
		timeout: timeout,
		log:     log.With().Str("job", "leaderboard_warm").Logger(),
	}
}

// Name implements Job
func (j *WarmJob) Name() string { return "leaderboard_warm" }

// Run implements Job
func (j *WarmJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	boards, err := j.service.Refresh(ctx)
	if err != nil {
		return err
	}

	j.log.Info().
		Int("records", boards.Stats.SymbolCount).
		Time("generated_at", boards.GeneratedAt).
		Msg("Leaderboard warmed")

	return nil
}
