package leaderboard

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/aristath/capboard/internal/clients/yahoo"
	"github.com/aristath/capboard/internal/events"
)

// ConstituentLister fetches the roster of ticker symbols to rank
type ConstituentLister interface {
	GetConstituents(ctx context.Context) ([]string, error)
}

// QuoteClient fetches per-symbol quote data
type QuoteClient interface {
	GetQuoteSummary(ctx context.Context, symbol string) (*yahoo.QuoteSummary, error)
}

// Service runs the fetch/rank pipeline behind the result cache
type Service struct {
	lister   ConstituentLister
	quotes   QuoteClient
	cache    *ResultCache
	limiter  *rate.Limiter
	events   *events.Manager
	progress ProgressFunc
	log      zerolog.Logger
}

// NewService creates the leaderboard service. quoteRateLimit is the courtesy
// cap on quote requests per second. progress may be nil.
func NewService(
	lister ConstituentLister,
	quotes QuoteClient,
	cache *ResultCache,
	ev *events.Manager,
	quoteRateLimit float64,
	progress ProgressFunc,
	log zerolog.Logger,
) *Service {
	return &Service{
		lister:   lister,
		quotes:   quotes,
		cache:    cache,
		limiter:  rate.NewLimiter(rate.Limit(quoteRateLimit), 1),
		events:   ev,
		progress: progress,
		log:      log.With().Str("service", "leaderboard").Logger(),
	}
}

// Boards returns the current boards, running the full pipeline on a cache
// miss. Failures propagate to the caller and are never cached.
func (s *Service) Boards(ctx context.Context) (*Boards, error) {
	return s.cache.GetOrCompute(ctx, s.compute)
}

// Top10 returns the market-cap board
func (s *Service) Top10(ctx context.Context) ([]RankedRow, error) {
	boards, err := s.Boards(ctx)
	if err != nil {
		return nil, err
	}
	return boards.TopByMarketCap, nil
}

// Refresh invalidates the cache and recomputes immediately
func (s *Service) Refresh(ctx context.Context) (*Boards, error) {
	s.events.Emit(events.CacheInvalidate, "leaderboard", nil)
	s.cache.Invalidate()
	return s.Boards(ctx)
}

// compute runs one full pipeline cycle: list constituents, fetch metrics,
// rank.
func (s *Service) compute(ctx context.Context) (*Boards, error) {
	s.events.Emit(events.RefreshStart, "leaderboard", nil)

	records, err := s.fetchRecords(ctx)
	if err != nil {
		s.events.EmitError("leaderboard", err, nil)
		return nil, err
	}

	capBoard := RankByMarketCap(records, TopN)
	boards := &Boards{
		TopByMarketCap: capBoard,
		TopByGrowth:    RankByRevenueGrowth(records, TopN),
		Stats:          BuildStats(records, capBoard),
		GeneratedAt:    s.cache.clock.Now(),
	}

	s.events.Emit(events.RefreshComplete, "leaderboard", map[string]interface{}{
		"records": len(records),
	})

	return boards, nil
}

// fetchRecords queries the quote service for every constituent. Symbols that
// error, or that come back without a positive market cap, are dropped
// without aborting the loop.
func (s *Service) fetchRecords(ctx context.Context) ([]MetricRecord, error) {
	symbols, err := s.lister.GetConstituents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	var records []MetricRecord
	dropped := 0

	for i, symbol := range symbols {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("fetch cancelled: %w", err)
		}

		if record, ok := s.fetchOne(ctx, symbol); ok {
			records = append(records, record)
		} else {
			dropped++
		}

		s.reportProgress(i+1, len(symbols), symbol)
	}

	s.log.Info().
		Int("total", len(symbols)).
		Int("usable", len(records)).
		Int("dropped", dropped).
		Msg("Fetch pass complete")

	if len(records) == 0 {
		return nil, ErrNoData
	}

	return records, nil
}

// fetchOne queries a single symbol. Returns false when the symbol should be
// dropped: fetch error, missing cap, or non-positive cap.
func (s *Service) fetchOne(ctx context.Context, symbol string) (MetricRecord, bool) {
	quote, err := s.quotes.GetQuoteSummary(ctx, symbol)
	if err != nil {
		s.log.Debug().Err(err).Str("symbol", symbol).Msg("Dropping symbol, fetch failed")
		return MetricRecord{}, false
	}

	if quote.MarketCap == nil || *quote.MarketCap <= 0 {
		s.log.Debug().Str("symbol", symbol).Msg("Dropping symbol, no positive market cap")
		return MetricRecord{}, false
	}

	name := "N/A"
	if quote.ShortName != nil {
		name = *quote.ShortName
	}

	return MetricRecord{
		Symbol:        symbol,
		Name:          name,
		MarketCap:     *quote.MarketCap,
		RevenueGrowth: quote.RevenueGrowth,
	}, true
}

func (s *Service) reportProgress(completed, total int, symbol string) {
	if s.progress != nil {
		s.progress(completed, total, symbol)
	}

	// Event cadence kept coarse so the log stays readable on 500-symbol runs
	if completed == total || completed%100 == 0 {
		s.events.Emit(events.RefreshProgress, "leaderboard", map[string]interface{}{
			"completed": completed,
			"total":     total,
			"symbol":    symbol,
		})
	}
}
