package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"poloniex-api/pkg/domain"
	"poloniex-api/pkg/domain/exchange"
	"poloniex-api/pkg/domain/model"

	"golang.org/x/sync/errgroup"
)

// FetchParams 取得条件
type FetchParams struct {
	Pair  string
	Depth string
	// ローソク足の期間（秒）
	Period string
	// 現在から遡って取得するローソク足の範囲
	ChartSpan time.Duration
}

// MarketSnapshot ある時点の市況
type MarketSnapshot struct {
	Pair      string
	Summary   model.SummaryInfo
	OrderBook *model.OrderBook
	Candles   []model.Candle
	FetchedAt time.Time
}

// Fetcher 市況取得
type Fetcher struct {
	exCli  exchange.Client
	logger domain.Logger
	now    func() time.Time
}

// FetcherOption 生成時のオプション
type FetcherOption func(*Fetcher)

// WithClock 現在時刻の取得方法を差し替える
func WithClock(now func() time.Time) FetcherOption {
	return func(f *Fetcher) {
		f.now = now
	}
}

// NewFetcher 生成
func NewFetcher(exCli exchange.Client, logger domain.Logger, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		exCli:  exCli,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch ティッカー・板・ローソク足を並行して取得
func (f *Fetcher) Fetch(ctx context.Context, p *FetchParams) (*MarketSnapshot, error) {
	now := f.now()
	start := strconv.FormatInt(now.Add(-p.ChartSpan).Unix(), 10)
	end := strconv.FormatInt(now.Unix(), 10)

	var (
		tickers []model.CurrencyPairSummary
		book    *model.OrderBook
		candles []model.Candle
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		tickers, err = f.exCli.ReturnTicker(ctx)
		return
	})
	eg.Go(func() (err error) {
		book, err = f.exCli.ReturnOrderBook(ctx, p.Pair, p.Depth)
		return
	})
	eg.Go(func() (err error) {
		candles, err = f.exCli.ReturnChartData(ctx, p.Pair, p.Period, start, end)
		return
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch market of %s; error: %w", p.Pair, err)
	}

	for _, t := range tickers {
		if t.CurrencyPair == p.Pair {
			return &MarketSnapshot{
				Pair:      p.Pair,
				Summary:   t.SummaryInfo,
				OrderBook: book,
				Candles:   candles,
				FetchedAt: now,
			}, nil
		}
	}
	return nil, fmt.Errorf("currency pair is not in ticker, pair: %s", p.Pair)
}

// Log 市況をログ出力
func (f *Fetcher) Log(s *MarketSnapshot) {
	f.logger.Info("%s last: %s, ask: %s, bid: %s, change: %s%%",
		s.Pair,
		s.Summary.Last,
		s.Summary.LowestAsk,
		s.Summary.HighestBid,
		s.Summary.PercentChange.Shift(2).StringFixed(2),
	)
	f.logger.Debug("%s order book asks: %d, bids: %d, seq: %d, candles: %d",
		s.Pair, len(s.OrderBook.Asks), len(s.OrderBook.Bids), s.OrderBook.Seq, len(s.Candles))
	if s.Summary.IsFrozen {
		f.logger.Error("%s is frozen", s.Pair)
	}
}
