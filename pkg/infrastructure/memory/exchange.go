package memory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"poloniex-api/pkg/domain/model"

	"github.com/shopspring/decimal"
)

// NewCandle CSVの1行からローソク足を生成
// date,open,high,low,close,volume
func NewCandle(v []string) (*model.Candle, error) {
	if len(v) != 6 {
		return nil, fmt.Errorf("csv is not 6 columns, [%d columns]", len(v))
	}
	date, err := strconv.ParseInt(v[0], 10, 64)
	if err != nil {
		return nil, err
	}
	values := make([]decimal.Decimal, 5)
	for i := range values {
		if values[i], err = decimal.NewFromString(v[i+1]); err != nil {
			return nil, err
		}
	}

	c := &model.Candle{
		Date:   model.UnixTime(date),
		Open:   values[0],
		High:   values[1],
		Low:    values[2],
		Close:  values[3],
		Volume: values[4],
	}
	c.QuoteVolume = c.Volume.Mul(c.Close)
	c.WeightedAverage = c.Open.Add(c.High).Add(c.Low).Add(c.Close).Div(decimal.NewFromInt(4))
	return c, nil
}

// ExchangeMock 取引所モック
type ExchangeMock struct {
	mu         sync.RWMutex
	pair       string
	candleRead *csv.Reader
	candles    []model.Candle
	balances   []model.Balance
	seq        uint64
}

// NewExchangeMock 生成
func NewExchangeMock(pair string, r io.Reader, balances []model.Balance) (*ExchangeMock, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	// ヘッダを読み飛ばす
	if _, err := reader.Read(); err != nil {
		return nil, err
	}

	record, err := reader.Read()
	if err != nil {
		return nil, err
	}
	candle, err := NewCandle(record)
	if err != nil {
		return nil, err
	}

	return &ExchangeMock{
		pair:       pair,
		candleRead: reader,
		candles:    []model.Candle{*candle},
		balances:   append([]model.Balance{}, balances...),
		seq:        1,
	}, nil
}

// ReturnTicker 現在のローソク足からティッカーを返す
func (e *ExchangeMock) ReturnTicker(ctx context.Context) ([]model.CurrencyPairSummary, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	first := e.candles[0]
	current := e.candles[len(e.candles)-1]
	high, low := current.High, current.Low
	volume := decimal.Zero
	for _, c := range e.candles {
		high = decimal.Max(high, c.High)
		low = decimal.Min(low, c.Low)
		volume = volume.Add(c.Volume)
	}

	change := decimal.Zero
	if !first.Open.IsZero() {
		change = current.Close.Sub(first.Open).Div(first.Open)
	}

	return []model.CurrencyPairSummary{
		{
			CurrencyPair: e.pair,
			SummaryInfo: model.SummaryInfo{
				ID:            "1",
				Last:          current.Close,
				LowestAsk:     current.High,
				HighestBid:    current.Low,
				PercentChange: change,
				BaseVolume:    volume.Mul(current.Close),
				QuoteVolume:   volume,
				High24hr:      high,
				Low24hr:       low,
			},
		},
	}, nil
}

// ReturnOrderBook 現在のローソク足の高値・安値で1段の板を返す
func (e *ExchangeMock) ReturnOrderBook(ctx context.Context, currencyPair, depth string) (*model.OrderBook, error) {
	if currencyPair != e.pair {
		return nil, fmt.Errorf("invalid currency pair: %s", currencyPair)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	current := e.candles[len(e.candles)-1]
	return &model.OrderBook{
		Asks: []model.OrderBookLevel{{Low: current.Close, High: current.High}},
		Bids: []model.OrderBookLevel{{Low: current.Low, High: current.Close}},
		Seq:  e.seq,
	}, nil
}

// ReturnChartData start〜endのローソク足を返す。periodは見ない
func (e *ExchangeMock) ReturnChartData(ctx context.Context, currencyPair, period, start, end string) ([]model.Candle, error) {
	if currencyPair != e.pair {
		return nil, fmt.Errorf("invalid currency pair: %s", currencyPair)
	}
	from, err := strconv.ParseInt(start, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %s; error: %w", start, err)
	}
	to, err := strconv.ParseInt(end, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid end: %s; error: %w", end, err)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	candles := []model.Candle{}
	for _, c := range e.candles {
		if int64(c.Date) >= from && int64(c.Date) <= to {
			candles = append(candles, c)
		}
	}
	return candles, nil
}

// ReturnBalances 残高を返す
func (e *ExchangeMock) ReturnBalances(ctx context.Context) ([]model.Balance, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return append([]model.Balance{}, e.balances...), nil
}

// Now 現在のローソク足の時刻
func (e *ExchangeMock) Now() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.candles[len(e.candles)-1].Date.Time()
}

// NextStep 次のステップに進める
func (e *ExchangeMock) NextStep() bool {
	record, err := e.candleRead.Read()
	if err != nil {
		return false
	}
	candle, err := NewCandle(record)
	if err != nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.candles = append(e.candles, *candle)
	e.seq++
	return true
}
