package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"poloniex-api/pkg/domain/model"
	"poloniex-api/pkg/infrastructure/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const candleCSV = `date, open, high, low, close, volume
1600000000,100.0,110.0,95.0,105.0,2.0
1600000300,105.0,120.0,100.0,115.0,1.0
1600000600,115.0,116.0,90.0,92.0,3.0`

func newExchangeMock(t *testing.T, balances ...model.Balance) *memory.ExchangeMock {
	t.Helper()
	mock, err := memory.NewExchangeMock("USDT_BTC", strings.NewReader(candleCSV), balances)
	require.NoError(t, err)
	for mock.NextStep() {
	}
	return mock
}

// failingExchange ReturnOrderBookだけ失敗する
type failingExchange struct {
	*memory.ExchangeMock
	err error
}

func (e *failingExchange) ReturnOrderBook(ctx context.Context, currencyPair, depth string) (*model.OrderBook, error) {
	return nil, e.err
}

func TestFetcher_Fetch(t *testing.T) {
	f := NewFetcher(newExchangeMock(t), &memory.Logger{Level: memory.Error},
		WithClock(func() time.Time { return time.Unix(1600000700, 0) }))

	got, err := f.Fetch(context.Background(), &FetchParams{
		Pair:      "USDT_BTC",
		Depth:     "10",
		Period:    "300",
		ChartSpan: 10 * time.Minute,
	})

	require.NoError(t, err)
	assert.Equal(t, "USDT_BTC", got.Pair)
	assert.True(t, got.Summary.Last.Equal(decimal.RequireFromString("92")))
	require.NotNil(t, got.OrderBook)
	assert.Len(t, got.OrderBook.Asks, 1)
	// 1600000100〜1600000700
	require.Len(t, got.Candles, 2)
	assert.Equal(t, model.UnixTime(1600000300), got.Candles[0].Date)
	assert.Equal(t, time.Unix(1600000700, 0), got.FetchedAt)

	f.Log(got)
}

func TestFetcher_Fetch_MockClock(t *testing.T) {
	mock, err := memory.NewExchangeMock("USDT_BTC", strings.NewReader(candleCSV), nil)
	require.NoError(t, err)
	f := NewFetcher(mock, &memory.Logger{Level: memory.Error}, WithClock(mock.Now))
	params := &FetchParams{Pair: "USDT_BTC", Period: "300", ChartSpan: time.Hour}

	tests := []struct {
		wantCandles int
		wantAt      int64
	}{
		{wantCandles: 1, wantAt: 1600000000},
		{wantCandles: 2, wantAt: 1600000300},
		{wantCandles: 3, wantAt: 1600000600},
	}
	for i, tt := range tests {
		if i > 0 {
			require.True(t, mock.NextStep())
		}

		got, err := f.Fetch(context.Background(), params)

		require.NoError(t, err)
		assert.Len(t, got.Candles, tt.wantCandles, "step %d", i)
		assert.Equal(t, time.Unix(tt.wantAt, 0), got.FetchedAt, "step %d", i)
	}
}

func TestFetcher_Fetch_UnknownPair(t *testing.T) {
	f := NewFetcher(newExchangeMock(t), &memory.Logger{Level: memory.Error})

	got, err := f.Fetch(context.Background(), &FetchParams{Pair: "BTC_ETH", Period: "300", ChartSpan: time.Hour})

	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestFetcher_Fetch_Error(t *testing.T) {
	want := errors.New("server responded with a 503 status code")
	ex := &failingExchange{ExchangeMock: newExchangeMock(t), err: want}
	f := NewFetcher(ex, &memory.Logger{Level: memory.Error})

	got, err := f.Fetch(context.Background(), &FetchParams{Pair: "USDT_BTC", Period: "300", ChartSpan: time.Hour})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, want), "got %v", err)
}
