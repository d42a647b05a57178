package exchange

import (
	"context"

	"poloniex-api/pkg/domain/model"
)

// Client 取引所クライアント
type Client interface {
	ReturnTicker(ctx context.Context) ([]model.CurrencyPairSummary, error)
	ReturnOrderBook(ctx context.Context, currencyPair, depth string) (*model.OrderBook, error)
	ReturnChartData(ctx context.Context, currencyPair, period, start, end string) ([]model.Candle, error)
	ReturnBalances(ctx context.Context) ([]model.Balance, error)
}
