package poloniex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"poloniex-api/pkg/domain"
	"poloniex-api/pkg/domain/model"
	"poloniex-api/pkg/infrastructure/jsonmap"
)

// Doer HTTP通信
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client Poloniex用クライアント
type Client struct {
	credentials model.Credentials
	publicURL   string
	privateURL  string
	httpClient  Doer
	nonce       *nonceGenerator
	logger      domain.Logger
}

// Option 生成時のオプション
type Option func(*Client)

// WithHTTPClient HTTP通信を差し替える
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.httpClient = d
	}
}

// NewClient 生成
func NewClient(cred model.Credentials, ep model.EndpointConfig, logger domain.Logger, opts ...Option) *Client {
	c := &Client{
		credentials: cred,
		publicURL:   ep.PublicURL,
		privateURL:  ep.PrivateURL,
		httpClient:  http.DefaultClient,
		nonce:       newNonceGenerator(time.Now),
		logger:      logger,
	}
	if c.publicURL == "" {
		c.publicURL = model.DefaultPublicURL
	}
	if c.privateURL == "" {
		c.privateURL = model.DefaultPrivateURL
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ReturnTicker ティッカー取得
func (c *Client) ReturnTicker(ctx context.Context) ([]model.CurrencyPairSummary, error) {
	cmd := model.ReturnTicker
	body, err := c.get(ctx, cmd, nil)
	if err != nil {
		return nil, err
	}

	entries, err := jsonmap.Entries(body)
	if err != nil {
		return nil, &MalformedResponseError{Command: cmd.String(), Err: err}
	}

	summaries := make([]model.CurrencyPairSummary, 0, len(entries))
	for _, e := range entries {
		if isNull(e.Value) {
			return nil, &MalformedResponseError{
				Command: cmd.String(),
				Err:     fmt.Errorf("currency pair %s; summary is null", e.Key),
			}
		}
		var info model.SummaryInfo
		if err := json.Unmarshal(e.Value, &info); err != nil {
			return nil, &MalformedResponseError{
				Command: cmd.String(),
				Err:     fmt.Errorf("currency pair %s; %w", e.Key, err),
			}
		}
		summaries = append(summaries, model.CurrencyPairSummary{
			CurrencyPair: e.Key,
			SummaryInfo:  info,
		})
	}
	return summaries, nil
}

// ReturnOrderBook 板情報取得
// depthが空の場合は model.DefaultDepth を使う。値の検証は取引所に任せる。
func (c *Client) ReturnOrderBook(ctx context.Context, currencyPair, depth string) (*model.OrderBook, error) {
	if depth == "" {
		depth = model.DefaultDepth
	}

	cmd := model.ReturnOrderBook
	body, err := c.get(ctx, cmd, []param{
		{name: "currencyPair", value: currencyPair},
		{name: "depth", value: depth},
	})
	if err != nil {
		return nil, err
	}

	if isNull(body) {
		return nil, &MalformedResponseError{Command: cmd.String(), Err: errors.New("order book is null")}
	}
	var book model.OrderBook
	if err := json.Unmarshal(body, &book); err != nil {
		return nil, &MalformedResponseError{Command: cmd.String(), Err: err}
	}
	return &book, nil
}

// ReturnChartData ローソク足取得
// period, start, end は呼び出し側で文字列化した値をそのまま送る。
func (c *Client) ReturnChartData(ctx context.Context, currencyPair, period, start, end string) ([]model.Candle, error) {
	cmd := model.ReturnChartData
	body, err := c.get(ctx, cmd, []param{
		{name: "currencyPair", value: currencyPair},
		{name: "period", value: period},
		{name: "start", value: start},
		{name: "end", value: end},
	})
	if err != nil {
		return nil, err
	}

	if isNull(body) {
		return nil, &MalformedResponseError{Command: cmd.String(), Err: errors.New("chart data is null")}
	}
	candles := []model.Candle{}
	if err := json.Unmarshal(body, &candles); err != nil {
		return nil, &MalformedResponseError{Command: cmd.String(), Err: err}
	}
	return candles, nil
}
