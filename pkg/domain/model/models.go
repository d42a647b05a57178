package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Credentials APIキー
type Credentials struct {
	APIKey    string
	SecretKey string
}

func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey: %s, SecretKey: %s}", mask(c.APIKey), mask(c.SecretKey))
}

// GoString %#v でもキーを出力しない
func (c Credentials) GoString() string {
	return c.String()
}

func mask(s string) string {
	if s == "" {
		return "<empty>"
	}
	return "***"
}

// EndpointConfig APIのURL
type EndpointConfig struct {
	PublicURL  string
	PrivateURL string
}

// SummaryInfo ティッカー情報
type SummaryInfo struct {
	ID            json.Number     `json:"id"`
	Last          decimal.Decimal `json:"last"`
	LowestAsk     decimal.Decimal `json:"lowestAsk"`
	HighestBid    decimal.Decimal `json:"highestBid"`
	PercentChange decimal.Decimal `json:"percentChange"`
	BaseVolume    decimal.Decimal `json:"baseVolume"`
	QuoteVolume   decimal.Decimal `json:"quoteVolume"`
	IsFrozen      Flag            `json:"isFrozen"`
	PostOnly      Flag            `json:"postOnly"`
	High24hr      decimal.Decimal `json:"high24hr"`
	Low24hr       decimal.Decimal `json:"low24hr"`
}

// CurrencyPairSummary 通貨ペアごとのティッカー
type CurrencyPairSummary struct {
	CurrencyPair string
	SummaryInfo  SummaryInfo
}

// OrderBook 板情報
type OrderBook struct {
	Asks     []OrderBookLevel `json:"asks"`
	Bids     []OrderBookLevel `json:"bids"`
	IsFrozen Flag             `json:"isFrozen"`
	PostOnly Flag             `json:"postOnly"`
	Seq      uint64           `json:"seq"`
}

// OrderBookLevel 板の1段
type OrderBookLevel struct {
	Low  decimal.Decimal `json:"low"`
	High decimal.Decimal `json:"high"`
}

// UnmarshalJSON {"low":..,"high":..} と [a, b] の両方を受け付ける
func (l *OrderBookLevel) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var pair []decimal.Decimal
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("order book level is not 2 values, [%d values]", len(pair))
		}
		l.Low, l.High = pair[0], pair[1]
		return nil
	}

	type plain OrderBookLevel
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*l = OrderBookLevel(p)
	return nil
}

// Candle ローソク足
type Candle struct {
	Date            UnixTime        `json:"date"`
	High            decimal.Decimal `json:"high"`
	Low             decimal.Decimal `json:"low"`
	Open            decimal.Decimal `json:"open"`
	Close           decimal.Decimal `json:"close"`
	Volume          decimal.Decimal `json:"volume"`
	QuoteVolume     decimal.Decimal `json:"quoteVolume"`
	WeightedAverage decimal.Decimal `json:"weightedAverage"`
}

// Balance 残高
type Balance struct {
	Currency string
	Amount   decimal.Decimal
}

// Flag 0/1 で返されるフラグ
type Flag bool

// UnmarshalJSON 0, 1, "0", "1", true, false, null を受け付ける
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch strings.Trim(string(bytes.TrimSpace(data)), `"`) {
	case "1", "true":
		*f = true
	case "0", "false", "", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value: %s", data)
	}
	return nil
}

// UnixTime UNIX時間（秒）
type UnixTime int64

// UnmarshalJSON 数値と数値文字列の両方を受け付ける
func (u *UnixTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "null" || s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid unix time: %s; error: %w", data, err)
	}
	*u = UnixTime(v)
	return nil
}

// Time time.Timeに変換
func (u UnixTime) Time() time.Time {
	return time.Unix(int64(u), 0)
}
