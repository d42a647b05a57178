package model_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"poloniex-api/pkg/domain/model"

	"github.com/shopspring/decimal"
)

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		data    string
		want    model.Flag
		wantErr bool
	}{
		"string one":  {data: `"1"`, want: true},
		"string zero": {data: `"0"`, want: false},
		"number one":  {data: `1`, want: true},
		"number zero": {data: `0`, want: false},
		"bool true":   {data: `true`, want: true},
		"null":        {data: `null`, want: false},
		"other":       {data: `"yes"`, wantErr: true},
		"two":         {data: `2`, wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got model.Flag
			err := json.Unmarshal([]byte(tt.data), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnixTime_UnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		data    string
		want    model.UnixTime
		wantErr bool
	}{
		"number": {data: `1405699200`, want: 1405699200},
		"string": {data: `"1405699200"`, want: 1405699200},
		"null":   {data: `null`, want: 0},
		"date":   {data: `"2014-07-18"`, wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got model.UnixTime
			err := json.Unmarshal([]byte(tt.data), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}

	want := time.Date(2014, 7, 18, 16, 0, 0, 0, time.UTC)
	if got := model.UnixTime(1405699200).Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestOrderBookLevel_UnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		data     string
		wantLow  string
		wantHigh string
		wantErr  bool
	}{
		"object":       {data: `{"low": "0.0250", "high": 0.0251}`, wantLow: "0.025", wantHigh: "0.0251"},
		"array":        {data: `["0.0252", 10.5]`, wantLow: "0.0252", wantHigh: "10.5"},
		"array spaced": {data: ` [1, 2] `, wantLow: "1", wantHigh: "2"},
		"short array":  {data: `["0.0252"]`, wantErr: true},
		"bad number":   {data: `["abc", 1]`, wantErr: true},
		"not a level":  {data: `"0.0252"`, wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got model.OrderBookLevel
			err := json.Unmarshal([]byte(tt.data), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.Low.Equal(decimal.RequireFromString(tt.wantLow)) {
				t.Errorf("Low = %s, want %s", got.Low, tt.wantLow)
			}
			if !got.High.Equal(decimal.RequireFromString(tt.wantHigh)) {
				t.Errorf("High = %s, want %s", got.High, tt.wantHigh)
			}
		})
	}
}

func TestCredentials_String(t *testing.T) {
	c := model.Credentials{APIKey: "my-api-key", SecretKey: "my-secret"}

	for _, format := range []string{"%v", "%+v", "%#v", "%s"} {
		got := fmt.Sprintf(format, c)
		if strings.Contains(got, "my-api-key") || strings.Contains(got, "my-secret") {
			t.Errorf("Sprintf(%q) leaks credentials: %s", format, got)
		}
	}

	if got := fmt.Sprintf("%v", model.Credentials{}); !strings.Contains(got, "<empty>") {
		t.Errorf("empty credentials should be marked, got: %s", got)
	}
}

func TestCommands_Valid(t *testing.T) {
	for _, c := range []model.PublicCommand{model.ReturnTicker, model.ReturnOrderBook, model.ReturnChartData} {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if model.PublicCommand("returnTradeHistory").Valid() {
		t.Errorf("returnTradeHistory should not be a valid public command")
	}
	if !model.ReturnBalances.Valid() {
		t.Errorf("returnBalances should be valid")
	}
	if model.PrivateCommand("buy").Valid() {
		t.Errorf("buy should not be a valid private command")
	}
}
