package poloniex

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"poloniex-api/pkg/domain/model"
)

const (
	keyHeader  = "Key"
	signHeader = "Sign"
)

type param struct {
	name  string
	value string
}

// makeURL <publicURL>?command=<cmd>&<name>=<value>... をパラメータの順序どおりに組み立てる
func (c *Client) makeURL(cmd model.PublicCommand, params []param) (*url.URL, error) {
	u, err := url.Parse(c.publicURL)
	if err != nil {
		return nil, fmt.Errorf("failed parse public url; url: %s, error: %w", c.publicURL, err)
	}

	var b strings.Builder
	if u.RawQuery != "" {
		b.WriteString(u.RawQuery)
		b.WriteByte('&')
	}
	b.WriteString("command=")
	b.WriteString(escape(cmd.String()))
	for _, p := range params {
		b.WriteByte('&')
		b.WriteString(escape(p.name))
		b.WriteByte('=')
		b.WriteString(escape(p.value))
	}
	u.RawQuery = b.String()

	return u, nil
}

// escape QueryEscapeと同じだが空白は%20にする
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func makePayload(cmd model.PrivateCommand, nonce int64) string {
	return "command=" + cmd.String() + "&nonce=" + strconv.FormatInt(nonce, 10)
}

func computeHmac512(payload, secret string) string {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Client) get(ctx context.Context, cmd model.PublicCommand, params []param) ([]byte, error) {
	if !cmd.Valid() {
		return nil, fmt.Errorf("unknown public command: %q", cmd)
	}

	u, err := c.makeURL(cmd, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request, command: %s; error: %w", cmd, err)
	}

	c.logger.Debug("GET %s", u.String())
	return c.request(req, cmd.String())
}

func (c *Client) post(ctx context.Context, cmd model.PrivateCommand) ([]byte, error) {
	if !cmd.Valid() {
		return nil, fmt.Errorf("unknown private command: %q", cmd)
	}

	payload := makePayload(cmd, c.nonce.next())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.privateURL, strings.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request, command: %s; error: %w", cmd, err)
	}
	req.Header.Add(keyHeader, c.credentials.APIKey)
	req.Header.Add(signHeader, computeHmac512(payload, c.credentials.SecretKey))
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug("POST %s command=%s", c.privateURL, cmd)
	return c.request(req, cmd.String())
}

func (c *Client) request(req *http.Request, cmd string) ([]byte, error) {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Command: cmd, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{Command: cmd, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &HTTPStatusError{
			Command:    cmd,
			StatusCode: res.StatusCode,
			Message:    errorMessage(body),
		}
	}

	if msg := errorMessage(body); msg != "" {
		return nil, &APIError{Command: cmd, Message: msg}
	}

	return body, nil
}

// isNull JSONのnullか
func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// errorMessage {"error": "..."} 形式ならメッセージを返す
func errorMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ""
	}

	var result struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return ""
	}
	return result.Error
}
