package poloniex

import "fmt"

// NetworkError 通信エラー。レスポンスを読めなかった
type NetworkError struct {
	Command string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to request %s; error: %v", e.Command, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError 2xx以外のレスポンス
// Messageにはボディのerrorフィールドが入る（あれば）
type HTTPStatusError struct {
	Command    string
	StatusCode int
	Message    string
}

func (e *HTTPStatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: server responded with a %d status code", e.Command, e.StatusCode)
	}
	return fmt.Sprintf("%s: server responded with a %d status code, message: %s", e.Command, e.StatusCode, e.Message)
}

// MalformedResponseError レスポンスの形式が想定と違う
type MalformedResponseError struct {
	Command string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse response of %s; error: %v", e.Command, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// APIError 2xxだがボディが {"error": "..."} だった
type APIError struct {
	Command string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: the endpoint returned an API error (message: %s)", e.Command, e.Message)
}
