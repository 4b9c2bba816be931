package myqq

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError 客户端配置错误, 在发起任何网络请求前返回
type ConfigError struct {
	Field   string // 出错的配置项或参数
	Value   string // 出错的值, 可能为空
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("myqq: invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("myqq: invalid %s: %s", e.Field, e.Message)
	}
	return "myqq: " + e.Message
}

// TransportError 网络错误、超时、非 2xx 状态码或无法解析的响应主体
type TransportError struct {
	Function   string
	StatusCode int // 仅在服务端返回非 2xx 状态码时非 0
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("myqq: call %s: http status %d", e.Function, e.StatusCode)
	}
	return fmt.Sprintf("myqq: call %s: %v", e.Function, e.Err)
}

// Unwrap 返回底层错误
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseShapeError 响应为合法 JSON, 但缺少后处理所需的字段
type ResponseShapeError struct {
	Function string
	Path     string
	Raw      string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("myqq: call %s: unexpected response shape at %q", e.Function, e.Path)
}

// IsConfig returns true if err is or wraps a ConfigError.
func IsConfig(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsTransport returns true if err is or wraps a TransportError.
func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// IsResponseShape returns true if err is or wraps a ResponseShapeError.
func IsResponseShape(err error) bool {
	var e *ResponseShapeError
	return errors.As(err, &e)
}
