// Package myqq 为 MyQQHTTPAPI 的客户端实现
//
// 每个方法构造 {function, token, params} 请求信封并以 HTTP POST 发送,
// 返回解析后的响应或其中的子字段.
package myqq

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/remixqq/myqq-go/internal/transport"
)

// Doer 执行 HTTP 请求, *http.Client 即满足此接口
type Doer = transport.Doer

// Client MyQQHTTPAPI 客户端, 创建后不可变, 可并发使用
type Client struct {
	url   string
	token string
	qq    string

	doer   Doer
	header map[string]string
	limit  int64
}

type options struct {
	doer    Doer
	timeout time.Duration
	proxy   string
	header  map[string]string
	limit   int64
}

// Option 客户端选项
type Option func(*options)

// WithHTTPClient 使用指定的 HTTP 客户端发送请求
func WithHTTPClient(doer Doer) Option {
	return func(o *options) {
		o.doer = doer
	}
}

// WithTimeout 设置请求超时, 超时后调用返回 TransportError
func WithTimeout(t time.Duration) Option {
	return func(o *options) {
		o.timeout = t
	}
}

// WithProxy 设置请求使用的代理
func WithProxy(proxy string) Option {
	return func(o *options) {
		o.proxy = proxy
	}
}

// WithHeader 为每个请求附加请求头
func WithHeader(key, value string) Option {
	return func(o *options) {
		if o.header == nil {
			o.header = make(map[string]string)
		}
		o.header[key] = value
	}
}

// WithResponseLimit 限制响应主体大小, 单位字节
func WithResponseLimit(n int64) Option {
	return func(o *options) {
		o.limit = n
	}
}

// New 创建客户端
//
// url 通常形如 http://127.0.0.1:10002/MyQQHTTPAPI, qq 为机器人QQ号,
// 仅调用框架级函数(版本号, 时间戳, 输出日志)时可为空.
// 此函数不会发起网络请求.
func New(rawURL, token, qq string, opts ...Option) (*Client, error) {
	if rawURL == "" {
		return nil, &ConfigError{Field: "url", Message: "must not be empty"}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &ConfigError{Field: "url", Value: rawURL, Message: err.Error()}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &ConfigError{Field: "url", Value: rawURL, Message: "must be an absolute http(s) url"}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	doer := o.doer
	switch {
	case doer != nil:
	case o.timeout > 0 || o.proxy != "":
		doer = transport.NewClient(o.timeout, o.proxy)
	default:
		doer = transport.Default()
	}

	return &Client{
		url:    rawURL,
		token:  token,
		qq:     qq,
		doer:   doer,
		header: o.header,
		limit:  o.limit,
	}, nil
}

// URL 返回 API 地址
func (c *Client) URL() string {
	return c.url
}

// QQ 返回机器人QQ号
func (c *Client) QQ() string {
	return c.qq
}

// WithQQ 返回绑定到另一个机器人QQ的客户端副本
func (c *Client) WithQQ(qq string) *Client {
	cp := *c
	cp.qq = qq
	return &cp
}

// Dispatch 调用远程函数 function
//
// params 为空时请求中不包含 params 字段. 只尝试一次, 不重试.
func (c *Client) Dispatch(function string, params Params) (Response, error) {
	body, err := json.Marshal(Request{
		Function: function,
		Token:    c.token,
		Params:   params,
	})
	if err != nil {
		return Response{}, &ConfigError{Field: "params", Value: function, Message: err.Error()}
	}

	log.Debugf("调用远程函数 %v: %v", function, []interface{}(params))
	resp, err := transport.Request{
		URL:    c.url,
		Header: c.header,
		Limit:  c.limit,
		Body:   body,
	}.JSON(c.doer)
	if err != nil {
		te := &TransportError{Function: function, Err: errors.WithMessage(err, "post "+c.url)}
		var se *transport.StatusError
		if errors.As(err, &se) {
			te.StatusCode = se.StatusCode
		}
		log.Debugf("调用远程函数 %v 失败: %v", function, err)
		return Response{}, te
	}
	log.Debugf("远程函数 %v 返回 %v: %s", function, humanize.Bytes(uint64(resp.Size)), resp.JSON.Get("msg").String())
	return Response{Result: resp.JSON}, nil
}

// Call 按 fn 描述的槽位绑定参数后调用远程函数
//
// SlotQQ 由客户端的机器人QQ填充, 其余槽位按顺序取自 args.
// 参数个数或类型不符、缺少机器人QQ时返回 ConfigError 且不发起请求.
func (c *Client) Call(fn Function, args ...interface{}) (Response, error) {
	params, err := fn.bind(c.qq, args)
	if err != nil {
		return Response{}, err
	}
	return c.Dispatch(fn.Name, params)
}
