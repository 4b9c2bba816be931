// Package transport provide the http utility functions used by the api client
package transport

import (
	"bytes"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/remixqq/myqq-go/internal/base"
)

// ErrOverSize 响应主体过大时返回此错误
var ErrOverSize = errors.New("oversize")

// ErrInvalidJSON 响应主体不是合法的 JSON 时返回此错误
var ErrInvalidJSON = errors.New("invalid json body")

// StatusError 服务端返回非 2xx 状态码时返回此错误
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "response status unsuccessful: " + strconv.FormatInt(int64(e.StatusCode), 10)
}

// Doer 执行一次 HTTP 请求, *http.Client 即满足此接口
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// UserAgent HTTP请求时使用的UA
var UserAgent = "myqq-go/" + base.Version

// NewClient 创建 HTTP 客户端
//
// t 为 0 时不设置超时, proxy 为空时使用环境变量中的代理
func NewClient(t time.Duration, proxy string) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: func(request *http.Request) (*url.URL, error) {
				if proxy == "" {
					return http.ProxyFromEnvironment(request)
				}
				return url.Parse(proxy)
			},
			// Disable http2
			TLSNextProto:        map[string]func(authority string, c *tls.Conn) http.RoundTripper{},
			MaxIdleConnsPerHost: 999,
		},
		Timeout: t,
	}
}

var client = NewClient(0, "")

// Default 返回默认的共享客户端
func Default() *http.Client {
	return client
}

// Request is a json post request
type Request struct {
	Method string
	URL    string
	Header map[string]string
	Limit  int64
	Body   []byte
}

// Response 为解析后的响应
type Response struct {
	JSON gjson.Result
	Size int
}

func (r Request) do(doer Doer) (*http.Response, error) {
	if r.Method == "" {
		r.Method = http.MethodPost
	}
	req, err := http.NewRequest(r.Method, r.URL, bytes.NewReader(r.Body))
	if err != nil {
		return nil, err
	}

	req.Header["User-Agent"] = []string{UserAgent}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	for k, v := range r.Header {
		req.Header.Set(k, v)
	}

	if doer == nil {
		doer = client
	}
	return doer.Do(req)
}

func (r Request) body(doer Doer) (io.ReadCloser, error) {
	resp, err := r.do(doer)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	limit := r.Limit // check body size limit
	if limit > 0 && resp.ContentLength > limit {
		_ = resp.Body.Close()
		return nil, ErrOverSize
	}

	if strings.Contains(resp.Header.Get("Content-Encoding"), "gzip") {
		return gzipReadCloser(resp.Body)
	}
	return resp.Body, nil
}

// Bytes 发送请求，返回响应主体
func (r Request) Bytes(doer Doer) ([]byte, error) {
	rd, err := r.body(doer)
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	if r.Limit > 0 {
		// ContentLength 可能未知, 多读一个字节用于判断是否超限
		b, err := io.ReadAll(io.LimitReader(rd, r.Limit+1))
		if err != nil {
			return nil, err
		}
		if int64(len(b)) > r.Limit {
			return nil, ErrOverSize
		}
		return b, nil
	}
	return io.ReadAll(rd)
}

// JSON 发送请求， 并转换响应为JSON
func (r Request) JSON(doer Doer) (Response, error) {
	b, err := r.Bytes(doer)
	if err != nil {
		return Response{}, err
	}
	if !gjson.ValidBytes(b) {
		return Response{Size: len(b)}, errors.Wrapf(ErrInvalidJSON, "body %q", abbreviate(b, 64))
	}
	return Response{JSON: gjson.ParseBytes(b), Size: len(b)}, nil
}

func abbreviate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

type gzipCloser struct {
	f io.Closer
	r *gzip.Reader
}

// gzipReadCloser 从 io.ReadCloser 创建 gunzip io.ReadCloser
func gzipReadCloser(reader io.ReadCloser) (io.ReadCloser, error) {
	gzipReader, err := gzip.NewReader(reader)
	if err != nil {
		_ = reader.Close()
		return nil, err
	}
	return &gzipCloser{
		f: reader,
		r: gzipReader,
	}, nil
}

// Read impls io.Reader
func (g *gzipCloser) Read(p []byte) (n int, err error) {
	return g.r.Read(p)
}

// Close impls io.Closer
func (g *gzipCloser) Close() error {
	_ = g.f.Close()
	return g.r.Close()
}
