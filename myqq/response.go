package myqq

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// SuccessMarker 服务端在 msg 中表示调用成功的字符串
const SuccessMarker = "成功"

// Request 请求信封
type Request struct {
	Function string `json:"function"`
	Token    string `json:"token"`
	Params   Params `json:"params,omitempty"`
}

// Response 响应信封, 除 msg 与 data 外结构由远程函数决定
type Response struct {
	gjson.Result
}

// Msg 返回状态字段 msg
func (r Response) Msg() string {
	return r.Get("msg").String()
}

// Data 返回 data 字段
func (r Response) Data() gjson.Result {
	return r.Get("data")
}

// OK 判断 msg 是否为成功标记
func (r Response) OK() bool {
	return r.Msg() == SuccessMarker
}

// MarshalJSON 原样输出响应主体
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Raw == "" {
		return []byte("null"), nil
	}
	return []byte(r.Raw), nil
}

// ListResult 列表类函数的返回值
//
// 调用成功时 Items 为提取出的列表, 否则 Failure 为服务端的原始响应
type ListResult struct {
	Items   []string
	Failure *Response
}

// OK 判断是否成功取得列表
func (l ListResult) OK() bool {
	return l.Failure == nil
}

// MarshalJSON 成功时输出列表, 否则输出原始响应
func (l ListResult) MarshalJSON() ([]byte, error) {
	if l.Failure != nil {
		return l.Failure.MarshalJSON()
	}
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// listAt 成功时提取 path 处的列表, 失败时保留原始响应
func listAt(function string, resp Response, path string) (ListResult, error) {
	if !resp.OK() {
		return ListResult{Failure: &resp}, nil
	}
	v := resp.Get(path)
	if !v.IsArray() {
		return ListResult{}, &ResponseShapeError{Function: function, Path: path, Raw: resp.Raw}
	}
	arr := v.Array()
	items := make([]string, 0, len(arr))
	for _, e := range arr {
		items = append(items, e.String())
	}
	return ListResult{Items: items}, nil
}

// dropTrailingSentinel 移除群成员列表末尾的空白占位元素
//
// 只用于 Api_GetGroupMemberList_B
func dropTrailingSentinel(function string, l ListResult) (ListResult, error) {
	if !l.OK() {
		return l, nil
	}
	if len(l.Items) == 0 {
		return ListResult{}, &ResponseShapeError{Function: function, Path: "data.ret.#"}
	}
	l.Items = l.Items[:len(l.Items)-1]
	return l, nil
}
