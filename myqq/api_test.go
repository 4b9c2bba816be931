package myqq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Params(t *testing.T) {
	m := newMockServer(t, `{"msg":"成功","data":{"ret":{}}}`)
	c := m.client(t, testQQ)

	tests := []struct {
		name     string
		call     func() error
		function string
		params   string // 为空表示请求中没有 params 字段
	}{
		{
			name:     "GetVersion",
			call:     func() error { _, err := c.GetVersion(); return err },
			function: "Api_GetVer",
		},
		{
			name:     "GetTimeStamp",
			call:     func() error { _, err := c.GetTimeStamp(); return err },
			function: "Api_GetTimeStamp",
		},
		{
			name:     "LogToHost",
			call:     func() error { _, err := c.LogToHost("hello"); return err },
			function: "Api_OutPut",
			params:   `{"c1":"hello"}`,
		},
		{
			name:     "GetNick",
			call:     func() error { _, err := c.GetNick("20002"); return err },
			function: "Api_GetNick",
			params:   `{"c1":"10001","c2":"20002"}`,
		},
		{
			name:     "SendFriendMessage",
			call:     func() error { _, err := c.SendFriendMessage("20002", "hi", BubbleRandom); return err },
			function: "Api_SendMsgEx",
			params:   `{"c1":"10001","c2":0,"c3":1,"c4":"","c5":"20002","c6":"hi","c7":-1}`,
		},
		{
			name:     "SendGroupMessage",
			call:     func() error { _, err := c.SendGroupMessage("30003", 1, "hi", BubbleDefault); return err },
			function: "Api_SendMsgEx",
			params:   `{"c1":"10001","c2":1,"c3":2,"c4":"30003","c5":"","c6":"hi","c7":0}`,
		},
		{
			name:     "SendGroupMessage clamps anonymous",
			call:     func() error { _, err := c.SendGroupMessage("30003", 5, "hi", BubbleDefault); return err },
			function: "Api_SendMsgEx",
			params:   `{"c1":"10001","c2":0,"c3":2,"c4":"30003","c5":"","c6":"hi","c7":0}`,
		},
		{
			name: "SendGroupMessageWithType",
			call: func() error {
				_, err := c.SendGroupMessageWithType("30003", 5, GroupTypeDiscuss, "hi", 3)
				return err
			},
			function: "Api_SendMsgEx",
			params:   `{"c1":"10001","c2":5,"c3":3,"c4":"30003","c5":"","c6":"hi","c7":3}`,
		},
		{
			name:     "SendGroupMessageJSON",
			call:     func() error { _, err := c.SendGroupMessageJSON("30003", GroupTypeGroup, `{"app":"x"}`); return err },
			function: "Api_SendJson",
			params:   `{"c1":"10001","c2":0,"c3":2,"c4":"30003","c5":"","c6":"{\"app\":\"x\"}"}`,
		},
		{
			name:     "SendGroupMessageXML",
			call:     func() error { _, err := c.SendGroupMessageXML("30003", GroupTypeGroupTemp, `<msg/>`); return err },
			function: "Api_SendXml",
			params:   `{"c1":"10001","c2":0,"c3":4,"c4":"30003","c5":"","c6":"<msg/>","c7":0}`,
		},
		{
			name:     "GetGroupAdminList",
			call:     func() error { _, err := c.GetGroupAdminList("30003"); return err },
			function: "Api_GetAdminList",
			params:   `{"c1":"10001","c2":"30003"}`,
		},
	}

	single := map[string]func() (Response, error){
		"Api_GetCookies":        c.GetCookies,
		"Api_GetBlogPsKey":      c.GetBlogPsKey,
		"Api_GetZonePsKey":      c.GetZonePsKey,
		"Api_GetGroupPsKey":     c.GetGroupPsKey,
		"Api_GetClassRoomPsKey": c.GetClassroomPsKey,
		"Api_GetTenPayPsKey":    c.GetTenPayPsKey,
		"Api_GetJuBaoPsKey":     c.GetJuBaoPsKey,
		"Api_GetBkn":            c.GetBkn,
		"Api_GetBkn32":          c.GetBkn32,
	}
	for function, fn := range single {
		fn := fn
		tests = append(tests, struct {
			name     string
			call     func() error
			function string
			params   string
		}{
			name:     function,
			call:     func() error { _, err := fn(); return err },
			function: function,
			params:   `{"c1":"10001"}`,
		})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.function, m.last.Get("function").String())
			assert.Equal(t, testToken, m.last.Get("token").String())
			if tt.params == "" {
				assert.False(t, m.last.Get("params").Exists())
				return
			}
			assert.JSONEq(t, tt.params, m.last.Get("params").Raw)
		})
	}
}

func TestClient_GetFriendList(t *testing.T) {
	m := newMockServer(t, `{"msg": "成功", "data": {"ret": {"result": ["111","222"]}}}`)
	l, err := m.client(t, testQQ).GetFriendList()
	require.NoError(t, err)
	assert.True(t, l.OK())
	assert.Equal(t, []string{"111", "222"}, l.Items)
	assert.Equal(t, "Api_GetFriendList", m.last.Get("function").String())
	assert.JSONEq(t, `{"c1":"10001"}`, m.last.Get("params").Raw)
}

func TestClient_GetFriendListFailure(t *testing.T) {
	m := newMockServer(t, `{"msg": "失败", "data": {}}`)
	l, err := m.client(t, testQQ).GetFriendList()
	require.NoError(t, err)
	assert.False(t, l.OK())
	assert.Nil(t, l.Items)
	require.NotNil(t, l.Failure)
	assert.Equal(t, "失败", l.Failure.Msg())

	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{"msg": "失败", "data": {}}`, string(b))
}

func TestClient_GetGroupList(t *testing.T) {
	m := newMockServer(t, `{"msg":"成功","data":{"ret":{"join":["30003","40004"],"create":["30003"]}}}`)
	l, err := m.client(t, testQQ).GetGroupList()
	require.NoError(t, err)
	assert.Equal(t, []string{"30003", "40004"}, l.Items)
	assert.Equal(t, "Api_GetGroupList_B", m.last.Get("function").String())
	assert.JSONEq(t, `{"c1":"10001"}`, m.last.Get("params").Raw)
}

func TestClient_GetGroupMemberList(t *testing.T) {
	m := newMockServer(t, `{"msg": "成功", "data": {"ret": ["111","222",""]}}`)
	l, err := m.client(t, testQQ).GetGroupMemberList("g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "222"}, l.Items)
	assert.Equal(t, "Api_GetGroupMemberList_B", m.last.Get("function").String())
	assert.JSONEq(t, `{"c1":"10001","c2":"g1"}`, m.last.Get("params").Raw)

	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `["111","222"]`, string(b))
}

func TestClient_GetGroupMemberListFailure(t *testing.T) {
	m := newMockServer(t, `{"msg":"失败","data":{"ret":["111",""]}}`)
	l, err := m.client(t, testQQ).GetGroupMemberList("g1")
	require.NoError(t, err)
	require.NotNil(t, l.Failure)
	assert.Equal(t, `{"msg":"失败","data":{"ret":["111",""]}}`, l.Failure.Raw)
}

func TestClient_ResponseShape(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		call  func(c *Client) (ListResult, error)
	}{
		{"friend list without ret", `{"msg":"成功","data":{}}`, (*Client).GetFriendList},
		{"friend list not array", `{"msg":"成功","data":{"ret":{"result":"111"}}}`, (*Client).GetFriendList},
		{"group list without join", `{"msg":"成功","data":{"ret":{}}}`, (*Client).GetGroupList},
		{"member list without data", `{"msg":"成功"}`, func(c *Client) (ListResult, error) { return c.GetGroupMemberList("g1") }},
		{"member list empty", `{"msg":"成功","data":{"ret":[]}}`, func(c *Client) (ListResult, error) { return c.GetGroupMemberList("g1") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockServer(t, tt.reply)
			_, err := tt.call(m.client(t, testQQ))
			var se *ResponseShapeError
			require.ErrorAs(t, err, &se)
			assert.NotEmpty(t, se.Path)
			assert.False(t, IsTransport(err))
		})
	}
}

func TestDropTrailingSentinel(t *testing.T) {
	l, err := dropTrailingSentinel("f", ListResult{Items: []string{"1", ""}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, l.Items)

	// 仅移除最后一个元素, 不检查其内容
	l, err = dropTrailingSentinel("f", ListResult{Items: []string{"1", "2"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, l.Items)

	failure := &Response{}
	l, err = dropTrailingSentinel("f", ListResult{Failure: failure})
	require.NoError(t, err)
	assert.Same(t, failure, l.Failure)

	_, err = dropTrailingSentinel("f", ListResult{Items: []string{}})
	assert.True(t, IsResponseShape(err))
}
