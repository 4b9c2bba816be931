package myqq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_MarshalJSON(t *testing.T) {
	tests := []struct {
		params   Params
		expected string
	}{
		{P(), `{}`},
		{P("10001"), `{"c1":"10001"}`},
		{P("10001", 0, 1, "", "20002", "hi", -1), `{"c1":"10001","c2":0,"c3":1,"c4":"","c5":"20002","c6":"hi","c7":-1}`},
		{P(nil, true, 1.5), `{"c1":null,"c2":true,"c3":1.5}`},
	}
	for i, tt := range tests {
		b, err := json.Marshal(tt.params)
		require.NoError(t, err)
		// 键必须按位置顺序输出
		assert.Equal(t, tt.expected, string(b), "testcase %d", i)
	}
}

func TestParams_Keys(t *testing.T) {
	p := make(Params, 12)
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	require.Len(t, m, 12)
	for i := range p {
		assert.Contains(t, m, Key(i))
	}
	assert.Equal(t, "c12", Key(11))
}

func TestRequest_OmitEmptyParams(t *testing.T) {
	b, err := json.Marshal(Request{Function: "Api_GetVer", Token: "tk"})
	require.NoError(t, err)
	assert.Equal(t, `{"function":"Api_GetVer","token":"tk"}`, string(b))

	b, err = json.Marshal(Request{Function: "Api_GetVer", Token: "tk", Params: P()})
	require.NoError(t, err)
	assert.Equal(t, `{"function":"Api_GetVer","token":"tk"}`, string(b))
}

func TestFunction_Bind(t *testing.T) {
	tests := []struct {
		name     string
		fn       Function
		qq       string
		args     []interface{}
		expected Params
		field    string // 非空时期望 ConfigError
	}{
		{
			name:     "no slots",
			fn:       FuncGetVer,
			expected: Params{},
		},
		{
			name:     "qq filled",
			fn:       FuncGetNick,
			qq:       "10001",
			args:     []interface{}{"20002"},
			expected: P("10001", "20002"),
		},
		{
			name:     "int widths",
			fn:       FuncSendMsgEx,
			qq:       "10001",
			args:     []interface{}{int64(0), int32(1), "", "20002", "hi", int8(-1)},
			expected: P("10001", int64(0), 1, "", "20002", "hi", -1),
		},
		{
			name:  "missing qq",
			fn:    FuncGetBkn,
			field: "qq",
		},
		{
			name:  "too few",
			fn:    FuncSendXML,
			qq:    "10001",
			args:  []interface{}{0, 2, "30003"},
			field: "params",
		},
		{
			name:  "too many",
			fn:    FuncOutPut,
			args:  []interface{}{"a", "b"},
			field: "params",
		},
		{
			name:  "wrong type",
			fn:    FuncGetNick,
			qq:    "10001",
			args:  []interface{}{20002},
			field: "params",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn.bind(tt.qq, tt.args)
			if tt.field != "" {
				var ce *ConfigError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.field, ce.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFunctionTable(t *testing.T) {
	assert.Len(t, Functions, 20)
	for name, fn := range Functions {
		assert.Equal(t, name, fn.Name)
		assert.LessOrEqual(t, len(fn.Slots), 7, name)
	}
	assert.False(t, FuncGetVer.NeedQQ())
	assert.False(t, FuncOutPut.NeedQQ())
	assert.True(t, FuncSendMsgEx.NeedQQ())
	assert.Equal(t, 6, FuncSendMsgEx.Arity())
	assert.Equal(t, "int", SlotInt.String())
}
