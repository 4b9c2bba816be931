package myqq

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/remixqq/myqq-go/global"
)

// Params 位置参数, 按顺序编码为 {"c1":...,"c2":...}
//
// 键名由位置决定, 因此不会出现缺号或错号
type Params []interface{}

// P 由给定值构造位置参数
func P(values ...interface{}) Params {
	return values
}

// Key 返回第 i 个参数(从 0 开始)对应的键名
func Key(i int) string {
	return "c" + strconv.Itoa(i+1)
}

// MarshalJSON impls json.Marshaler
func (p Params) MarshalJSON() ([]byte, error) {
	buf := global.NewBuffer()
	defer global.PutBuffer(buf)

	buf.WriteByte('{')
	for i, v := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.WriteByte('"')
		buf.WriteString(Key(i))
		buf.WriteString(`":`)
		buf.Write(b)
	}
	buf.WriteByte('}')

	return append([]byte(nil), buf.Bytes()...), nil
}

// Slot 参数槽类型
type Slot uint8

// 参数槽
const (
	SlotQQ     Slot = iota + 1 // 机器人QQ, 由客户端填充
	SlotString                 // 字符串参数
	SlotInt                    // 整数参数
)

func (s Slot) String() string {
	switch s {
	case SlotQQ:
		return "qq"
	case SlotString:
		return "string"
	case SlotInt:
		return "int"
	default:
		return "Slot(" + strconv.Itoa(int(s)) + ")"
	}
}

// Function 描述一个远程函数及其位置参数
type Function struct {
	Name  string
	Slots []Slot
}

// NeedQQ 该函数是否需要机器人QQ
func (f Function) NeedQQ() bool {
	for _, s := range f.Slots {
		if s == SlotQQ {
			return true
		}
	}
	return false
}

// Arity 调用者需要提供的参数个数, 不含 SlotQQ
func (f Function) Arity() int {
	n := 0
	for _, s := range f.Slots {
		if s != SlotQQ {
			n++
		}
	}
	return n
}

// bind 将参数按槽位顺序填充为 Params
func (f Function) bind(qq string, args []interface{}) (Params, error) {
	if n := f.Arity(); len(args) != n {
		return nil, &ConfigError{
			Field:   "params",
			Value:   f.Name,
			Message: fmt.Sprintf("expects %d arguments, got %d", n, len(args)),
		}
	}
	params := make(Params, 0, len(f.Slots))
	next := 0
	for i, s := range f.Slots {
		if s == SlotQQ {
			if qq == "" {
				return nil, &ConfigError{Field: "qq", Message: f.Name + " requires a bot qq"}
			}
			params = append(params, qq)
			continue
		}
		v, ok := coerce(s, args[next])
		if !ok {
			return nil, &ConfigError{
				Field:   "params",
				Value:   f.Name,
				Message: fmt.Sprintf("%s must be %v, got %T", Key(i), s, args[next]),
			}
		}
		params = append(params, v)
		next++
	}
	return params, nil
}

func coerce(s Slot, v interface{}) (interface{}, bool) {
	switch s {
	case SlotString:
		str, ok := v.(string)
		return str, ok
	case SlotInt:
		switch n := v.(type) {
		case int:
			return n, true
		case int8:
			return int(n), true
		case int16:
			return int(n), true
		case int32:
			return int(n), true
		case int64:
			return n, true
		case uint8:
			return int(n), true
		case uint16:
			return int(n), true
		case uint32:
			return int64(n), true
		}
	}
	return nil, false
}
