package myqq

import (
	"github.com/remixqq/myqq-go/internal/param"
)

// 群组类型
const (
	GroupTypeGroup       = 2 // 群
	GroupTypeDiscuss     = 3 // 讨论组
	GroupTypeGroupTemp   = 4 // 群临时会话
	GroupTypeDiscussTemp = 5 // 讨论组临时会话
)

// 气泡ID
const (
	BubbleDefault = 0  // 使用本来的气泡
	BubbleRandom  = -1 // 随机气泡
)

// 远程函数
var (
	FuncGetVer             = Function{Name: "Api_GetVer"}
	FuncGetTimeStamp       = Function{Name: "Api_GetTimeStamp"}
	FuncOutPut             = Function{Name: "Api_OutPut", Slots: []Slot{SlotString}}
	FuncGetNick            = Function{Name: "Api_GetNick", Slots: []Slot{SlotQQ, SlotString}}
	FuncSendMsgEx          = Function{Name: "Api_SendMsgEx", Slots: []Slot{SlotQQ, SlotInt, SlotInt, SlotString, SlotString, SlotString, SlotInt}}
	FuncSendJSON           = Function{Name: "Api_SendJson", Slots: []Slot{SlotQQ, SlotInt, SlotInt, SlotString, SlotString, SlotString}}
	FuncSendXML            = Function{Name: "Api_SendXml", Slots: []Slot{SlotQQ, SlotInt, SlotInt, SlotString, SlotString, SlotString, SlotInt}}
	FuncGetFriendList      = Function{Name: "Api_GetFriendList", Slots: []Slot{SlotQQ}}
	FuncGetGroupList       = Function{Name: "Api_GetGroupList_B", Slots: []Slot{SlotQQ}}
	FuncGetGroupMemberList = Function{Name: "Api_GetGroupMemberList_B", Slots: []Slot{SlotQQ, SlotString}}
	FuncGetAdminList       = Function{Name: "Api_GetAdminList", Slots: []Slot{SlotQQ, SlotString}}
	FuncGetCookies         = Function{Name: "Api_GetCookies", Slots: []Slot{SlotQQ}}
	FuncGetBlogPsKey       = Function{Name: "Api_GetBlogPsKey", Slots: []Slot{SlotQQ}}
	FuncGetZonePsKey       = Function{Name: "Api_GetZonePsKey", Slots: []Slot{SlotQQ}}
	FuncGetGroupPsKey      = Function{Name: "Api_GetGroupPsKey", Slots: []Slot{SlotQQ}}
	FuncGetClassRoomPsKey  = Function{Name: "Api_GetClassRoomPsKey", Slots: []Slot{SlotQQ}}
	FuncGetTenPayPsKey     = Function{Name: "Api_GetTenPayPsKey", Slots: []Slot{SlotQQ}}
	FuncGetJuBaoPsKey      = Function{Name: "Api_GetJuBaoPsKey", Slots: []Slot{SlotQQ}}
	FuncGetBkn             = Function{Name: "Api_GetBkn", Slots: []Slot{SlotQQ}}
	FuncGetBkn32           = Function{Name: "Api_GetBkn32", Slots: []Slot{SlotQQ}}
)

// Functions 按名称索引的已知远程函数
var Functions = func() map[string]Function {
	m := make(map[string]Function)
	for _, f := range []Function{
		FuncGetVer, FuncGetTimeStamp, FuncOutPut, FuncGetNick,
		FuncSendMsgEx, FuncSendJSON, FuncSendXML,
		FuncGetFriendList, FuncGetGroupList, FuncGetGroupMemberList, FuncGetAdminList,
		FuncGetCookies, FuncGetBlogPsKey, FuncGetZonePsKey, FuncGetGroupPsKey,
		FuncGetClassRoomPsKey, FuncGetTenPayPsKey, FuncGetJuBaoPsKey,
		FuncGetBkn, FuncGetBkn32,
	} {
		m[f.Name] = f
	}
	return m
}()

// GetVersion 获取框架版本号
func (c *Client) GetVersion() (Response, error) {
	return c.Call(FuncGetVer)
}

// GetTimeStamp 获取当前框架内部时间戳
func (c *Client) GetTimeStamp() (Response, error) {
	return c.Call(FuncGetTimeStamp)
}

// LogToHost 在框架记录页输出一行信息
func (c *Client) LogToHost(message string) (Response, error) {
	return c.Call(FuncOutPut, message)
}

// GetNick 获取指定QQ号的昵称
func (c *Client) GetNick(targetQQ string) (Response, error) {
	return c.Call(FuncGetNick, targetQQ)
}

// SendFriendMessage 发送好友消息
//
// bubbleID 为 BubbleDefault 使用本来的气泡, BubbleRandom 为随机气泡
func (c *Client) SendFriendMessage(targetQQ, content string, bubbleID int) (Response, error) {
	return c.Call(FuncSendMsgEx, 0, 1, "", targetQQ, content, bubbleID)
}

// SendGroupMessage 发送群消息
//
// anonymous 为 1 时匿名发送, 其余值均视为 0
func (c *Client) SendGroupMessage(targetGroup string, anonymous int, content string, bubbleID int) (Response, error) {
	return c.SendGroupMessageWithType(targetGroup, param.EnsureFlag(anonymous), GroupTypeGroup, content, bubbleID)
}

// SendGroupMessageWithType 向指定类型的群组发送消息
//
// groupType 取 GroupTypeGroup 等常量, anonymous 与 groupType 均原样发送,
// 合法性由调用者保证
func (c *Client) SendGroupMessageWithType(targetGroup string, anonymous, groupType int, content string, bubbleID int) (Response, error) {
	return c.Call(FuncSendMsgEx, anonymous, groupType, targetGroup, "", content, bubbleID)
}

// SendGroupMessageJSON 向指定群组发送JSON卡片消息
func (c *Client) SendGroupMessageJSON(targetGroup string, groupType int, jsonStr string) (Response, error) {
	return c.Call(FuncSendJSON, 0, groupType, targetGroup, "", jsonStr)
}

// SendGroupMessageXML 向指定群组发送XML卡片消息
func (c *Client) SendGroupMessageXML(targetGroup string, groupType int, xmlStr string) (Response, error) {
	return c.Call(FuncSendXML, 0, groupType, targetGroup, "", xmlStr, 0)
}

// GetFriendList 获取好友QQ号列表
func (c *Client) GetFriendList() (ListResult, error) {
	resp, err := c.Call(FuncGetFriendList)
	if err != nil {
		return ListResult{}, err
	}
	return listAt(FuncGetFriendList.Name, resp, "data.ret.result")
}

// GetGroupList 获取已加入的群号列表
func (c *Client) GetGroupList() (ListResult, error) {
	resp, err := c.Call(FuncGetGroupList)
	if err != nil {
		return ListResult{}, err
	}
	return listAt(FuncGetGroupList.Name, resp, "data.ret.join")
}

// GetGroupMemberList 获取群成员QQ号列表
//
// 服务端会在列表末尾附加一个空白元素, 此处将其移除
func (c *Client) GetGroupMemberList(targetGroup string) (ListResult, error) {
	resp, err := c.Call(FuncGetGroupMemberList, targetGroup)
	if err != nil {
		return ListResult{}, err
	}
	l, err := listAt(FuncGetGroupMemberList.Name, resp, "data.ret")
	if err != nil {
		return ListResult{}, err
	}
	return dropTrailingSentinel(FuncGetGroupMemberList.Name, l)
}

// GetGroupAdminList 获取群管理员列表 (疑似已废弃)
func (c *Client) GetGroupAdminList(targetGroup string) (Response, error) {
	return c.Call(FuncGetAdminList, targetGroup)
}

// GetCookies 取得机器人网页操作用的Cookies
func (c *Client) GetCookies() (Response, error) {
	return c.Call(FuncGetCookies)
}

// GetBlogPsKey 取得腾讯微博页面操作用参数P_skey
func (c *Client) GetBlogPsKey() (Response, error) {
	return c.Call(FuncGetBlogPsKey)
}

// GetZonePsKey 取得QQ空间页面操作用参数P_skey
func (c *Client) GetZonePsKey() (Response, error) {
	return c.Call(FuncGetZonePsKey)
}

// GetGroupPsKey 取得QQ群页面操作用参数P_skey
func (c *Client) GetGroupPsKey() (Response, error) {
	return c.Call(FuncGetGroupPsKey)
}

// GetClassroomPsKey 取得QQ教室页面操作用参数P_skey
func (c *Client) GetClassroomPsKey() (Response, error) {
	return c.Call(FuncGetClassRoomPsKey)
}

// GetTenPayPsKey 取得QQ钱包页面操作用参数P_skey
func (c *Client) GetTenPayPsKey() (Response, error) {
	return c.Call(FuncGetTenPayPsKey)
}

// GetJuBaoPsKey 取得QQ举报页面操作用参数P_skey
func (c *Client) GetJuBaoPsKey() (Response, error) {
	return c.Call(FuncGetJuBaoPsKey)
}

// GetBkn 取得机器人网页操作用参数Bkn或G_tk
func (c *Client) GetBkn() (Response, error) {
	return c.Call(FuncGetBkn)
}

// GetBkn32 取得机器人网页操作用参数长Bkn或长G_tk
func (c *Client) GetBkn32() (Response, error) {
	return c.Call(FuncGetBkn32)
}
