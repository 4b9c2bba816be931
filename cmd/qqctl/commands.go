package qqctl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/remixqq/myqq-go/myqq"
)

type command struct {
	usage string
	args  int // 最少参数个数
	run   func(c *myqq.Client, args []string) (interface{}, error)
}

var commands = map[string]command{
	"version": {
		usage: "获取框架版本号",
		run: func(c *myqq.Client, _ []string) (interface{}, error) {
			return c.GetVersion()
		},
	},
	"timestamp": {
		usage: "获取框架内部时间戳",
		run: func(c *myqq.Client, _ []string) (interface{}, error) {
			return c.GetTimeStamp()
		},
	},
	"log": {
		usage: "<message> 在框架记录页输出一行信息",
		args:  1,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			return c.LogToHost(strings.Join(args, " "))
		},
	},
	"nick": {
		usage: "<qq> 获取昵称",
		args:  1,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			return c.GetNick(args[0])
		},
	},
	"send-friend": {
		usage: "<qq> <content> [bubble] 发送好友消息",
		args:  2,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			bubble, err := optInt(args, 2, myqq.BubbleDefault)
			if err != nil {
				return nil, err
			}
			return c.SendFriendMessage(args[0], args[1], bubble)
		},
	},
	"send-group": {
		usage: "<group> <content> [anonymous] [type] [bubble] 发送群消息",
		args:  2,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			anonymous, err := optInt(args, 2, 0)
			if err != nil {
				return nil, err
			}
			bubble, err := optInt(args, 4, myqq.BubbleDefault)
			if err != nil {
				return nil, err
			}
			if len(args) > 3 {
				groupType, err := optInt(args, 3, myqq.GroupTypeGroup)
				if err != nil {
					return nil, err
				}
				return c.SendGroupMessageWithType(args[0], anonymous, groupType, args[1], bubble)
			}
			return c.SendGroupMessage(args[0], anonymous, args[1], bubble)
		},
	},
	"send-json": {
		usage: "<group> <json> [type] 发送JSON卡片消息",
		args:  2,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			groupType, err := optInt(args, 2, myqq.GroupTypeGroup)
			if err != nil {
				return nil, err
			}
			return c.SendGroupMessageJSON(args[0], groupType, args[1])
		},
	},
	"send-xml": {
		usage: "<group> <xml> [type] 发送XML卡片消息",
		args:  2,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			groupType, err := optInt(args, 2, myqq.GroupTypeGroup)
			if err != nil {
				return nil, err
			}
			return c.SendGroupMessageXML(args[0], groupType, args[1])
		},
	},
	"friends": {
		usage: "获取好友列表",
		run: func(c *myqq.Client, _ []string) (interface{}, error) {
			return c.GetFriendList()
		},
	},
	"groups": {
		usage: "获取群列表",
		run: func(c *myqq.Client, _ []string) (interface{}, error) {
			return c.GetGroupList()
		},
	},
	"members": {
		usage: "<group> 获取群成员列表",
		args:  1,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			return c.GetGroupMemberList(args[0])
		},
	},
	"admins": {
		usage: "<group> 获取群管理员列表",
		args:  1,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			return c.GetGroupAdminList(args[0])
		},
	},
	"cookies": {
		usage: "取得网页操作用的Cookies",
		run: func(c *myqq.Client, _ []string) (interface{}, error) {
			return c.GetCookies()
		},
	},
	"pskey": {
		usage: "<blog|zone|group|classroom|tenpay|jubao> 取得页面操作用参数P_skey",
		args:  1,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			fn, ok := psKeys[strings.ToLower(args[0])]
			if !ok {
				return nil, errors.Errorf("未知的 pskey 类型: %v", args[0])
			}
			return fn(c)
		},
	},
	"bkn": {
		usage: "取得网页操作用参数Bkn",
		run: func(c *myqq.Client, _ []string) (interface{}, error) {
			return c.GetBkn()
		},
	},
	"bkn32": {
		usage: "取得网页操作用参数长Bkn",
		run: func(c *myqq.Client, _ []string) (interface{}, error) {
			return c.GetBkn32()
		},
	},
	"call": {
		usage: "<function> [args...] 调用任意远程函数, 已知函数的机器人QQ自动填充",
		args:  1,
		run: func(c *myqq.Client, args []string) (interface{}, error) {
			return callRaw(c, args[0], args[1:])
		},
	},
}

var psKeys = map[string]func(c *myqq.Client) (myqq.Response, error){
	"blog":      (*myqq.Client).GetBlogPsKey,
	"zone":      (*myqq.Client).GetZonePsKey,
	"group":     (*myqq.Client).GetGroupPsKey,
	"classroom": (*myqq.Client).GetClassroomPsKey,
	"tenpay":    (*myqq.Client).GetTenPayPsKey,
	"jubao":     (*myqq.Client).GetJuBaoPsKey,
}

// callRaw 已知函数按槽位转换参数类型, 未知函数将参数原样作为字符串发送
func callRaw(c *myqq.Client, name string, args []string) (myqq.Response, error) {
	fn, ok := myqq.Functions[name]
	if !ok {
		params := make(myqq.Params, 0, len(args))
		for _, a := range args {
			params = append(params, a)
		}
		return c.Dispatch(name, params)
	}

	values := make([]interface{}, 0, len(args))
	slots := make([]myqq.Slot, 0, len(fn.Slots))
	for _, s := range fn.Slots {
		if s != myqq.SlotQQ {
			slots = append(slots, s)
		}
	}
	for i, a := range args {
		if i < len(slots) && slots[i] == myqq.SlotInt {
			n, err := strconv.Atoi(a)
			if err != nil {
				return myqq.Response{}, errors.Wrapf(err, "%v 第 %d 个参数", name, i+1)
			}
			values = append(values, n)
			continue
		}
		values = append(values, a)
	}
	return c.Call(fn, values...)
}

func optInt(args []string, i, def int) (int, error) {
	if len(args) <= i {
		return def, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, errors.Wrapf(err, "第 %d 个参数", i+1)
	}
	return n, nil
}

// Usage 输出命令列表
func Usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Print("\nCommands:\n")
	for _, name := range names {
		fmt.Printf("  %-12s %s\n", name, commands[name].usage)
	}
}
