// Package qqctl 命令行程序的主体部分
package qqctl

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	para "github.com/fumiama/go-hide-param"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/remixqq/myqq-go/internal/base"
	"github.com/remixqq/myqq-go/myqq"
)

// Main 启动主程序
func Main() {
	base.Parse()
	if base.LittleT != "" {
		// para.Hide 会覆写参数所在内存, 先复制一份
		base.LittleT = string([]byte(base.LittleT))
		hideToken()
	}
	if base.LittleH || flag.NArg() == 0 {
		base.Help()
		Usage()
		os.Exit(0)
	}
	base.Init()
	InitLog()

	log.Debugf("当前版本: %v", base.Version)
	cli, err := newClient()
	if err != nil {
		log.Errorf("创建客户端失败: %v", err)
		os.Exit(1)
	}
	if err = run(cli, flag.Args(), os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func newClient() (*myqq.Client, error) {
	opts := []myqq.Option{
		myqq.WithTimeout(base.Timeout),
		myqq.WithProxy(base.Proxy),
		myqq.WithResponseLimit(base.MaxBodySize),
	}
	return myqq.New(base.URL, base.Token, base.QQ, opts...)
}

// run 执行 args[0] 对应的命令并将结果以 JSON 写入 w
func run(cli *myqq.Client, args []string, w io.Writer) error {
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		return errors.Errorf("未知的命令: %v", name)
	}
	if len(args)-1 < cmd.args {
		return errors.Errorf("用法: %v %v", name, cmd.usage)
	}
	ret, err := cmd.run(cli, args[1:])
	if err != nil {
		return err
	}
	if l, ok := ret.(myqq.ListResult); ok && !l.OK() {
		log.Warnf("%v 未能取得列表, 将输出原始响应: %v", name, l.Failure.Msg())
	}
	b, err := json.MarshalIndent(ret, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// hideToken 从进程参数中隐藏 -t 传入的令牌
func hideToken() {
	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		switch {
		case arg == "-t" || arg == "--t":
			if i+1 < len(os.Args) {
				para.Hide(i + 1)
			}
			return
		case strings.HasPrefix(arg, "-t=") || strings.HasPrefix(arg, "--t="):
			para.Hide(i)
			return
		}
	}
}
