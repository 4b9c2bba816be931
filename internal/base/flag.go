// Package base provides base config for myqq-go
package base

import (
	"flag"
	"fmt"
	"os"
	"path"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/remixqq/myqq-go/modules/config"
)

// command flags
var (
	LittleC string // config file
	LittleH bool   // Help
	LittleT string // token, 覆盖配置文件
	LittleQ string // 机器人QQ, 覆盖配置文件
)

// config file flags
var (
	Debug       bool          // 是否开启 debug 模式
	URL         string        // MyQQHTTPAPI 地址
	Token       string        // 鉴权令牌
	QQ          string        // 机器人QQ号
	Proxy       string        // 请求使用的代理
	Timeout     time.Duration // 请求超时, 0 为不限制
	MaxBodySize int64         // 响应主体大小上限, 0 为不限制
	LogLevel    string        // 日志等级
	LogAging    = time.Hour * 24 * 15
	LogForceNew bool // 是否在每次启动时强制创建全新的文件储存日志
	LogColorful bool // 是否启用日志颜色
)

// Parse parse flags
func Parse() {
	wd, _ := os.Getwd()
	dc := path.Join(wd, "config.yml")
	flag.StringVar(&LittleC, "c", dc, "configuration filename")
	flag.BoolVar(&LittleH, "h", false, "this Help")
	flag.StringVar(&LittleT, "t", "", "access token, overrides endpoint.token")
	flag.StringVar(&LittleQ, "q", "", "bot qq, overrides endpoint.qq")
	d := flag.Bool("D", false, "debug mode")
	flag.Parse()

	if *d {
		Debug = true
	}
}

// Init read config from yml file
func Init() {
	conf := config.Parse(LittleC)
	{ // bool config
		if conf.Output.Debug {
			Debug = true
		}
		LogForceNew = conf.Output.LogForceNew
		LogColorful = conf.Output.LogColorful == nil || *conf.Output.LogColorful
	}
	{ // string
		URL = conf.Endpoint.URL
		Token = conf.Endpoint.Token
		QQ = conf.Endpoint.QQ
		Proxy = conf.Transport.Proxy
		LogLevel = conf.Output.LogLevel
		if LittleT != "" {
			Token = LittleT
		}
		if LittleQ != "" {
			QQ = LittleQ
		}
	}
	{ // others
		Timeout = time.Duration(conf.Transport.Timeout) * time.Second
		MaxBodySize = conf.Transport.MaxBody
		if conf.Output.LogAging > 0 {
			LogAging = time.Hour * 24 * time.Duration(conf.Output.LogAging)
		}
		if conf.Transport.Timeout < 0 {
			log.Warnf("transport.timeout 配置错误, 将不限制超时")
			Timeout = 0
		}
	}
}

// Help cli命令行-h的帮助提示
func Help() {
	fmt.Printf(`Usage:

%s [OPTIONS] <command> [args...]

Options:
`, os.Args[0])

	flag.PrintDefaults()
}
