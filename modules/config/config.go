// Package config 包含myqq-go操作配置文件的相关函数
package config

import (
	_ "embed" // embed the default config file
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/remixqq/myqq-go/global"
	"github.com/remixqq/myqq-go/internal/param"
)

// defaultConfig 默认配置文件
//go:embed default_config.yml
var defaultConfig string

// Endpoint 远程 API 连接配置
type Endpoint struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	QQ    string `yaml:"qq"`
}

// Transport HTTP 请求相关配置
type Transport struct {
	Timeout int    `yaml:"timeout"`
	Proxy   string `yaml:"proxy"`
	MaxBody int64  `yaml:"max-body"`
}

// Config 总配置文件
type Config struct {
	Endpoint  Endpoint  `yaml:"endpoint"`
	Transport Transport `yaml:"transport"`

	Output struct {
		LogLevel    string `yaml:"log-level"`
		LogAging    int    `yaml:"log-aging"`
		LogForceNew bool   `yaml:"log-force-new"`
		LogColorful *bool  `yaml:"log-colorful"`
		Debug       bool   `yaml:"debug"`
	} `yaml:"output"`
}

// Parse 从默认配置文件路径中获取
func Parse(path string) *Config {
	fromEnv := os.Getenv("MYQQ_URL") != ""

	config := &Config{}
	switch {
	case global.PathExists(path):
		file, err := os.ReadFile(path)
		if err == nil {
			err = Unmarshal(file, config)
		}
		if err != nil && !fromEnv {
			log.Fatal("配置文件不合法!", err)
		}
	case !fromEnv:
		generateConfig(path)
		os.Exit(0)
	}
	applyEnv(config, os.Getenv)
	return config
}

// Unmarshal 展开环境变量后解析配置
func Unmarshal(data []byte, config *Config) error {
	s := expand(string(data), os.Getenv)
	return errors.Wrap(yaml.Unmarshal([]byte(s), config), "decode config")
}

// applyEnv 使用环境变量覆盖配置项
func applyEnv(config *Config, getenv func(string) string) {
	// type convert tools
	toInt := func(str string) int {
		i, _ := strconv.Atoi(str)
		return i
	}

	param.SetExcludeDefault(&config.Endpoint.URL, getenv("MYQQ_URL"), "")
	param.SetExcludeDefault(&config.Endpoint.Token, getenv("MYQQ_TOKEN"), "")
	param.SetExcludeDefault(&config.Endpoint.QQ, getenv("MYQQ_QQ"), "")
	param.SetExcludeDefault(&config.Transport.Timeout, toInt(getenv("MYQQ_TIMEOUT")), 0)
	param.SetExcludeDefault(&config.Transport.Proxy, getenv("MYQQ_PROXY"), "")
	param.SetAtDefault(&config.Output.Debug, param.EnsureBool(getenv("MYQQ_DEBUG"), false), false)
}

// expand 使用正则进行环境变量展开
// os.ExpandEnv 字符 $ 无法逃逸
// https://github.com/golang/go/issues/43482
func expand(s string, mapping func(string) string) string {
	r := regexp.MustCompile(`\${([a-zA-Z_]+[a-zA-Z0-9_:/.]*)}`)
	return r.ReplaceAllStringFunc(s, func(s string) string {
		s = strings.Trim(s, "${}")
		kv := strings.SplitN(s, ":", 2)
		m := mapping(kv[0])
		if len(kv) == 2 && m == "" {
			return kv[1]
		}
		return m
	})
}

// generateConfig 生成配置文件
func generateConfig(path string) {
	fmt.Println("未找到配置文件，正在为您生成配置文件中！")
	_ = os.WriteFile(path, []byte(defaultConfig), 0o644)
	fmt.Printf("默认配置文件已生成，请修改 %s 后重新启动!\n", path)
}
