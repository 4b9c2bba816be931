package qqctl

import (
	"os"
	"path"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/remixqq/myqq-go/global"
	"github.com/remixqq/myqq-go/internal/base"
)

// InitLog 初始化日志格式与 hook
func InitLog() {
	rotateOptions := []rotatelogs.Option{
		rotatelogs.WithRotationTime(time.Hour * 24),
	}
	rotateOptions = append(rotateOptions, rotatelogs.WithMaxAge(base.LogAging))
	if base.LogForceNew {
		rotateOptions = append(rotateOptions, rotatelogs.ForceNewFile())
	}
	w, err := rotatelogs.New(path.Join("logs", "%Y-%m-%d.log"), rotateOptions...)
	if err != nil {
		log.Errorf("rotatelogs init err: %v", err)
		panic(err)
	}

	colorful := base.LogColorful && term.IsTerminal(int(os.Stderr.Fd()))
	consoleFormatter := global.LogFormat{EnableColor: colorful}
	fileFormatter := global.LogFormat{EnableColor: false}
	log.AddHook(global.NewLocalHook(w, consoleFormatter, fileFormatter, global.GetLogLevel(base.LogLevel)...))

	switch {
	case base.Debug:
		log.SetLevel(log.DebugLevel)
		log.SetReportCaller(true)
		log.Warnf("已开启Debug模式.")
	case base.LogLevel != "":
		if l, err := log.ParseLevel(base.LogLevel); err == nil {
			log.SetLevel(l)
		}
	}
}
