package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

// Formatter 单行日志: 时间 级别 位置 消息 k=v...
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	location := ""
	if entry.Caller != nil {
		location = fmt.Sprintf("%s:%d ", filepath.Base(entry.Caller.File), entry.Caller.Line)
	}

	// 引擎以 WithField 记录 dapai/mianzi 等现场, 按键名排序追加
	fields := ""
	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fields += fmt.Sprintf(" %s=%v", k, entry.Data[k])
		}
	}

	return []byte(fmt.Sprintf("%s [%s] %s%s%s\n", timestamp, level, location, entry.Message, fields)), nil
}

// Setup 初始化日志: 引擎内的 logrus 调用与返回的 pitaya Logger
// 共用同一个按日轮转的写入器, 文件名以 name 为前缀。
func Setup(name string, level logrus.Level) interfaces.Logger {
	writer, err := newWriter(name)
	if err != nil {
		logrus.Fatalf("create log writer: %v", err)
	}

	logrus.SetOutput(writer)
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&Formatter{})
	logrus.SetLevel(level)

	l := logrus.New()
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

func newWriter(name string) (*SafeRotateLogs, error) {
	logPath := "./logs"
	logFile := filepath.Join(logPath, fmt.Sprintf("%s-%%Y%%m%%d.log", name))
	if err := os.MkdirAll(logPath, os.ModePerm); err != nil {
		return nil, err
	}

	writer, err := rotatelogs.New(
		logFile,
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
		maxAge:     7 * 24 * time.Hour,
		rotation:   24 * time.Hour,
	}, nil
}

// SafeRotateLogs 包装轮转写入器, 当前日志文件被外部删除时重建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	currentLogFile := s.RotateLogs.CurrentFileName()

	if _, err := os.Stat(currentLogFile); os.IsNotExist(err) {
		writer, err := rotatelogs.New(
			s.logPattern,
			rotatelogs.WithMaxAge(s.maxAge),
			rotatelogs.WithRotationTime(s.rotation),
		)
		if err != nil {
			return 0, fmt.Errorf("recreate log writer: %v", err)
		}
		s.RotateLogs = writer
	}

	return s.RotateLogs.Write(p)
}
