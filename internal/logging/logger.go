package logging

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/fittrack/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 0.2,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logrus.Errorf("sentry init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook(sentry.CurrentHub(), []logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infoln("sentry set up")
		}
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	logsDir := filepath.Dir(params.LogFileName)
	if exists, err := pkg.PathExists(logsDir, true); err != nil {
		logrus.Errorf("check logs dir [%s]: %s", logsDir, err)
	} else if !exists {
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			logrus.Errorf("create logs dir [%s]: %s", logsDir, err)
		}
	}

	rotatingFile := &lumberjack.Logger{
		Filename: params.LogFileName,
		MaxSize:  50, // megabytes
		Compress: true,
	}

	if params.LogToStdout {
		logrus.Println("writing logs to file and STDOUT")
		logrus.SetOutput(pkg.NewCombinedWriter(os.Stdout, rotatingFile))
	} else {
		logrus.SetOutput(rotatingFile)
	}
}

// GetLevel maps a config level name to a logrus level; unknown names log everything.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
