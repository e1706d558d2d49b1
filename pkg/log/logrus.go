/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package log

import (
	"os"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/log/hook"
	"github.com/natefinch/lumberjack"
	elastic "github.com/olivere/elastic/v7"
	"github.com/sirupsen/logrus"
)

var levels = map[LogLevel]logrus.Level{
	LEVEL_TRACE:   logrus.TraceLevel,
	LEVEL_DEBUG:   logrus.DebugLevel,
	LEVEL_INFO:    logrus.InfoLevel,
	LEVEL_WARNING: logrus.WarnLevel,
	LEVEL_ERROR:   logrus.ErrorLevel,
	LEVEL_FATAL:   logrus.FatalLevel,
}

// LogrusLogger is a logrus logger wrapper.
type LogrusLogger struct {
	entry *logrus.Entry
}

func createElasticHook(config config.ElasticLogConfig) (*hook.ElasticHook, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(config.Address),
		elastic.SetSniff(false),
		elastic.SetBasicAuth(config.BasicAuthUsername, config.BasicAuthPassword),
		elastic.SetHealthcheck(config.HealthcheckEnabled),
		elastic.SetGzip(config.GzipEnabled),
	)

	if err != nil {
		return nil, &LogElasticInitializationError{
			Address: config.Address,
			Cause:   err,
		}
	}

	host, _ := os.Hostname()
	level := levels[LogLevel(config.Level)]
	switch {
	case config.Bulk:
		return hook.NewBulkProcessorElasticHook(client, host, level, config.Index)
	case config.Async:
		return hook.NewAsyncElasticHook(client, host, level, config.Index)
	default:
		return hook.NewElasticHook(client, host, level, config.Index)
	}
}

// NewLogrusLogger creates a new logger compliant with the Logger interface.
func NewLogrusLogger(config *config.LoggerConfig) (Logger, error) {
	log := logrus.New()
	if config.Logger.Pretty {
		log.SetFormatter(&logrus.TextFormatter{
			DisableColors: !config.Logger.Color,
			FullTimestamp: true,
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if lvl, ok := levels[LogLevel(config.Logger.Level)]; ok {
		log.SetLevel(lvl)
	}

	log.SetReportCaller(true)
	log.SetOutput(os.Stdout)

	if file := config.Logger.File; file.Filename != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   file.Filename,
			MaxSize:    file.MaxSize,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAge,
			LocalTime:  file.LocalTime,
			Compress:   file.Compress,
		})
	} else if elasticConfig := config.Logger.Elastic; elasticConfig.Address != "" && elasticConfig.Index != "" {
		hook, err := createElasticHook(elasticConfig)
		if err != nil {
			return nil, &LogElasticInitializationError{
				Address: elasticConfig.Address,
				Cause:   err,
			}
		}

		log.AddHook(hook)
	}

	return LogrusLogger{
		entry: log.WithField("name", config.Logger.Name),
	}, nil
}

func (l LogrusLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l LogrusLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l LogrusLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l LogrusLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l LogrusLogger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

func (l LogrusLogger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l LogrusLogger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l LogrusLogger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l LogrusLogger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l LogrusLogger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}
