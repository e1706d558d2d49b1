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
	"fmt"
	"log"
	"os"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
)

// Logger is a generic logger interface.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
}

type LogLevel int

const (
	LEVEL_TRACE   LogLevel = 1
	LEVEL_DEBUG   LogLevel = 2
	LEVEL_INFO    LogLevel = 3
	LEVEL_WARNING LogLevel = 4
	LEVEL_ERROR   LogLevel = 5
	LEVEL_FATAL   LogLevel = 6
)

// EmptyLogger discards everything. Handy in tests.
type EmptyLogger struct{}

func NewEmptyLogger() Logger {
	return EmptyLogger{}
}

func (l EmptyLogger) Debugf(format string, args ...interface{}) {}
func (l EmptyLogger) Infof(format string, args ...interface{})  {}
func (l EmptyLogger) Warnf(format string, args ...interface{})  {}
func (l EmptyLogger) Errorf(format string, args ...interface{}) {}
func (l EmptyLogger) Fatalf(format string, args ...interface{}) {}
func (l EmptyLogger) Debug(args ...interface{})                 {}
func (l EmptyLogger) Info(args ...interface{})                  {}
func (l EmptyLogger) Warn(args ...interface{})                  {}
func (l EmptyLogger) Error(args ...interface{})                 {}
func (l EmptyLogger) Fatal(args ...interface{})                 {}

// DefaultLogger writes through the standard log package. It is used before
// the logger configuration is available.
type DefaultLogger struct {
	loggers map[LogLevel]*log.Logger
	level   LogLevel
}

func NewDefaultLogger(config *config.LoggerConfig) Logger {
	prefix := func(level string) string {
		return fmt.Sprintf("[%s - Default %s]: ", level, config.Logger.Name)
	}

	return DefaultLogger{
		loggers: map[LogLevel]*log.Logger{
			LEVEL_DEBUG:   log.New(os.Stdout, prefix("DEBUG"), log.Ldate|log.Ltime|log.Llongfile),
			LEVEL_INFO:    log.New(os.Stdout, prefix("INFO"), log.Ldate|log.Ltime|log.Lshortfile),
			LEVEL_WARNING: log.New(os.Stdout, prefix("WARN"), log.Ldate|log.Ltime|log.Lshortfile),
			LEVEL_ERROR:   log.New(os.Stdout, prefix("ERROR"), log.Ldate|log.Ltime|log.Lshortfile),
			LEVEL_FATAL:   log.New(os.Stderr, prefix("FATAL"), log.Ldate|log.Ltime|log.Llongfile),
		},
		level: LogLevel(config.Logger.Level),
	}
}

func (l DefaultLogger) print(level LogLevel, msg string) {
	if l.level > level {
		return
	}

	logger := l.loggers[level]
	if level == LEVEL_FATAL {
		logger.Fatalln(msg)
	}

	logger.Println(msg)
}

func (l DefaultLogger) Debugf(format string, args ...interface{}) {
	l.print(LEVEL_DEBUG, fmt.Sprintf(format, args...))
}

func (l DefaultLogger) Infof(format string, args ...interface{}) {
	l.print(LEVEL_INFO, fmt.Sprintf(format, args...))
}

func (l DefaultLogger) Warnf(format string, args ...interface{}) {
	l.print(LEVEL_WARNING, fmt.Sprintf(format, args...))
}

func (l DefaultLogger) Errorf(format string, args ...interface{}) {
	l.print(LEVEL_ERROR, fmt.Sprintf(format, args...))
}

func (l DefaultLogger) Fatalf(format string, args ...interface{}) {
	l.print(LEVEL_FATAL, fmt.Sprintf(format, args...))
}

func (l DefaultLogger) Debug(args ...interface{}) {
	l.print(LEVEL_DEBUG, fmt.Sprint(args...))
}

func (l DefaultLogger) Info(args ...interface{}) {
	l.print(LEVEL_INFO, fmt.Sprint(args...))
}

func (l DefaultLogger) Warn(args ...interface{}) {
	l.print(LEVEL_WARNING, fmt.Sprint(args...))
}

func (l DefaultLogger) Error(args ...interface{}) {
	l.print(LEVEL_ERROR, fmt.Sprint(args...))
}

func (l DefaultLogger) Fatal(args ...interface{}) {
	l.print(LEVEL_FATAL, fmt.Sprint(args...))
}
