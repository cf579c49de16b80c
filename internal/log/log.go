/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const (
	LogDirectory                 = ".logs"
	LogFileTimestampPrefixFormat = "20060102-150405"

	// TOGGLES_LOG_FORMAT is an environment variable that specifies the format use when logging.
	// When set to "json", log entries are emitted as JSON lines. The plain text default logger is used in other cases.
	envVarLogFormat = "TOGGLES_LOG_FORMAT"

	// TOGGLES_LOG_TIME is an environment variable that specifies the time format used for timestamps when logging.
	// When set to "utc", timestamps are explicitly converted to UTC first.
	envVarLogTime = "TOGGLES_LOG_TIME"

	// TOGGLES_LOG_COLOR controls whether console log messages are colored. Any value other than "false" or "0" enables color.
	envVarLogColor = "TOGGLES_LOG_COLOR"
)

// timeAnchor is the start time of the execution, used to name log files consistently
var timeAnchor = time.Now()

func defaultLogger() *Slogger {
	return &Slogger{Logger: slog.Default()}
}

func Error(msg string, a ...any) { defaultLogger().Error(msg, a...) }
func Warn(msg string, a ...any)  { defaultLogger().Warn(msg, a...) }
func Info(msg string, a ...any)  { defaultLogger().Info(msg, a...) }
func Debug(msg string, a ...any) { defaultLogger().Debug(msg, a...) }

func ErrorContext(ctx context.Context, msg string, a ...any) {
	defaultLogger().ErrorContext(ctx, msg, a...)
}

func WarnContext(ctx context.Context, msg string, a ...any) {
	defaultLogger().WarnContext(ctx, msg, a...)
}

func InfoContext(ctx context.Context, msg string, a ...any) {
	defaultLogger().InfoContext(ctx, msg, a...)
}

func DebugContext(ctx context.Context, msg string, a ...any) {
	defaultLogger().DebugContext(ctx, msg, a...)
}

// Options configure PrepareLogging.
type Options struct {
	// Verbose enables debug logs
	Verbose bool
	// LoggerSpy can be used as an additional log sink to capture the logs
	LoggerSpy io.Writer
	// FileLogging enables writing all logs and error logs to files in LogDirectory. Requires Fs to be set.
	FileLogging bool
	Fs          afero.Fs
}

// PrepareLogging sets up the default slog.Logger using the specified options.
func PrepareLogging(ctx context.Context, opts Options) {
	logger := slog.New(prepareHandler(ctx, opts))
	slog.SetDefault(logger)
}

func prepareHandler(ctx context.Context, opts Options) slog.Handler {
	handlerOptions := getHandlerOptions(getLevelFromVerbose(opts.Verbose))

	var consoleHandler slog.Handler = getHandler(os.Stderr, handlerOptions)
	if shouldAddColor() {
		consoleHandler = NewColorHandler(consoleHandler)
	}
	handlers := []slog.Handler{consoleHandler}

	if opts.LoggerSpy != nil {
		handlers = append(handlers, getHandler(opts.LoggerSpy, handlerOptions))
	}

	if opts.FileLogging && opts.Fs != nil {
		logFile, errorFile, err := PrepareLogFiles(opts.Fs)
		if err != nil {
			Warn("Error preparing log files: %s", err)
		}

		if logFile != nil {
			handlers = append(handlers, getHandler(logFile, handlerOptions))
		}

		if errorFile != nil {
			handlers = append(handlers, getHandler(errorFile, getHandlerOptions(slog.LevelError)))
		}
	}

	var handler slog.Handler = NewTeeHandler(handlers...)
	if len(handlers) == 1 {
		handler = handlers[0]
	}

	return NewContextHandler(handler)
}

func getLevelFromVerbose(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func getHandlerOptions(level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: getReplaceAttrFunc(),
	}
}

func getHandler(w io.Writer, options *slog.HandlerOptions) slog.Handler {
	if shouldUseJSON() {
		return slog.NewJSONHandler(w, options)
	}

	return slog.NewTextHandler(w, options)
}

func getReplaceAttrFunc() func(groups []string, a slog.Attr) slog.Attr {
	if shouldUseUTC() {
		return func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				t := a.Value.Time()
				return slog.Attr{Key: slog.TimeKey, Value: slog.TimeValue(t.UTC())}
			}
			return a
		}
	}

	return nil
}

func shouldUseJSON() bool {
	v := os.Getenv(envVarLogFormat)
	return strings.ToLower(v) == "json"
}

func shouldUseUTC() bool {
	v := os.Getenv(envVarLogTime)
	return strings.ToLower(v) == "utc"
}

func shouldAddColor() bool {
	v, ok := os.LookupEnv(envVarLogColor)
	if !ok {
		return false
	}
	v = strings.ToLower(v)
	return v != "false" && v != "0"
}

// LogFilePath returns the path of a logfile for the current execution time - depending on when this function is called such a file may not yet exist
func LogFilePath() string {
	timestamp := timeAnchor.Format(LogFileTimestampPrefixFormat)
	return filepath.Join(LogDirectory, timestamp+".log")
}

// ErrorFilePath returns the path of an error logfile for the current execution time - depending on when this function is called such a file may not yet exist
func ErrorFilePath() string {
	timestamp := timeAnchor.Format(LogFileTimestampPrefixFormat)
	return filepath.Join(LogDirectory, timestamp+"-errors.log")
}

// PrepareLogFiles tries to create a LogDirectory (if none exists) and a file each to write all logs and filtered error
// logs to. As errors in preparing log files are viewed as optional for the logger setup using this method, partial data
// may be returned in case of errors.
// If log directory or logFile creation fails, no log files are returned.
// If errLog creation fails, a valid logFile is still being returned with an error.
func PrepareLogFiles(fs afero.Fs) (logFile afero.File, errFile afero.File, err error) {
	if err := fs.MkdirAll(LogDirectory, 0777); err != nil {
		return nil, nil, fmt.Errorf("unable to prepare log directory %s: %w", LogDirectory, err)
	}

	logFilePath := LogFilePath()
	logFile, err = fs.OpenFile(logFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to prepare log file %s: %w", logFilePath, err)
	}

	errFilePath := ErrorFilePath()
	errFile, err = fs.OpenFile(errFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return logFile, nil, fmt.Errorf("unable to prepare error file %s: %w", errFilePath, err)
	}

	return logFile, errFile, nil
}
