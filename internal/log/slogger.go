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
	"log/slog"
)

// Slogger is a printf-style wrapper around an `slog.Logger` carrying a fixed set of attributes.
type Slogger struct {
	Logger *slog.Logger
}

// logf formats and emits the message only if the logger is enabled for level.
func (w *Slogger) logf(ctx context.Context, level slog.Level, msg string, a []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !w.Logger.Enabled(ctx, level) {
		return
	}
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	w.Logger.Log(ctx, level, msg)
}

func (w *Slogger) Error(msg string, a ...any) { w.logf(context.Background(), slog.LevelError, msg, a) }
func (w *Slogger) Warn(msg string, a ...any)  { w.logf(context.Background(), slog.LevelWarn, msg, a) }
func (w *Slogger) Info(msg string, a ...any)  { w.logf(context.Background(), slog.LevelInfo, msg, a) }
func (w *Slogger) Debug(msg string, a ...any) { w.logf(context.Background(), slog.LevelDebug, msg, a) }

func (w *Slogger) ErrorContext(ctx context.Context, msg string, a ...any) {
	w.logf(ctx, slog.LevelError, msg, a)
}

func (w *Slogger) WarnContext(ctx context.Context, msg string, a ...any) {
	w.logf(ctx, slog.LevelWarn, msg, a)
}

func (w *Slogger) InfoContext(ctx context.Context, msg string, a ...any) {
	w.logf(ctx, slog.LevelInfo, msg, a)
}

func (w *Slogger) DebugContext(ctx context.Context, msg string, a ...any) {
	w.logf(ctx, slog.LevelDebug, msg, a)
}

// With returns a Slogger that adds the given [attribute] values to every record.
func (w *Slogger) With(attributes ...any) *Slogger {
	return &Slogger{Logger: w.Logger.With(attributes...)}
}

// With returns a Slogger on top of the default logger that adds the given [attribute] values to every record.
func With(attributes ...any) *Slogger {
	return &Slogger{Logger: slog.Default().With(attributes...)}
}
