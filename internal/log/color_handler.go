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

var _ slog.Handler = (*ColorHandler)(nil)

// ColorHandler wraps a handler and colors the message of each record by its level.
type ColorHandler struct {
	handler slog.Handler
}

func NewColorHandler(h slog.Handler) *ColorHandler {
	return &ColorHandler{
		handler: h,
	}
}

func (c *ColorHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return c.handler.Enabled(ctx, l)
}

func (c *ColorHandler) Handle(ctx context.Context, r slog.Record) error {
	r.Message = colorize(levelColor(r.Level), r.Message)
	return c.handler.Handle(ctx, r)
}

func (c *ColorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewColorHandler(c.handler.WithAttrs(attrs))
}

func (c *ColorHandler) WithGroup(name string) slog.Handler {
	return NewColorHandler(c.handler.WithGroup(name))
}

const (
	reset = "\033[0m"

	cyan         = 36
	lightGray    = 37
	lightRed     = 91
	lightYellow  = 93
	lightMagenta = 95
)

func levelColor(l slog.Level) int {
	switch {
	case l < slog.LevelInfo:
		return lightGray
	case l < slog.LevelWarn:
		return cyan
	case l < slog.LevelError:
		return lightYellow
	case l == slog.LevelError:
		return lightRed
	default:
		return lightMagenta
	}
}

func colorize(colorCode int, v string) string {
	return fmt.Sprintf("\033[%dm%s%s", colorCode, v, reset)
}
