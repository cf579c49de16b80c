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
	"errors"
	"log/slog"
	"slices"
	"sync"
)

var _ slog.Handler = (*TeeHandler)(nil)

// TeeHandler fans records out to several handlers, e.g. the console and a test spy.
type TeeHandler struct {
	mu       *sync.Mutex
	handlers []slog.Handler
}

func NewTeeHandler(h ...slog.Handler) *TeeHandler {
	return &TeeHandler{
		handlers: h,
		mu:       &sync.Mutex{},
	}
}

// Enabled reports whether any delegate accepts the level.
func (t *TeeHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return slices.ContainsFunc(t.handlers, func(h slog.Handler) bool {
		return h.Enabled(ctx, l)
	})
}

// Handle passes the record to every delegate enabled for its level. Records are handled one at a time so lines of
// concurrent writers are not interleaved across sinks.
func (t *TeeHandler) Handle(ctx context.Context, r slog.Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var errs []error
	for _, h := range t.handlers {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t *TeeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.derive(func(h slog.Handler) slog.Handler {
		return h.WithAttrs(slices.Clone(attrs))
	})
}

func (t *TeeHandler) WithGroup(name string) slog.Handler {
	return t.derive(func(h slog.Handler) slog.Handler {
		return h.WithGroup(name)
	})
}

func (t *TeeHandler) derive(f func(slog.Handler) slog.Handler) *TeeHandler {
	derived := make([]slog.Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		derived = append(derived, f(h))
	}
	return &TeeHandler{handlers: derived, mu: t.mu}
}
