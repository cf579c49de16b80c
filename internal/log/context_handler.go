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
	"log/slog"
)

// CtxKeyCheck context key used for contextual information about the PR check being run
type CtxKeyCheck struct{}

// CtxKeyRun context key used for correlating all logs of one PR check run
type CtxKeyRun struct{}

// contextAttrs maps context keys to the attribute their string value is logged as.
var contextAttrs = []struct {
	key  any
	attr string
}{
	{CtxKeyRun{}, "run"},
	{CtxKeyCheck{}, "check"},
}

// ContextHandler decorates a slog.Handler, adding the run and check found in the context of a log call to its record.
type ContextHandler struct {
	next slog.Handler
}

func NewContextHandler(next slog.Handler) *ContextHandler {
	return &ContextHandler{next: next}
}

func (h *ContextHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		return h.next.Handle(ctx, r)
	}
	for _, ca := range contextAttrs {
		if v, ok := ctx.Value(ca.key).(string); ok {
			r.AddAttrs(slog.String(ca.attr, v))
		}
	}
	return h.next.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewContextHandler(h.next.WithAttrs(attrs))
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return NewContextHandler(h.next.WithGroup(name))
}
