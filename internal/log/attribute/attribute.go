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

package attribute

import (
	"fmt"
	"log/slog"
	"time"
)

// Flag builds an attribute containing a feature flag name and value
func Flag(name string, enabled bool) slog.Attr {
	return slog.Any("flag",
		struct {
			Name    string `json:"name"`
			Enabled bool   `json:"enabled"`
		}{
			name,
			enabled,
		})
}

// File builds an attribute containing the path of a file being read or validated
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Error builds an attribute containing error information for structured logging
func Error(err error) slog.Attr {
	return slog.Any(
		"error",
		struct {
			Type    string `json:"type"`
			Details string `json:"details"`
		}{
			Type:    fmt.Sprintf("%T", err),
			Details: err.Error(),
		})
}

const checkStatus = "checkStatus"

func StatusRunning() slog.Attr {
	return slog.Any(checkStatus, "running")
}

func StatusPassed() slog.Attr {
	return slog.Any(checkStatus, "passed")
}

func StatusFailed() slog.Attr {
	return slog.Any(checkStatus, "failed")
}

// Duration builds an attribute holding a duration in milliseconds
func Duration(d time.Duration) slog.Attr {
	return slog.Int64("durationMs", d.Milliseconds())
}
