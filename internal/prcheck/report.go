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

package prcheck

import (
	"fmt"
	"time"
)

// Result is the outcome of one check.
type Result struct {
	Name     string
	Passed   bool
	Duration time.Duration
	Output   Output
	// Err is set if the check failed
	Err error
}

// Report is the outcome of a PR check run. Results are in the order the checks were configured.
type Report struct {
	RunID    string
	Results  []Result
	Duration time.Duration
	// SetupErr is set if the setup command failed. It does not fail the run.
	SetupErr error
}

// PassedCount returns the number of passed checks.
func (r Report) PassedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// FailedCount returns the number of failed checks.
func (r Report) FailedCount() int {
	return len(r.Results) - r.PassedCount()
}

func (r Report) AllPassed() bool {
	return r.FailedCount() == 0
}

// Summary is the final line of a run.
func (r Report) Summary() string {
	if r.AllPassed() {
		return fmt.Sprintf("All checks passed! (%d/%d) in %dms", r.PassedCount(), len(r.Results), r.Duration.Milliseconds())
	}
	return fmt.Sprintf("%d check(s) failed (%d/%d) in %dms", r.FailedCount(), r.PassedCount(), len(r.Results), r.Duration.Milliseconds())
}

// ExitCode is 0 if all checks passed and 1 otherwise.
func (r Report) ExitCode() int {
	if r.AllPassed() {
		return 0
	}
	return 1
}
