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
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dynatrace/feature-toggles/internal/log"
	"github.com/dynatrace/feature-toggles/internal/log/attribute"
)

type styles struct {
	header lipgloss.Style
	step   lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
	warn   lipgloss.Style
}

func newStyles(colored bool) styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return styles{header: plain, step: plain, pass: plain, fail: plain, warn: plain}
	}
	return styles{
		header: lipgloss.NewStyle().Bold(true),
		step:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Runner runs the checks of a Config concurrently and prints their progress.
type Runner struct {
	executor Executor
	out      io.Writer
	errOut   io.Writer
	styles   styles

	// guards out and errOut, so the output of one check is never interleaved with another
	mu sync.Mutex
}

// NewRunner creates a Runner printing progress and check output to out and error output of failed checks to errOut.
func NewRunner(executor Executor, out, errOut io.Writer, colored bool) *Runner {
	return &Runner{
		executor: executor,
		out:      out,
		errOut:   errOut,
		styles:   newStyles(colored),
	}
}

// Run executes the setup command of cfg and then all of its checks. Every check runs to completion, independent of
// the outcome of the others. Canceling ctx kills running commands, which are reported as failed.
func (r *Runner) Run(ctx context.Context, cfg Config) Report {
	start := time.Now()
	runID := uuid.NewString()
	ctx = context.WithValue(ctx, log.CtxKeyRun{}, runID)

	r.printf(r.out, "%s\n\n", r.styles.header.Render(fmt.Sprintf("Running %d PR checks...", len(cfg.Checks))))
	log.DebugContext(ctx, "Starting PR check run with %d checks (parallel: %d)", len(cfg.Checks), cfg.Parallel)

	report := Report{RunID: runID}
	if cfg.Setup != "" {
		report.SetupErr = r.setup(ctx, cfg.Setup)
	}

	results := make([]Result, len(cfg.Checks))

	var g errgroup.Group
	if cfg.Parallel > 0 {
		g.SetLimit(cfg.Parallel)
	}
	for i, c := range cfg.Checks {
		g.Go(func() error {
			results[i] = r.runCheck(ctx, c)
			return nil
		})
	}
	_ = g.Wait() // checks never return errors, failures are part of their result

	report.Results = results
	report.Duration = time.Since(start)

	style := r.styles.pass
	if !report.AllPassed() {
		style = r.styles.fail
	}
	r.printf(r.out, "\n%s\n", style.Render(report.Summary()))
	log.DebugContext(ctx, "%s", report.Summary())
	return report
}

func (r *Runner) setup(ctx context.Context, command string) error {
	r.printf(r.out, "%s %s\n", r.styles.step.Render("[SETUP]"), command)

	out, err := r.executor.Execute(ctx, command)
	if err != nil {
		log.WarnContext(ctx, "Setup command failed, continuing anyway: %v", err)
		r.printf(r.out, "%s setup failed, continuing anyway: %v\n", r.styles.warn.Render("[WARN]"), err)
		r.printOutput(out)
		return fmt.Errorf("setup %q failed: %w", command, err)
	}
	return nil
}

func (r *Runner) runCheck(ctx context.Context, c Check) Result {
	ctx = context.WithValue(ctx, log.CtxKeyCheck{}, c.Name)
	logger := log.With(attribute.StatusRunning())

	r.printf(r.out, "%s %s...\n", r.styles.step.Render("[CHECK]"), c.Name)
	logger.DebugContext(ctx, "Running %q", c.Command)

	start := time.Now()
	out, err := r.executor.Execute(ctx, c.Command)
	res := Result{
		Name:     c.Name,
		Passed:   err == nil,
		Duration: time.Since(start),
		Output:   out,
		Err:      err,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if res.Passed {
		log.With(attribute.StatusPassed(), attribute.Duration(res.Duration)).DebugContext(ctx, "Check passed")
		fmt.Fprintf(r.out, "%s %s (%dms)\n", r.styles.pass.Render("[PASS]"), c.Name, res.Duration.Milliseconds())
		if c.ShowOutput {
			writeIndented(r.out, out.Stdout)
		}
		return res
	}

	log.With(attribute.StatusFailed(), attribute.Duration(res.Duration), attribute.Error(err)).WarnContext(ctx, "Check failed")
	fmt.Fprintf(r.out, "%s %s (%dms)\n", r.styles.fail.Render("[FAIL]"), c.Name, res.Duration.Milliseconds())
	writeIndented(r.out, out.Stdout)
	writeIndented(r.errOut, out.Stderr)
	return res
}

func (r *Runner) printOutput(out Output) {
	r.mu.Lock()
	defer r.mu.Unlock()
	writeIndented(r.out, out.Stdout)
	writeIndented(r.errOut, out.Stderr)
}

func (r *Runner) printf(w io.Writer, format string, a ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(w, format, a...)
}

func writeIndented(w io.Writer, s string) {
	s = strings.TrimRight(s, "\n")
	if strings.TrimSpace(s) == "" {
		return
	}
	for _, line := range strings.Split(s, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}
