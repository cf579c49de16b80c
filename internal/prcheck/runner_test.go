//go:build unit

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

package prcheck_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dynatrace/feature-toggles/internal/log"
	"github.com/dynatrace/feature-toggles/internal/prcheck"
)

func TestRunner_AllPassed(t *testing.T) {
	exec := prcheck.NewMockExecutor(gomock.NewController(t))
	exec.EXPECT().Execute(gomock.Any(), "go mod download").Return(prcheck.Output{}, nil)
	exec.EXPECT().Execute(gomock.Any(), "go vet ./...").Return(prcheck.Output{Stdout: "vet noise"}, nil)
	exec.EXPECT().Execute(gomock.Any(), "go run ./cmd/toggles validate").Return(prcheck.Output{Stdout: "Feature flags validation passed (3 flags validated)\n"}, nil)

	var out, errOut bytes.Buffer
	report := prcheck.NewRunner(exec, &out, &errOut, false).Run(context.Background(), prcheck.Config{
		Setup: "go mod download",
		Checks: []prcheck.Check{
			{Name: "Type checking", Command: "go vet ./..."},
			{Name: "Feature flags validation", Command: "go run ./cmd/toggles validate", ShowOutput: true},
		},
	})

	assert.True(t, report.AllPassed())
	assert.Equal(t, 0, report.ExitCode())
	assert.NoError(t, report.SetupErr)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "Type checking", report.Results[0].Name)
	assert.Equal(t, "Feature flags validation", report.Results[1].Name)

	_, err := uuid.Parse(report.RunID)
	assert.NoError(t, err)

	assert.Contains(t, out.String(), "[PASS] Type checking (")
	assert.NotContains(t, out.String(), "vet noise", "output of passing checks is only shown if requested")
	assert.Contains(t, out.String(), "    Feature flags validation passed (3 flags validated)\n")
	assert.Contains(t, out.String(), "All checks passed! (2/2) in ")
	assert.Empty(t, errOut.String())
}

func TestRunner_FailedChecksDoNotStopOthers(t *testing.T) {
	exec := prcheck.NewMockExecutor(gomock.NewController(t))
	exec.EXPECT().Execute(gomock.Any(), "lint").Return(prcheck.Output{Stdout: "main.go:1: unused", Stderr: "lint failed"}, errors.New("exit 1"))
	exec.EXPECT().Execute(gomock.Any(), "test").Return(prcheck.Output{}, nil)
	exec.EXPECT().Execute(gomock.Any(), "build").Return(prcheck.Output{}, errors.New("exit 2"))

	var out, errOut bytes.Buffer
	report := prcheck.NewRunner(exec, &out, &errOut, false).Run(context.Background(), prcheck.Config{
		Checks: []prcheck.Check{
			{Name: "Code linting", Command: "lint"},
			{Name: "Unit tests", Command: "test"},
			{Name: "Build verification", Command: "build"},
		},
	})

	assert.False(t, report.AllPassed())
	assert.Equal(t, 1, report.ExitCode())
	assert.Equal(t, 1, report.PassedCount())
	assert.Equal(t, 2, report.FailedCount())
	assert.False(t, report.Results[0].Passed)
	assert.True(t, report.Results[1].Passed)
	assert.EqualError(t, report.Results[2].Err, "exit 2")

	assert.Contains(t, out.String(), "[FAIL] Code linting (")
	assert.Contains(t, out.String(), "    main.go:1: unused\n")
	assert.Contains(t, errOut.String(), "    lint failed\n")
	assert.Contains(t, out.String(), "2 check(s) failed (1/3) in ")
}

func TestRunner_SetupFailureIsOnlyAWarning(t *testing.T) {
	exec := prcheck.NewMockExecutor(gomock.NewController(t))
	exec.EXPECT().Execute(gomock.Any(), "setup").Return(prcheck.Output{Stderr: "no network"}, errors.New("exit 1"))
	exec.EXPECT().Execute(gomock.Any(), "check").Return(prcheck.Output{}, nil)

	var out, errOut bytes.Buffer
	report := prcheck.NewRunner(exec, &out, &errOut, false).Run(context.Background(), prcheck.Config{
		Setup:  "setup",
		Checks: []prcheck.Check{{Name: "Check", Command: "check"}},
	})

	assert.True(t, report.AllPassed())
	assert.Error(t, report.SetupErr)
	assert.Contains(t, out.String(), "[WARN] setup failed, continuing anyway")
	assert.Contains(t, errOut.String(), "no network")
}

func TestRunner_ContextCarriesRunAndCheck(t *testing.T) {
	var gotRun, gotCheck atomic.Value

	exec := prcheck.NewMockExecutor(gomock.NewController(t))
	exec.EXPECT().Execute(gomock.Any(), "check").DoAndReturn(func(ctx context.Context, _ string) (prcheck.Output, error) {
		gotRun.Store(ctx.Value(log.CtxKeyRun{}))
		gotCheck.Store(ctx.Value(log.CtxKeyCheck{}))
		return prcheck.Output{}, nil
	})

	report := prcheck.NewRunner(exec, &bytes.Buffer{}, &bytes.Buffer{}, false).Run(context.Background(), prcheck.Config{
		Checks: []prcheck.Check{{Name: "My check", Command: "check"}},
	})

	assert.Equal(t, report.RunID, gotRun.Load())
	assert.Equal(t, "My check", gotCheck.Load())
}

// blockingExecutor tracks how many commands run at the same time
type blockingExecutor struct {
	active    atomic.Int32
	maxActive atomic.Int32
	wait      time.Duration
}

func (e *blockingExecutor) Execute(ctx context.Context, _ string) (prcheck.Output, error) {
	n := e.active.Add(1)
	defer e.active.Add(-1)
	for {
		m := e.maxActive.Load()
		if n <= m || e.maxActive.CompareAndSwap(m, n) {
			break
		}
	}
	select {
	case <-time.After(e.wait):
		return prcheck.Output{}, nil
	case <-ctx.Done():
		return prcheck.Output{}, ctx.Err()
	}
}

func checks(n int) []prcheck.Check {
	var c []prcheck.Check
	for i := 0; i < n; i++ {
		c = append(c, prcheck.Check{Name: strings.Repeat("c", i+1), Command: "sleep"})
	}
	return c
}

func TestRunner_ParallelLimit(t *testing.T) {
	exec := &blockingExecutor{wait: 20 * time.Millisecond}

	report := prcheck.NewRunner(exec, &bytes.Buffer{}, &bytes.Buffer{}, false).Run(context.Background(), prcheck.Config{
		Parallel: 1,
		Checks:   checks(4),
	})

	assert.True(t, report.AllPassed())
	assert.Equal(t, int32(1), exec.maxActive.Load())
}

// barrierExecutor only returns once all expected commands have been started
type barrierExecutor struct {
	wg sync.WaitGroup
}

func (e *barrierExecutor) Execute(_ context.Context, _ string) (prcheck.Output, error) {
	e.wg.Done()
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return prcheck.Output{}, nil
	case <-time.After(5 * time.Second):
		return prcheck.Output{}, errors.New("checks did not run concurrently")
	}
}

func TestRunner_UnlimitedRunsAllChecksConcurrently(t *testing.T) {
	exec := &barrierExecutor{}
	exec.wg.Add(6)

	report := prcheck.NewRunner(exec, &bytes.Buffer{}, &bytes.Buffer{}, false).Run(context.Background(), prcheck.Config{
		Checks: checks(6),
	})

	assert.True(t, report.AllPassed(), report.Summary())
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := prcheck.NewRunner(&blockingExecutor{wait: time.Minute}, &bytes.Buffer{}, &bytes.Buffer{}, false).Run(ctx, prcheck.Config{
		Checks: checks(2),
	})

	assert.Equal(t, 2, report.FailedCount())
	assert.ErrorIs(t, report.Results[0].Err, context.Canceled)
}
