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

//go:generate mockgen -source=executor.go -destination=executor_mock.go -package=prcheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Output is what a command printed.
type Output struct {
	Stdout string
	Stderr string
}

// Executor runs shell commands.
type Executor interface {
	// Execute runs command and returns its output. The error is non-nil if the command could not be started or
	// exited with a non-zero status.
	Execute(ctx context.Context, command string) (Output, error)
}

// ShellExecutor runs commands with `sh -c` in Dir, or the current working directory if Dir is empty.
type ShellExecutor struct {
	Dir string
}

var _ Executor = (*ShellExecutor)(nil)

func (e ShellExecutor) Execute(ctx context.Context, command string) (Output, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = e.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, fmt.Errorf("command %q exited with code %d", command, exitErr.ExitCode())
	}
	if err != nil {
		return out, fmt.Errorf("failed to run command %q: %w", command, err)
	}
	return out, nil
}
