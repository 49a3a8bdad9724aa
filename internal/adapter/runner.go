// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// execRunner is the production [CommandRunner]: it runs the command as a
// subprocess with a closed stdin and a per-invocation timeout.
type execRunner struct {
	timeout time.Duration
}

func newExecRunner(timeout time.Duration) CommandRunner {
	return &execRunner{timeout: timeout}
}

// Run implements [CommandRunner]. On a non-zero exit the error carries the
// command's trimmed stderr, which for bw holds the human-readable failure
// reason; bw does not echo secrets there.
func (r *execRunner) Run(ctx context.Context, binary string, spec CommandSpec) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, spec.Args...)
	cmd.Env = spec.Env
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", binary, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", binary, err)
	}

	return stdout.Bytes(), nil
}
