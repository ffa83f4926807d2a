// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"bytes"
	"os"
	"os/exec"
	"testing"
)

// AssertArraysEqual fails the test if the two slices differ in length or content.
func AssertArraysEqual[V comparable](t *testing.T, first, second []V) {
	t.Helper()
	if len(first) != len(second) {
		t.Errorf("array sizes differ, %d != %d", len(first), len(second))
		return
	}
	for i := 0; i < len(first); i++ {
		if first[i] != second[i] {
			t.Errorf("assertValues failed: %v != %v", first[i], second[i])
		}
	}
}

// SubProcessResult summarizes a test executed in a child process.
type SubProcessResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunTestInSubProcess re-executes the current test binary running only the
// named test, with the given environment variable set to "1". It is intended
// for testing code paths terminating the process.
func RunTestInSubProcess(t *testing.T, testName, envVar string) SubProcessResult {
	t.Helper()
	path, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to resolve path to test binary: %v", err)
	}

	cmd := exec.Command(path, "-test.run", "^"+testName+"$")
	cmd.Env = append(os.Environ(), envVar+"=1")
	errBuf := new(bytes.Buffer)
	cmd.Stderr = errBuf
	stdBuf := new(bytes.Buffer)
	cmd.Stdout = stdBuf

	res := SubProcessResult{}
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("failed to run sub-process: %v", err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	res.Stdout = stdBuf.String()
	res.Stderr = errBuf.String()
	return res
}
