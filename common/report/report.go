// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package report

//go:generate mockgen -source report.go -destination report_mocks.go -package report

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Reporter is the sink for diagnostics produced by the containers of this
// module. Fatalf is the single path through which contract violations and
// allocation failures are surfaced when using the fail-fast facades.
type Reporter interface {
	// Infof emits a diagnostic without affecting the control flow.
	Infof(format string, args ...any)
	// Fatalf emits a diagnostic and terminates the process. Implementations
	// used in tests may return instead.
	Fatalf(format string, args ...any)
}

// LogReporter is a Reporter printing INFO lines to one writer and ERROR lines
// to another. Fatalf exits the process with status 1.
type LogReporter struct {
	info *log.Logger
	err  *log.Logger
	exit func(int)
}

// NewLogReporter creates a reporter writing to the given streams.
func NewLogReporter(info, err io.Writer) *LogReporter {
	return &LogReporter{
		info: log.New(info, "INFO: ", 0),
		err:  log.New(err, "ERROR: ", 0),
		exit: os.Exit,
	}
}

// Default returns a reporter writing to stdout and stderr.
func Default() *LogReporter {
	return NewLogReporter(os.Stdout, os.Stderr)
}

func (r *LogReporter) Infof(format string, args ...any) {
	r.info.Output(2, fmt.Sprintf(format, args...))
}

func (r *LogReporter) Fatalf(format string, args ...any) {
	r.err.Output(2, fmt.Sprintf(format, args...))
	r.exit(1)
}
