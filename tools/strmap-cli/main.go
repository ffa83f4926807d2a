// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"os"

	"github.com/Fantom-foundation/datastructs/common/report"
	"github.com/urfave/cli/v2"
)

// Run with `go run ./tools/strmap-cli`

func main() {
	reporter := report.Default()
	if err := newApp(reporter).Run(os.Args); err != nil {
		reporter.Fatalf("%v", err)
	}
}

func newApp(reporter report.Reporter) *cli.App {
	return &cli.App{
		Name:      "String Multimap Toolbox",
		HelpName:  "strmap",
		Usage:     "Indexes the words of text files using a string multimap",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags:     []cli.Flag{},
		Metadata:  map[string]any{reporterKey: reporter},
		Commands: []*cli.Command{
			&indexCommand,
			&statsCommand,
		},
	}
}
