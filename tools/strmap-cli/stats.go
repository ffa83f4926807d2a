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
	"github.com/Fantom-foundation/datastructs/backend/array"
	"github.com/urfave/cli/v2"
)

var statsCommand = cli.Command{
	Action:    printStats,
	Name:      "stats",
	Usage:     "prints the bucket occupancy and memory usage of the index of a file",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&bucketsFlag,
		&hashFlag,
		&cpuProfileFlag,
	},
}

func printStats(ctx *cli.Context) error {
	stop, err := startCPUProfile(ctx)
	if err != nil {
		return err
	}
	defer stop()

	index, err := buildIndex(ctx)
	if err != nil {
		return err
	}
	defer index.Release()

	empty, longest, values := 0, 0, 0
	for i := 0; i < index.Buckets(); i++ {
		size := index.BucketSize(i)
		if size == 0 {
			empty++
		}
		if size > longest {
			longest = size
		}
	}
	index.ForEach(func(_ string, lines *array.Array) {
		values += lines.Size()
	})

	reporter := getReporter(ctx)
	reporter.Infof("Keys: %d", index.Size())
	reporter.Infof("Values: %d", values)
	reporter.Infof("Buckets: %d (%d empty)", index.Buckets(), empty)
	reporter.Infof("Longest chain: %d", longest)
	reporter.Infof("Memory:\n%s", index.GetMemoryFootprint())
	return nil
}
