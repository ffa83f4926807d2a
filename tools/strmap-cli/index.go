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
	"strconv"
	"strings"

	"github.com/Fantom-foundation/datastructs/backend/array"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

var indexCommand = cli.Command{
	Action:    printIndex,
	Name:      "index",
	Usage:     "prints the lines the given words occur in, or the full index if no words are given",
	ArgsUsage: "<file> [word...]",
	Flags: []cli.Flag{
		&bucketsFlag,
		&hashFlag,
		&cpuProfileFlag,
	},
}

func printIndex(ctx *cli.Context) error {
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

	reporter := getReporter(ctx)
	words := ctx.Args().Tail()
	if len(words) == 0 {
		index.ForEach(func(key string, _ *array.Array) {
			words = append(words, key)
		})
		slices.Sort(words)
	}
	for _, word := range words {
		lines, found := index.GetValues(strings.ToLower(word))
		if !found {
			reporter.Infof("%s: not found", word)
			continue
		}
		reporter.Infof("%s: %s", word, formatLines(lines))
	}
	return nil
}

// formatLines renders the line numbers of a word in ascending order.
func formatLines(lines *array.Array) string {
	typed, err := array.TypedOf[uint32](lines, lineSerializer)
	if err != nil {
		return err.Error()
	}
	numbers := typed.Values()
	slices.Sort(numbers)
	numbers = slices.Compact(numbers)
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return strings.Join(parts, ", ")
}
