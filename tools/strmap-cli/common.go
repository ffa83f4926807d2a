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
	"bufio"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"unicode"

	"github.com/Fantom-foundation/datastructs/backend/multimap"
	"github.com/Fantom-foundation/datastructs/common"
	"github.com/Fantom-foundation/datastructs/common/report"
	"github.com/urfave/cli/v2"
)

const reporterKey = "reporter"

var (
	bucketsFlag = cli.IntFlag{
		Name:  "buckets",
		Usage: "the number of buckets of the index",
		Value: 1024,
	}
	hashFlag = cli.StringFlag{
		Name:  "hash",
		Usage: "the hash function used to select buckets: default, xxhash or keccak",
		Value: "xxhash",
	}
	cpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "enables CPU profiling, the profile is written to the given file",
	}
)

var lineSerializer = common.Uint32Serializer{}

func getReporter(ctx *cli.Context) report.Reporter {
	return ctx.App.Metadata[reporterKey].(report.Reporter)
}

// buildIndex maps every word of the given file to the 1-based numbers of the
// lines it occurs in. Words are lower-cased sequences of letters and digits.
func buildIndex(ctx *cli.Context) (*multimap.StrMap, error) {
	if ctx.NArg() < 1 {
		return nil, fmt.Errorf("missing input file")
	}
	hasher, err := multimap.HasherByName(ctx.String(hashFlag.Name))
	if err != nil {
		return nil, err
	}
	index, err := multimap.NewStrMap(lineSerializer.Size(), ctx.Int(bucketsFlag.Name), hasher)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(ctx.Args().First())
	if err != nil {
		index.Release()
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for line := uint32(1); scanner.Scan(); line++ {
		for _, word := range splitWords(scanner.Text()) {
			if err := index.Add(word, lineSerializer.ToBytes(line)); err != nil {
				index.Release()
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		index.Release()
		return nil, err
	}
	return index, nil
}

func splitWords(line string) []string {
	words := strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return words
}

func startCPUProfile(ctx *cli.Context) (stop func(), err error) {
	profileName := ctx.String(cpuProfileFlag.Name)
	if profileName == "" {
		return func() {}, nil
	}
	f, err := os.Create(profileName)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %s", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %s", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
