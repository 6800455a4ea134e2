// Copyright 2025 go-parsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gravitational/trace"
	"github.com/parsort/go-parsort/psort"
	"github.com/parsort/go-parsort/psort/contrib/arrayio"
	"github.com/parsort/go-parsort/psort/contrib/mergesort"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var log = logrus.WithField(trace.Component, "parsort")

// elementTypes lists the values accepted by --type.
var elementTypes = []string{"int32", "int64", "float32", "float64"}

// sortConfig holds the flags of the sort command.
type sortConfig struct {
	input    string
	output   string
	workers  int
	elemType string
}

// checkConfig holds the flags of the check command.
type checkConfig struct {
	input    string
	elemType string
}

func newRootCommand() *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:           "parsort",
		Short:         "Parallel merge sort for numeric arrays stored as MessagePack",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(newSortCommand(), newCheckCommand(), newInfoCommand())
	return root
}

func newSortCommand() *cobra.Command {
	var cfg sortConfig
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort the array stored in a file and write the result to another file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.check(); err != nil {
				return trace.Wrap(err)
			}
			return trace.Wrap(runSort(cfg))
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&cfg.input, "input", "i", "", "Input file (required)")
	flags.StringVarP(&cfg.output, "output", "o", "", "Output file (required)")
	flags.IntVarP(&cfg.workers, "workers", "w", psort.DefaultWorkers(),
		fmt.Sprintf("Number of workers, 1..%d", psort.MaxWorkers))
	addTypeFlag(flags, &cfg.elemType)
	return cmd
}

func newCheckCommand() *cobra.Command {
	var cfg checkConfig
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that the array stored in a file is sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.input == "" {
				return trace.BadParameter("--input is required")
			}
			if err := checkType(cfg.elemType); err != nil {
				return trace.Wrap(err)
			}
			return trace.Wrap(runCheck(cmd.OutOrStdout(), cfg))
		},
	}
	cmd.Flags().StringVarP(&cfg.input, "input", "i", "", "Input file (required)")
	addTypeFlag(cmd.Flags(), &cfg.elemType)
	return cmd
}

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected hardware parallelism",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printInfo(cmd.OutOrStdout())
		},
	}
}

func addTypeFlag(flags *pflag.FlagSet, dst *string) {
	flags.StringVarP(dst, "type", "t", "int64",
		fmt.Sprintf("Element type (%s)", strings.Join(elementTypes, ", ")))
}

func (c sortConfig) check() error {
	if c.input == "" {
		return trace.BadParameter("--input is required")
	}
	if c.output == "" {
		return trace.BadParameter("--output is required")
	}
	if c.workers < 1 || c.workers > psort.MaxWorkers {
		return trace.BadParameter("--workers must be between 1 and %d, got %d", psort.MaxWorkers, c.workers)
	}
	return checkType(c.elemType)
}

func checkType(elemType string) error {
	if !lo.Contains(elementTypes, elemType) {
		return trace.BadParameter("unsupported --type %q, expected one of %s",
			elemType, strings.Join(elementTypes, ", "))
	}
	return nil
}

func runSort(cfg sortConfig) error {
	switch cfg.elemType {
	case "int32":
		return sortFile[int32](cfg)
	case "int64":
		return sortFile[int64](cfg)
	case "float32":
		return sortFile[float32](cfg)
	case "float64":
		return sortFile[float64](cfg)
	}
	return trace.BadParameter("unsupported --type %q", cfg.elemType)
}

func sortFile[T psort.Number](cfg sortConfig) error {
	seq, err := arrayio.Load[T](cfg.input)
	if err != nil {
		return trace.Wrap(err)
	}

	workers := mergesort.EffectiveWorkers(len(seq), cfg.workers)
	log.WithFields(logrus.Fields{
		"elements": humanize.Comma(int64(len(seq))),
		"workers":  workers,
	}).Info("Sorting.")

	mergesort.ParallelSort(seq, cfg.workers)
	if i := mergesort.FirstUnsorted(seq); i >= 0 {
		return trace.Errorf("result is not sorted at index %d", i)
	}

	if err := arrayio.Store(cfg.output, seq); err != nil {
		return trace.Wrap(err)
	}
	log.WithField("output", cfg.output).Info("Sorted array written.")
	return nil
}

func runCheck(w io.Writer, cfg checkConfig) error {
	switch cfg.elemType {
	case "int32":
		return checkFile[int32](w, cfg.input)
	case "int64":
		return checkFile[int64](w, cfg.input)
	case "float32":
		return checkFile[float32](w, cfg.input)
	case "float64":
		return checkFile[float64](w, cfg.input)
	}
	return trace.BadParameter("unsupported --type %q", cfg.elemType)
}

func checkFile[T psort.Number](w io.Writer, path string) error {
	seq, err := arrayio.Load[T](path)
	if err != nil {
		return trace.Wrap(err)
	}
	if i := mergesort.FirstUnsorted(seq); i >= 0 {
		return trace.CompareFailed("%v is not sorted: element %d (%v) is less than element %d (%v)",
			path, i, seq[i], i-1, seq[i-1])
	}
	fmt.Fprintf(w, "%s: %s elements, sorted\n", path, humanize.Comma(int64(len(seq))))
	return nil
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "CPU:              %s\n", psort.CurrentName())
	fmt.Fprintf(w, "Features:         %s\n", strings.Join(psort.CurrentFeatures(), " "))
	fmt.Fprintf(w, "Hardware workers: %d\n", psort.HardwareWorkers())
	fmt.Fprintf(w, "Default workers:  %d\n", psort.DefaultWorkers())
	fmt.Fprintf(w, "Max workers:      %d\n", psort.MaxWorkers)
}
