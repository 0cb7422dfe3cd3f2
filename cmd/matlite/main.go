// Package main provides the matlite CLI: resolver status, benchmark
// comparison, and a worked demonstration of the matrix operators.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matlite-ml/matlite/internal/backend/generic"
	"github.com/matlite-ml/matlite/internal/backend/native"
	"github.com/matlite-ml/matlite/internal/bench"
	"github.com/matlite-ml/matlite/internal/matrix"
)

var (
	flagKernelLib string
	flagKernelSrc string
	flagNoNative  bool
)

func main() {
	root := &cobra.Command{
		Use:          "matlite",
		Short:        "2-D matrix arithmetic with optional native kernels",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagKernelLib, "kernel-lib", "", "path to a pre-built kernel library")
	root.PersistentFlags().StringVar(&flagKernelSrc, "kernel-src", "", "kernel source tree for the toolchain-build strategy")
	root.PersistentFlags().BoolVar(&flagNoNative, "no-native", false, "skip native kernel resolution")

	root.AddCommand(infoCmd(), benchCmd(), demoCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolve runs kernel resolution once for this invocation, reporting
// progress on stderr.
func resolve() (*native.Backend, native.Status) {
	return native.Resolve(native.Options{
		LibraryPath:  flagKernelLib,
		SourceDir:    flagKernelSrc,
		StatusWriter: os.Stderr,
		Disable:      flagNoNative,
	})
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show kernel resolution status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, status := resolve()
			fmt.Fprintf(cmd.OutOrStdout(), "accelerated: %t\n", status.Available)
			fmt.Fprintf(cmd.OutOrStdout(), "strategy:    %s\n", status.Strategy)
			if backend != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "library:     %s\n", backend.Library())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cpu:         %s\n", status.CPU)
			return nil
		},
	}
}

func benchCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time each operation on the generic and native kernels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, status := resolve()
			var accelerated matrix.Kernels
			if backend != nil {
				accelerated = backend
			} else {
				fmt.Fprintln(os.Stderr, "bench: accelerated kernels unavailable, timing generic kernels only")
			}

			runner := bench.New(generic.New(), accelerated, cfg)
			results, err := runner.Run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cpu: %s\n\n", status.CPU)
			return bench.WriteReport(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().IntSliceVar(&cfg.Sizes, "sizes", cfg.Sizes, "square matrix sizes to sweep")
	cmd.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "timed iterations per operation")
	return cmd
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a worked chain of matrix operations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, status := resolve()
			var kern matrix.Kernels
			if backend != nil {
				kern = backend
			} else {
				kern = generic.New()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kernels: %s (%s strategy)\n\n", kern.Name(), status.Strategy)

			a, err := matrix.New([][]float64{{1, 2}, {3, 4}}, kern)
			if err != nil {
				return err
			}
			b, err := matrix.New([][]float64{{5}, {6}}, kern)
			if err != nil {
				return err
			}

			sum, err := a.Add(b)
			if err != nil {
				return err
			}
			diff, err := a.Sub(b)
			if err != nil {
				return err
			}
			sq, err := diff.Pow(matrix.Scalar(2))
			if err != nil {
				return err
			}
			final, err := sum.MatMul(sq)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "A        = %s\n", a)
			fmt.Fprintf(out, "B        = %s\n", b)
			fmt.Fprintf(out, "A+B      = %s\n", sum)
			fmt.Fprintf(out, "A-B      = %s\n", diff)
			fmt.Fprintf(out, "(A-B)**2 = %s\n", sq)
			fmt.Fprintf(out, "result   = %s\n", final)
			return nil
		},
	}
}
