package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const precisionEnv = "GRADLAB_PRECISION"

type options struct {
	precision int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "gradlab",
		Short:        "Scalar operators and functional combinators",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolvePrecision(cmd)
		},
	}
	root.PersistentFlags().IntVarP(&opts.precision, "precision", "p", 6,
		"decimal places in printed results (env "+precisionEnv+")")

	root.AddCommand(
		newVersionCmd(),
		newApplyCmd(opts),
		newListCmd(opts),
	)
	return root
}

// resolvePrecision falls back to the environment when the flag was not given.
func (o *options) resolvePrecision(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("precision") {
		if v, ok := os.LookupEnv(precisionEnv); ok {
			p, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(err, "invalid %s", precisionEnv)
			}
			o.precision = p
		}
	}
	if o.precision < 0 {
		return fmt.Errorf("precision must be non-negative, got %d", o.precision)
	}
	return nil
}

func (o *options) format(v float64) string {
	return strconv.FormatFloat(v, 'f', o.precision, 64)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gradlab %s\n", version)
		},
	}
}

func newApplyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <op> <x> [y]",
		Short: "Evaluate one scalar operator",
		Long: "Evaluate one scalar operator.\n\n" +
			"Unary:  " + strings.Join(sortedKeys(unaryOps), ", ") + "\n" +
			"Binary: " + strings.Join(sortedKeys(binaryOps), ", ") + "\n" +
			"Predicates: " + strings.Join(sortedKeys(predicateOps), ", ") + "\n\n" +
			"Use -- before negative arguments: gradlab apply neg -- -2",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			out, err := evalOp(args[0], xs, opts.format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list <helper> <values> [values]",
		Short: "Evaluate a list helper on comma-separated values",
		Long: "Evaluate a list helper on comma-separated values.\n\n" +
			"Helpers: " + strings.Join(sortedKeys(listHelpers), ", ") + "\n\n" +
			"Example: gradlab list add 1,2,3 4,5,6",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := make([][]float64, 0, len(args)-1)
			for _, a := range args[1:] {
				xs, err := parseList(a)
				if err != nil {
					return err
				}
				lists = append(lists, xs)
			}
			out, err := evalList(args[0], lists, opts.format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		xs[i] = v
	}
	return xs, nil
}

func parseList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}
	return parseFloats(strings.Split(s, ","))
}
