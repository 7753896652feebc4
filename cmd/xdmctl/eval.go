package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/xdmkit/runtime"
	"github.com/joshuapare/xdmkit/runtime/sequence"
	"github.com/joshuapare/xdmkit/xdm"
	"github.com/joshuapare/xdmkit/xdm/printer"
)

var evalOutput string

func init() {
	rootCmd.AddCommand(newEvalCmd())
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <op> <left> <right>",
		Short: "Apply a set operator to two encoded node sequences",
		Long: fmt.Sprintf(`The eval command applies union, intersect or except to two inputs and
prints the resulting sequence. Inputs are encoded files or YAML fixtures.

Operators: %s

Example:
  xdmctl eval union a.xdm b.xdm
  xdmctl eval op:except a.yaml b.yaml -o diff.xdm`, strings.Join(sequence.Operators(), ", ")),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args)
		},
	}
	cmd.Flags().StringVarP(&evalOutput, "output", "o", "", "Also write the encoded result to this file")
	addPrintFlags(cmd)
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	popts, err := printerOptions()
	if err != nil {
		return err
	}

	left, err := loadInput(args[1])
	if err != nil {
		return err
	}
	defer left.Close()
	right, err := loadInput(args[2])
	if err != nil {
		return err
	}
	defer right.Close()

	f, err := sequence.NewFactory(args[0],
		runtime.ConstantFactory{Value: left.data},
		runtime.ConstantFactory{Value: right.data},
	)
	if err != nil {
		return err
	}
	opts := runtime.DefaultOptions()
	opts.Logger = logger
	// Inputs are validated on load.
	opts.ValidateArguments = false
	ev, err := f.CreateScalarEvaluator(runtime.NewTaskContext(0, opts))
	if err != nil {
		return err
	}

	var result xdm.Pointable
	if err := ev.Evaluate(runtime.Tuple{}, &result); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if evalOutput != "" {
		if err := os.WriteFile(evalOutput, result.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", evalOutput, err)
		}
	}
	if quiet {
		return nil
	}
	return printer.New(cmd.OutOrStdout(), popts).Print(result.Bytes())
}
