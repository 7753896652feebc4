package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/xdmkit/internal/fixture"
)

var (
	encodeOutput string
	encodeIndex  int
)

func init() {
	rootCmd.AddCommand(newEncodeCmd())
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <fixture.yaml>",
		Short: "Encode a YAML fixture into the binary value format",
		Long: `The encode command reads a YAML fixture and writes one of its documents
as an encoded tagged value.

Example:
  xdmctl encode nodes.yaml -o nodes.xdm
  xdmctl encode nodes.yaml --index 2 -o third.xdm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args)
		},
	}
	cmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Output file (required)")
	cmd.Flags().IntVar(&encodeIndex, "index", 0, "Document index within the fixture")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	values, err := fixture.LoadFile(args[0], fixture.Options{Charset: charset})
	if err != nil {
		return err
	}
	if encodeIndex < 0 || encodeIndex >= len(values) {
		return fmt.Errorf("index %d out of range: %s has %d documents", encodeIndex, args[0], len(values))
	}
	data := values[encodeIndex]
	if err := os.WriteFile(encodeOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", encodeOutput, err)
	}
	logger.Debug("encoded fixture", "input", args[0], "index", encodeIndex, "bytes", len(data))

	if jsonOut {
		return printJSON(cmd, map[string]any{
			"input":  args[0],
			"index":  encodeIndex,
			"output": encodeOutput,
			"bytes":  len(data),
		})
	}
	printInfo(cmd, "Wrote %s to %s\n", humanize.Bytes(uint64(len(data))), encodeOutput)
	return nil
}
