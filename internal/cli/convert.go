package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// convertOpts holds the convert command flags.
type convertOpts struct {
	storeIDs bool
	shape    dotShape
}

func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Read a graph in one format and write it in another",
		Long: `Convert reads the input graph and writes it under the format the output
extension names: .graphml (optionally .gz or .zst), .yaml, .dot or .db.
DOT is write-only; everything else round-trips.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("store-ids") {
				opts.storeIDs = cfg.StoreIDs
			}
			if !cmd.Flags().Changed("label") {
				opts.shape.label = cfg.Render.Label
			}
			if !cmd.Flags().Changed("properties") {
				opts.shape.allProps = cfg.Render.Properties
			}

			return runConvert(cmd.Context(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.storeIDs, "store-ids", false, "keep original node and edge ids")
	cmd.Flags().StringVar(&opts.shape.name, "graph-name", "", "graph name for DOT output")
	cmd.Flags().StringVar(&opts.shape.label, "label", "", "vertex property used as DOT labels")
	cmd.Flags().BoolVar(&opts.shape.allProps, "properties", false, "emit all properties as DOT attributes")

	return cmd
}

func runConvert(ctx context.Context, input, output string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	a, err := readGraph(input, opts.storeIDs)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d vertices, %d edges, %d properties",
		input, a.Graph.VertexCount(), a.Graph.EdgeCount(), a.Props.Len())

	if err := writeGraph(ctx, output, a, opts.shape); err != nil {
		return err
	}
	p.done("Wrote " + output)

	return nil
}
