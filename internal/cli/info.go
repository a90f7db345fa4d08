package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Print a summary of one graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInfo(w io.Writer, input string) error {
	f, err := detectFormat(input)
	if err != nil {
		return err
	}
	a, err := readGraph(input, true)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "file:      %s\n", input)
	if c := graphml.CompressionForPath(input); f == formatGraphML && c != graphml.CompressNone {
		fmt.Fprintf(w, "format:    %s (%s)\n", f, c)
	} else {
		fmt.Fprintf(w, "format:    %s\n", f)
	}
	fmt.Fprintf(w, "directed:  %v\n", a.Graph.Directed())
	fmt.Fprintf(w, "vertices:  %d\n", a.Graph.VertexCount())
	fmt.Fprintf(w, "edges:     %d\n", a.Graph.EdgeCount())

	if a.Props.Len() == 0 {
		fmt.Fprintln(w, "properties: none")

		return nil
	}
	fmt.Fprintln(w, "properties:")
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	for _, m := range a.Props.All() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", m.Name(), m.Domain(), m.Kind().TypeName(), valueCount(m))
	}

	return tw.Flush()
}

func valueCount(m *prop.Map) string {
	n := m.Len()
	if _, ok := m.Graph(); ok {
		n++
	}
	if n == 1 {
		return "1 value"
	}

	return fmt.Sprintf("%d values", n)
}
