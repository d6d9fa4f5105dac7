package main

import (
	"encoding/json"
	"fmt"

	"github.com/geange/automaton-tree/internal/render"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [input]",
	Short: "Export the computation tree for an external renderer",
	Long:  `Builds the computation tree of the input and writes it as a Mermaid flowchart, Graphviz DOT or hierarchy JSON.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "mermaid" && format != "dot" && format != "json" {
			return fmt.Errorf("unknown format %q", format)
		}

		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.closer.Close()

		input := ""
		if len(args) > 0 {
			input = args[0]
		}
		res, err := env.sim.Simulate(input)
		if err != nil {
			return err
		}

		r := render.New(env.sim.Automaton())
		out := cmd.OutOrStdout()
		switch format {
		case "dot":
			fmt.Fprint(out, r.DOT(res.Root))
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(r.Hierarchy(res.Root))
		default:
			fmt.Fprint(out, r.Mermaid(res.Root))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format (mermaid, dot, json)")
}
