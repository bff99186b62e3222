package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/demo"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the demo tree visualization",
	Long:  `Validates the demo guard's behavior tree and outputs a Mermaid diagram (graph TD) of it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := demo.NewBrain(rand.New(rand.NewPCG(1, 1)), demo.NewPrinter(io.Discard, false), 0).Tree()
		if err := arbor.Validate(root); err != nil {
			return fmt.Errorf("invalid tree: %w", err)
		}

		output := graph.GenerateMermaid(root, nil)
		if render, _ := cmd.Flags().GetBool("render"); render {
			renderer, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			output, err = renderer("# Guard\n\n```mermaid\n" + output + "```\n")
			if err != nil {
				return err
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("render", false, "Render as markdown for the terminal")
}
