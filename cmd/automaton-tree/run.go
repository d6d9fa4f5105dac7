package main

import (
	"errors"
	"fmt"

	automaton "github.com/geange/automaton-tree"
	"github.com/geange/automaton-tree/internal/render"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [input]",
	Short: "Simulate an input and print its computation tree",
	Long:  `Builds the computation tree of the input, prints it as a coloured outline and reports whether the input is accepted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.closer.Close()

		input := ""
		if len(args) > 0 {
			input = args[0]
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		simulate := env.sim.Simulate
		if quiet {
			simulate = env.sim.Check
		}

		res, err := simulate(input)
		if errors.Is(err, automaton.ErrInvalidInput) {
			fmt.Fprintln(cmd.OutOrStdout(), automaton.InvalidInputMessage)
			return err
		}
		if err != nil {
			return err
		}

		if !quiet {
			profile := termenv.NewOutput(cmd.OutOrStdout()).Profile
			r := render.New(env.sim.Automaton())
			if err := r.Text(cmd.OutOrStdout(), res.Root, profile); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Message())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("quiet", "q", false, "Only print the verdict, deciding it without building the tree")
}
