package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kindredlab/kindred/client"
)

func newFactorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factor",
		Short: "Manage consanguinity factors",
	}
	cmd.AddCommand(factorAddCmd())
	cmd.AddCommand(factorRmCmd())
	cmd.AddCommand(factorClearCmd())
	cmd.AddCommand(factorListCmd())
	return cmd
}

func factorAddCmd() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "add <session> <relationship> <tier>",
		Short: "Add a consanguinity factor",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.AddFactorRequest{
				Relationship: args[1],
				Tier:         args[2],
				Label:        label,
			}
			sess, err := apiClient.Genetics.AddFactor(context.Background(), args[0], req)
			if err != nil {
				fatal("add factor", err)
			}
			output(sess, sess.ID)
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Human-readable note for the factor")
	return cmd
}

func factorRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <session> <factor-id>",
		Short: "Remove a consanguinity factor",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			sess, err := apiClient.Genetics.RemoveFactor(context.Background(), args[0], args[1])
			if err != nil {
				fatal("remove factor", err)
			}
			output(sess, sess.ID)
		},
	}
}

func factorClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <session>",
		Short: "Remove all consanguinity factors",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sess, err := apiClient.Genetics.ClearFactors(context.Background(), args[0])
			if err != nil {
				fatal("clear factors", err)
			}
			output(sess, sess.ID)
		},
	}
}

func factorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <session>",
		Short: "List consanguinity factors",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			factors, total, err := apiClient.Genetics.Factors(context.Background(), args[0])
			if err != nil {
				fatal("list factors", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "RELATIONSHIP", "TIER", "CONTRIBUTION", "LABEL"}
				var rows [][]string
				for _, f := range factors {
					rows = append(rows, []string{f.ID, f.Relationship, f.Tier, formatCoeff(f.Contribution), f.Label})
				}
				formatTable(headers, rows)
				fmt.Printf("total: %s\n", formatCoeff(total))
				return
			}
			output(map[string]any{"factors": factors, "total_factor": total}, "")
		},
	}
}
