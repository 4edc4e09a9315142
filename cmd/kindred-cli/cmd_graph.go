package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <session>",
		Short: "Show a session's pedigree graph",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			g, err := apiClient.Pedigree.Graph(context.Background(), args[0])
			if err != nil {
				fatal("get graph", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "SEX", "GEN", "LABEL"}
				var rows [][]string
				for _, p := range g.Persons {
					rows = append(rows, []string{p.ID, p.Sex, fmt.Sprintf("%d", p.Generation), p.Label})
				}
				formatTable(headers, rows)
				return
			}
			output(g, "")
		},
	}
}

func newSexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sex <session> <person>",
		Short: "Toggle a person's sex",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			sess, err := apiClient.Pedigree.ToggleSex(context.Background(), args[0], args[1])
			if err != nil {
				fatal("toggle sex", err)
			}
			output(sess, sess.ID)
		},
	}
}
