package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			output(resp, resp.Status)
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate service statistics",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Stats(context.Background())
			if err != nil {
				fatal("stats", err)
			}
			if flagFmt == "table" {
				formatTable(
					[]string{"METRIC", "VALUE"},
					[][]string{
						{"Active Sessions", fmt.Sprintf("%d", resp.ActiveSessions)},
						{"Max Sessions", fmt.Sprintf("%d", resp.MaxSessions)},
						{"Sessions Created", fmt.Sprintf("%d", resp.SessionsCreated)},
						{"Computations", fmt.Sprintf("%d", resp.Computations)},
						{"Persons", fmt.Sprintf("%d", resp.Persons)},
						{"Edges", fmt.Sprintf("%d", resp.Edges)},
						{"WS Clients", fmt.Sprintf("%d", resp.WSClients)},
						{"Session TTL", resp.SessionTTL},
					},
				)
				return
			}
			output(resp, "")
		},
	}
}
