package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kindredlab/kindred/client"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage pedigree sessions",
	}
	cmd.AddCommand(sessionNewCmd())
	cmd.AddCommand(sessionListCmd())
	cmd.AddCommand(sessionShowCmd())
	cmd.AddCommand(sessionRmCmd())
	cmd.AddCommand(sessionTemplateCmd())
	cmd.AddCommand(sessionResetCmd())
	cmd.AddCommand(sessionHistoryCmd())
	return cmd
}

func sessionNewCmd() *cobra.Command {
	var sexA, sexB string
	cmd := &cobra.Command{
		Use:   "new <relationship>",
		Short: "Create a session from a relationship archetype",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateSessionRequest{
				Relationship: args[0],
				PersonASex:   sexA,
				PersonBSex:   sexB,
			}
			sess, err := apiClient.Sessions.Create(context.Background(), req)
			if err != nil {
				fatal("create session", err)
			}
			output(sess, sess.ID)
		},
	}
	cmd.Flags().StringVar(&sexA, "sex-a", "", "Sex of person A (M|F, default M)")
	cmd.Flags().StringVar(&sexB, "sex-b", "", "Sex of person B (M|F, default F)")
	return cmd
}

func sessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active sessions",
		Run: func(cmd *cobra.Command, args []string) {
			sessions, err := apiClient.Sessions.List(context.Background())
			if err != nil {
				fatal("list sessions", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "ARCHETYPE", "PERSONS", "UPDATED"}
				var rows [][]string
				for _, s := range sessions {
					rows = append(rows, []string{s.ID, s.Archetype, fmt.Sprintf("%d", s.Persons), s.UpdatedAt.Format("2006-01-02 15:04:05")})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, s := range sessions {
					fmt.Println(s.ID)
				}
				return
			}
			output(sessions, "")
		},
	}
}

func sessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full session snapshot",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sess, err := apiClient.Sessions.Get(context.Background(), args[0])
			if err != nil {
				fatal("get session", err)
			}
			output(sess, sess.ID)
		},
	}
}

func sessionRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Sessions.Delete(context.Background(), args[0]); err != nil {
				fatal("delete session", err)
			}
			fmt.Println("deleted")
		},
	}
}

func sessionTemplateCmd() *cobra.Command {
	var sexA, sexB string
	cmd := &cobra.Command{
		Use:   "template <id> <relationship>",
		Short: "Replace a session's pedigree with a fresh archetype template",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateSessionRequest{
				Relationship: args[1],
				PersonASex:   sexA,
				PersonBSex:   sexB,
			}
			sess, err := apiClient.Sessions.ApplyTemplate(context.Background(), args[0], req)
			if err != nil {
				fatal("apply template", err)
			}
			output(sess, sess.ID)
		},
	}
	cmd.Flags().StringVar(&sexA, "sex-a", "", "Sex of person A (M|F, default M)")
	cmd.Flags().StringVar(&sexB, "sex-b", "", "Sex of person B (M|F, default F)")
	return cmd
}

func sessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Rebuild a session from its template, discarding edits",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sess, err := apiClient.Sessions.Reset(context.Background(), args[0])
			if err != nil {
				fatal("reset session", err)
			}
			output(sess, sess.ID)
		},
	}
}

func sessionHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show a session's operation journal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			entries, err := apiClient.Sessions.History(context.Background(), args[0], limit)
			if err != nil {
				fatal("get history", err)
			}
			if flagFmt == "table" {
				headers := []string{"SEQ", "ACTION", "AT"}
				var rows [][]string
				for _, e := range entries {
					rows = append(rows, []string{fmt.Sprintf("%d", e.Seq), e.Action, e.At.Format("2006-01-02 15:04:05")})
				}
				formatTable(headers, rows)
				return
			}
			output(entries, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max entries (0 for server default)")
	return cmd
}
