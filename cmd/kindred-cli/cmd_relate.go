package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kindredlab/kindred/client"
)

func newRelateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relate",
		Short: "Declare and inspect relationships",
	}
	cmd.AddCommand(relateDeclareCmd())
	cmd.AddCommand(relateBulkCmd())
	cmd.AddCommand(relateOptionsCmd())
	cmd.AddCommand(relateListCmd())
	return cmd
}

func relateDeclareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "declare <session> <person-a> <person-b> <type>",
		Short: "Declare a relationship between two persons",
		Args:  cobra.ExactArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.DeclareRequest{
				PersonA: args[1],
				PersonB: args[2],
				Type:    args[3],
			}
			sess, err := apiClient.Pedigree.Declare(context.Background(), args[0], req)
			if err != nil {
				fatal("declare relationship", err)
			}
			output(sess, sess.ID)
		},
	}
}

// parseDeclaration splits a "personA:personB:type" triple.
func parseDeclaration(s string) (client.DeclareRequest, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return client.DeclareRequest{}, fmt.Errorf("want personA:personB:type, got %q", s)
	}
	return client.DeclareRequest{PersonA: parts[0], PersonB: parts[1], Type: parts[2]}, nil
}

func relateBulkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk <session> <personA:personB:type> [personA:personB:type...]",
		Short: "Declare several relationships in one atomic batch",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			declarations := make([]client.DeclareRequest, 0, len(args)-1)
			for _, arg := range args[1:] {
				d, err := parseDeclaration(arg)
				if err != nil {
					fatal("parse declaration", err)
				}
				declarations = append(declarations, d)
			}
			sess, err := apiClient.Pedigree.BulkDeclare(context.Background(), args[0], declarations)
			if err != nil {
				fatal("bulk declare", err)
			}
			output(sess, sess.ID)
		},
	}
}

func relateOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options <session> <person-a> <person-b>",
		Short: "List declarable relationship types for a pair",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			options, err := apiClient.Pedigree.Options(context.Background(), args[0], args[1], args[2])
			if err != nil {
				fatal("relationship options", err)
			}
			if flagFmt == "quiet" {
				for _, o := range options {
					fmt.Println(o)
				}
				return
			}
			output(options, "")
		},
	}
}

func relateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <session>",
		Short: "List declared relationships",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			declared, err := apiClient.Pedigree.Declared(context.Background(), args[0])
			if err != nil {
				fatal("list relationships", err)
			}
			if flagFmt == "table" {
				headers := []string{"PERSON_A", "PERSON_B", "TYPE"}
				var rows [][]string
				for _, d := range declared {
					rows = append(rows, []string{d.PersonA, d.PersonB, d.Type})
				}
				formatTable(headers, rows)
				return
			}
			output(declared, "")
		},
	}
}
