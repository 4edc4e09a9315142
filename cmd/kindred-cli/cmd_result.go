package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newResultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "result <session>",
		Short: "Show the computed coefficients for a session's pair",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Genetics.Result(context.Background(), args[0])
			if err != nil {
				fatal("get result", err)
			}
			if flagFmt == "table" {
				rows := [][]string{
					{"Pair", result.PersonA + " / " + result.PersonB},
					{"Baseline r", formatCoeff(result.BaselineR)},
					{"Coefficient r", formatCoeff(result.CoefficientOfRelationship)},
					{"Gene overlap", formatCoeff(result.GeneOverlapProbability)},
					{"Inbreeding F", formatCoeff(result.InbreedingCoefficient)},
					{"Consanguinity delta", formatCoeff(result.ConsanguinityDelta)},
				}
				if result.XLinked != nil {
					rows = append(rows, []string{"X-linked", formatCoeff(*result.XLinked)})
				}
				if result.YLinked != nil {
					rows = append(rows, []string{"Y-linked", formatCoeff(*result.YLinked)})
				}
				formatTable([]string{"METRIC", "VALUE"}, rows)
				return
			}
			output(result, formatCoeff(result.CoefficientOfRelationship))
		},
	}
}

func newPathsCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "paths <session>",
		Short: "Show ancestor paths between two persons",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			paths, err := apiClient.Genetics.Paths(context.Background(), args[0], from, to)
			if err != nil {
				fatal("get paths", err)
			}
			if flagFmt == "table" {
				headers := []string{"ANCESTOR", "STEPS", "ROUTE"}
				var rows [][]string
				for _, p := range paths.Paths {
					rows = append(rows, []string{p.CommonAncestor, strconv.Itoa(p.Steps), strings.Join(p.Route, " -> ")})
				}
				formatTable(headers, rows)
				return
			}
			output(paths, "")
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Person A (default: session's selected pair)")
	cmd.Flags().StringVar(&to, "to", "", "Person B (default: session's selected pair)")
	return cmd
}

func newInbreedingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inbreeding <session> <person> <coefficient>",
		Short: "Set an ancestor's inbreeding coefficient",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			coeff, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				fatal("parse coefficient", err)
			}
			sess, err := apiClient.Genetics.SetInbreeding(context.Background(), args[0], args[1], coeff)
			if err != nil {
				fatal("set inbreeding", err)
			}
			output(sess, sess.ID)
		},
	}
}
