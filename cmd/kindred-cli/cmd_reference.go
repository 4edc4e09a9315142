package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newArchetypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archetypes",
		Short: "List relationship archetypes and their base coefficients",
		Run: func(cmd *cobra.Command, args []string) {
			archetypes, err := apiClient.Archetypes(context.Background())
			if err != nil {
				fatal("list archetypes", err)
			}
			if flagFmt == "table" {
				headers := []string{"RELATIONSHIP", "BASE_R", "PERSONS", "X_LINKED", "Y_LINKED"}
				var rows [][]string
				for _, a := range archetypes {
					rows = append(rows, []string{
						a.Relationship,
						formatCoeff(a.BaseR),
						fmt.Sprintf("%d", a.TemplatePersons),
						fmt.Sprintf("%t", a.XLinkedModeled),
						fmt.Sprintf("%t", a.YLinkedModeled),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, a := range archetypes {
					fmt.Println(a.Relationship)
				}
				return
			}
			output(archetypes, "")
		},
	}
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List consanguinity scenario presets",
		Run: func(cmd *cobra.Command, args []string) {
			scenarios, err := apiClient.Scenarios(context.Background())
			if err != nil {
				fatal("list scenarios", err)
			}
			if flagFmt == "table" {
				headers := []string{"NAME", "RELATIONSHIP", "TIER", "DESCRIPTION"}
				var rows [][]string
				for _, s := range scenarios {
					rows = append(rows, []string{s.Name, s.Relationship, s.Tier, s.Description})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, s := range scenarios {
					fmt.Println(s.Name)
				}
				return
			}
			output(scenarios, "")
		},
	}
}
