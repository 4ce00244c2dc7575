package main

import (
	"fmt"
	"strconv"

	"github.com/2beens/physioroutines/internal/catalog"

	"github.com/spf13/cobra"
)

func (a *app) newCatalogCmd() *cobra.Command {
	var category string
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the exercise library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises := a.catalog.All()
			if category != "" {
				exercises = a.catalog.ByCategory(category)
			}
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), exercises)
			}

			t := newTable("ID", "NAME", "CATEGORY", "SETS", "REPS/DURATION")
			for _, e := range exercises {
				t.addRow(e.ID, e.Name, e.Category, strconv.Itoa(e.Sets), volume(e))
			}
			return t.render(cmd.OutOrStdout())
		},
	}
	catalogCmd.Flags().StringVarP(&category, "category", "c", "", "only this category")

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List the exercise categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range a.catalog.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	var seedPath string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add the exercises of a YAML file to the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := catalog.ReadExercisesFile(seedPath)
			if err != nil {
				return err
			}
			for _, e := range exercises {
				added, err := a.catalog.Add(cmd.Context(), e)
				if err != nil {
					return fmt.Errorf("add exercise [%s]: %w", e.Name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added exercise %s (%s)\n", added.Name, added.ID)
			}
			return nil
		},
	}
	addCmd.Flags().StringVarP(&seedPath, "file", "f", "", "YAML file with an exercises list")
	_ = addCmd.MarkFlagRequired("file")

	catalogCmd.AddCommand(categoriesCmd, addCmd)
	return catalogCmd
}

func volume(e catalog.Exercise) string {
	switch {
	case e.Reps != nil && e.Duration != nil:
		return fmt.Sprintf("%d reps, %ds", *e.Reps, *e.Duration)
	case e.Reps != nil:
		return fmt.Sprintf("%d reps", *e.Reps)
	case e.Duration != nil:
		return fmt.Sprintf("%ds", *e.Duration)
	default:
		return "-"
	}
}
