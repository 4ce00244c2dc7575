package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/physioroutines/internal/document"

	"github.com/spf13/cobra"
)

func (a *app) newRoutinesCmd() *cobra.Command {
	routinesCmd := &cobra.Command{
		Use:   "routines",
		Short: "List and edit routines",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all routines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routines := a.tracker.GetRoutines(cmd.Context())
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), routines)
			}
			return printRoutines(cmd, routines)
		},
	}

	var exercises []string
	createCmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routine, err := a.tracker.CreateRoutine(cmd.Context(), args[0], exercises)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), routine)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created routine %s\n", routine.ID)
			return nil
		},
	}
	createCmd.Flags().StringSliceVarP(&exercises, "exercises", "e", nil, "exercise ids, comma separated")

	deleteCmd := &cobra.Command{
		Use:   "delete ROUTINE_ID",
		Short: "Delete a routine and its completion history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := a.tracker.DeleteRoutine(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("routine %s: %w", args[0], errNotFound)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted routine %s\n", args[0])
			return nil
		},
	}

	addExerciseCmd := &cobra.Command{
		Use:   "add-exercise ROUTINE_ID EXERCISE_ID",
		Short: "Add an exercise to a routine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, found := a.catalog.ByID(args[1]); !found {
				return fmt.Errorf("exercise %s: %w", args[1], errNotFound)
			}
			added, err := a.tracker.AddExerciseToRoutine(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !added {
				if _, found := a.tracker.GetRoutineByID(cmd.Context(), args[0]); !found {
					return fmt.Errorf("routine %s: %w", args[0], errNotFound)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exercise %s already in routine %s\n", args[1], args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added exercise %s to routine %s\n", args[1], args[0])
			return nil
		},
	}

	removeExerciseCmd := &cobra.Command{
		Use:   "remove-exercise ROUTINE_ID EXERCISE_ID",
		Short: "Remove an exercise from a routine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.tracker.RemoveExerciseFromRoutine(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !removed {
				if _, found := a.tracker.GetRoutineByID(cmd.Context(), args[0]); !found {
					return fmt.Errorf("routine %s: %w", args[0], errNotFound)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exercise %s not in routine %s\n", args[1], args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed exercise %s from routine %s\n", args[1], args[0])
			return nil
		},
	}

	routinesCmd.AddCommand(listCmd, createCmd, deleteCmd, addExerciseCmd, removeExerciseCmd)
	return routinesCmd
}

func printRoutines(cmd *cobra.Command, routines []document.Routine) error {
	t := newTable("ID", "NAME", "EXERCISES", "LAST USED")
	for _, r := range routines {
		lastUsed := "never"
		if r.LastUsed != nil {
			lastUsed = r.LastUsed.Local().Format(time.DateTime)
		}
		t.addRow(r.ID, r.Name, strings.Join(r.Exercises, ","), lastUsed)
	}
	return t.render(cmd.OutOrStdout())
}
