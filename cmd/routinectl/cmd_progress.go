package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/physioroutines/internal/analytics"

	"github.com/spf13/cobra"
)

func (a *app) newLogCmd() *cobra.Command {
	var duration int
	logCmd := &cobra.Command{
		Use:   "log ROUTINE_ID",
		Short: "Log a routine completion for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routine, found := a.tracker.GetRoutineByID(cmd.Context(), args[0])
			if !found {
				return fmt.Errorf("routine %s: %w", args[0], errNotFound)
			}
			entry, err := a.tracker.LogRoutineCompletion(cmd.Context(), routine.ID, routine.Name, duration)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), entry)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged %s (%d min), activity level today: %d\n",
				routine.Name, max(0, duration), entry.ActivityLevel)
			return nil
		},
	}
	logCmd.Flags().IntVarP(&duration, "duration", "d", 0, "duration in minutes")
	return logCmd
}

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show activity stats for the last 7 and 30 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := a.tracker.ProgressStats(cmd.Context())
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), stats)
			}

			t := newTable("", "7 DAYS", "30 DAYS")
			t.addRow("active days", strconv.Itoa(stats.ActiveDays7), strconv.Itoa(stats.ActiveDays30))
			t.addRow("routines", strconv.Itoa(stats.Routines7), strconv.Itoa(stats.Routines30))
			t.addRow("minutes", strconv.Itoa(stats.Duration7), strconv.Itoa(stats.Duration30))
			t.addRow("current streak", strconv.Itoa(stats.CurrentStreak), "")
			return t.render(cmd.OutOrStdout())
		},
	}
}

func (a *app) newRecentCmd() *cobra.Command {
	var limit int
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent completions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.tracker.RecentActivity(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), records)
			}

			t := newTable("COMPLETED", "ROUTINE", "MINUTES")
			for _, rc := range records {
				t.addRow(rc.CompletedAt.Local().Format(time.DateTime), rc.RoutineName, strconv.Itoa(rc.Duration))
			}
			return t.render(cmd.OutOrStdout())
		},
	}
	recentCmd.Flags().IntVarP(&limit, "limit", "n", analytics.DefaultActivityLimit, "number of completions")
	return recentCmd
}

func (a *app) newProgressCmd() *cobra.Command {
	var days int
	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Show the daily progress entries of the last days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.tracker.ProgressData(cmd.Context(), days)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), entries)
			}

			t := newTable("DATE", "LEVEL", "ROUTINES", "MINUTES")
			for _, e := range entries {
				t.addRow(
					e.Date.Local().Format(time.DateOnly),
					strconv.Itoa(e.ActivityLevel),
					strconv.Itoa(len(e.RoutinesCompleted)),
					strconv.Itoa(e.TotalDuration()),
				)
			}
			return t.render(cmd.OutOrStdout())
		},
	}
	progressCmd.Flags().IntVar(&days, "days", analytics.DefaultProgressDays, "number of days back")
	return progressCmd
}
