package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/2beens/physioroutines/internal/player"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const playHelp = `commands:
  n, next     next exercise
  p, prev     previous exercise
  s, start    start the timer
  t, stop     stop the timer
  show        show the current exercise
  f, finish   log the completion and exit
  q, quit     exit without logging`

func (a *app) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play ROUTINE_ID",
		Short: "Walk through a routine exercise by exercise",
		Long:  "Walk through a routine exercise by exercise, reading commands from stdin.\n\n" + playHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := player.New(a.tracker, a.catalog, nil).Start(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return runSession(cmd, session)
		},
	}
}

func runSession(cmd *cobra.Command, session *player.Session) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d exercises\n", session.Routine().Name, len(session.Exercises()))
	showExercise(out, session)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(out, "\ninput closed, session not logged")
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "":
		case "n", "next":
			if !session.Next() {
				fmt.Fprintln(out, "already at the last exercise")
				continue
			}
			showExercise(out, session)
		case "p", "prev":
			if !session.Prev() {
				fmt.Fprintln(out, "already at the first exercise")
				continue
			}
			showExercise(out, session)
		case "s", "start":
			session.StartTimer()
			fmt.Fprintf(out, "timer running, %s elapsed\n", session.Elapsed())
		case "t", "stop":
			session.StopTimer()
			fmt.Fprintf(out, "timer stopped at %s\n", session.Elapsed())
		case "show":
			showExercise(out, session)
		case "f", "finish":
			entry, err := session.Finish(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "routine completed in %d min, activity level today: %d\n",
				player.DurationMinutes(session.Elapsed()), entry.ActivityLevel)
			return nil
		case "q", "quit":
			fmt.Fprintln(out, "session not logged")
			return nil
		default:
			fmt.Fprintln(out, playHelp)
		}
	}
}

func showExercise(out io.Writer, session *player.Session) {
	e := session.Current()
	title := lipgloss.NewRenderer(out).NewStyle().Bold(true)
	fmt.Fprintln(out, title.Render(fmt.Sprintf("[%d/%d] %s (%s) %d sets, %s",
		session.Position()+1, len(session.Exercises()), e.Name, e.Category, e.Sets, volume(e))))
	for i, step := range e.Steps() {
		fmt.Fprintf(out, "  %d. %s\n", i+1, step)
	}
}
