package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show level, XP, streak and learned idioms",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		user := resolveUser(cmd)
		p, err := eng.Progress(cmd.Context(), user)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		title := eng.LevelTitle(p.Level)
		fmt.Fprintf(out, "Level %d (%s)\n", p.Level, title)
		fmt.Fprintf(out, "XP: %d (%d to next level)\n", p.XP, p.XPToNextLevel)
		fmt.Fprintf(out, "Streak: %d days (longest %d)\n", p.Streak, p.LongestStreak)
		fmt.Fprintf(out, "Idioms learned: %d\n", p.LearnedCount())

		if bookmarks := p.BookmarkedIdioms(); len(bookmarks) > 0 {
			fmt.Fprintln(out, "\nBookmarked:")
			for _, id := range bookmarks {
				fmt.Fprintln(out, " -", id)
			}
		}

		if len(p.Daily) > 0 {
			d := p.Daily[len(p.Daily)-1]
			fmt.Fprintf(out, "\nToday (%s): %d quizzes, %.1f min practiced", d.Date, d.QuizzesTaken, d.PracticeMinutes)
			if d.GoalMet {
				fmt.Fprint(out, " (daily goal met)")
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
