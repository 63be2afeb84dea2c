package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics and recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		user := resolveUser(cmd)
		stats, err := eng.Statistics(ctx, user)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if stats.TotalQuizzes == 0 {
			fmt.Fprintln(out, "No quizzes taken yet. Run `idiomaster quiz` to get started.")
			return nil
		}

		fmt.Fprintf(out, "Quizzes taken:   %d\n", stats.TotalQuizzes)
		fmt.Fprintf(out, "Average score:   %.1f%%\n", stats.AverageScore)
		fmt.Fprintf(out, "Best score:      %d%%\n", stats.BestScore)
		fmt.Fprintf(out, "Time practicing: %.1f min\n", stats.TotalTimeMinutes)

		if len(stats.PerformanceByType) > 0 {
			fmt.Fprintln(out, "\nBy quiz type:")
			types := make([]string, 0, len(stats.PerformanceByType))
			for t := range stats.PerformanceByType {
				types = append(types, t)
			}
			sort.Strings(types)
			for _, t := range types {
				p := stats.PerformanceByType[t]
				fmt.Fprintf(out, "  %-16s %d taken, avg %.1f%%, best %d%%\n", t, p.Taken, p.AverageScore, p.BestScore)
			}
		}

		if len(stats.ChallengingCategories) > 0 {
			fmt.Fprintln(out, "\nMost challenging categories:")
			for _, c := range stats.ChallengingCategories {
				fmt.Fprintf(out, "  %-16s %.0f%% over %d questions\n", c.Category, c.AverageScore, c.Attempted)
			}
		}

		if trend := stats.ImprovementTrend; trend.Period != "" {
			fmt.Fprintf(out, "\nTrend (%s): score %+.1f, accuracy %+.1f\n",
				trend.Period, trend.ScoreImprovement, trend.AccuracyImprovement)
		}

		recs, err := eng.Recommendations(ctx, user)
		if err != nil {
			return err
		}
		if len(recs) > 0 {
			fmt.Fprintln(out, "\nRecommendations:")
			for _, r := range recs {
				fmt.Fprintln(out, " -", r.Message)
			}
		}

		history, err := eng.History(ctx, user, 5)
		if err != nil {
			return err
		}
		if len(history) > 0 {
			fmt.Fprintln(out, "\nRecent quizzes:")
			for _, h := range history {
				fmt.Fprintf(out, "  %s  %-16s %3d%%  %s\n",
					h.Timestamp.Format("2006-01-02"), h.QuizType, h.Percentage, h.Grade)
			}
		}
		return nil
	},
}
