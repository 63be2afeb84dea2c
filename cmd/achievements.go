package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked achievements and progress toward the rest",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := eng.Achievements(cmd.Context(), resolveUser(cmd))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		progress := make(map[string]float64, len(report.Partial))
		for _, p := range report.Partial {
			progress[p.AchievementID] = p.Fraction
		}

		for _, a := range report.Catalog {
			if at, ok := report.Unlocked[a.ID]; ok {
				fmt.Fprintf(out, "[x] %-20s %s (unlocked %s)\n", a.Name, a.Description, at.Format("2006-01-02"))
				continue
			}
			if a.Hidden {
				continue
			}
			fmt.Fprintf(out, "[ ] %-20s %s (%.0f%%)\n", a.Name, a.Description, 100*progress[a.ID])
		}
		fmt.Fprintf(out, "\n%d of %d unlocked\n", len(report.Unlocked), len(report.Catalog))
		return nil
	},
}
