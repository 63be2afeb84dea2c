package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/idiomaster/internal/idiom"
)

var idiomsCmd = &cobra.Command{
	Use:   "idioms",
	Short: "Browse the idiom catalog",
}

var idiomsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List idioms (optionally filtered by category or difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		filter := idiom.Filter{}
		if category != "" {
			filter.Categories = []idiom.Category{idiom.Category(category)}
		}
		if difficulty != "" {
			filter.Difficulties = []idiom.Difficulty{idiom.Difficulty(difficulty)}
		}

		idioms := catalog.Filter(filter)
		if len(idioms) == 0 {
			return fmt.Errorf("no idioms match the given filters")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-28s  %-44s  %-12s  %s\n", "ID", "Meaning", "Difficulty", "Categories")
		fmt.Fprintln(out, strings.Repeat("-", 110))
		for _, i := range idioms {
			meaning := i.Meaning
			if len(meaning) > 44 {
				meaning = meaning[:41] + "..."
			}
			cats := make([]string, 0, len(i.Categories))
			for _, c := range i.Categories {
				cats = append(cats, string(c))
			}
			fmt.Fprintf(out, "%-28s  %-44s  %-12s  %s\n", i.ID, meaning, i.Difficulty, strings.Join(cats, ", "))
		}
		fmt.Fprintf(out, "\n%d idioms\n", len(idioms))
		return nil
	},
}

var idiomsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one idiom in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		i, err := catalog.Get(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", i.Text)
		fmt.Fprintln(out, "Meaning:", i.Meaning)
		if i.LiteralMeaning != "" {
			fmt.Fprintln(out, "Literally:", i.LiteralMeaning)
		}
		if i.Origin != "" {
			fmt.Fprintln(out, "Origin:", i.Origin)
		}
		fmt.Fprintln(out, "Difficulty:", i.Difficulty)
		for _, ex := range i.Examples {
			fmt.Fprintln(out, "Example:", ex.Sentence)
		}
		return nil
	},
}

var idiomsBookmarkCmd = &cobra.Command{
	Use:   "bookmark <id>",
	Short: "Toggle an idiom bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		marked, err := eng.ToggleBookmark(cmd.Context(), resolveUser(cmd), args[0])
		if err != nil {
			return err
		}
		if marked {
			fmt.Fprintln(cmd.OutOrStdout(), "Bookmarked", args[0])
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Removed bookmark from", args[0])
		}
		return nil
	},
}

func init() {
	idiomsCmd.PersistentFlags().String("pack", "", "Path to a JSON idiom pack (overrides the built-in catalog)")
	idiomsListCmd.Flags().String("category", "", "Filter by category (e.g. emotions)")
	idiomsListCmd.Flags().String("difficulty", "", "Filter by difficulty (beginner, intermediate, advanced)")

	idiomsCmd.AddCommand(idiomsListCmd)
	idiomsCmd.AddCommand(idiomsShowCmd)
	idiomsCmd.AddCommand(idiomsBookmarkCmd)
}

// loadCatalog returns the idiom repository for browse commands: an
// optional content pack via --pack, otherwise the built-in catalog.
func loadCatalog(cmd *cobra.Command) (idiom.Repository, error) {
	if path, _ := cmd.Flags().GetString("pack"); path != "" {
		pack, err := idiom.LoadPack(path, version)
		if err != nil {
			return nil, err
		}
		return idiom.NewCatalog(pack.Idioms)
	}
	return idiom.BuiltinCatalog(), nil
}
