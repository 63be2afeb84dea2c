package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/idiomaster/internal/config"
	"github.com/abhisek/idiomaster/internal/engine"
	"github.com/abhisek/idiomaster/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "idiomaster",
	Short: "English idiom trainer",
	Long:  "Idiomaster is a terminal quiz engine for learning English idioms, with XP, streaks and achievements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides IDIOMASTER_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML policy file")
	rootCmd.PersistentFlags().String("user", "", "User profile name (overrides IDIOMASTER_USER env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(idiomsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then IDIOMASTER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the active user profile: --user flag, then
// IDIOMASTER_USER env var, then "default".
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("IDIOMASTER_USER"); u != "" {
		return u
	}
	return "default"
}

// openEngine opens the store and builds the engine from the policy
// file. The caller closes the returned store.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	policy, err := config.Load(cfgPath)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	eng := engine.New(engine.Options{
		Config:    policy,
		Snapshots: st.SnapshotRepo(),
		Events:    st.EventRepo(),
		Shuffle:   rand.Shuffle,
	})
	return eng, st, nil
}
