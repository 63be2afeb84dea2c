package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/idiomaster/internal/engine"
	"github.com/abhisek/idiomaster/internal/idiom"
	"github.com/abhisek/idiomaster/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cfg, err := quizConfigFromFlags(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		user := resolveUser(cmd)
		sess, err := eng.StartSession(ctx, user, cfg)
		if err != nil {
			return fmt.Errorf("start quiz: %w", err)
		}

		out := cmd.OutOrStdout()
		in := bufio.NewScanner(cmd.InOrStdin())
		questions := sess.Questions()

		var results *quiz.Results
		for i, q := range questions {
			fmt.Fprintf(out, "\nQuestion %d of %d  (%d pts)\n", i+1, len(questions), q.Points())
			printQuestion(out, q)

			raw, quit := readAnswer(out, in, q)
			if quit {
				if err := eng.AbandonSession(ctx, sess.ID()); err != nil {
					return err
				}
				fmt.Fprintln(out, "Quiz abandoned.")
				return nil
			}

			ans, res, err := eng.SubmitAnswer(ctx, sess.ID(), q.ID(), raw)
			if err != nil {
				if sess.State() == quiz.StateCompleted {
					// Time ran out mid-quiz.
					break
				}
				return err
			}
			if ans.Correct {
				fmt.Fprintln(out, "Correct!")
			} else {
				fmt.Fprintln(out, "Not quite.")
				if cfg.ShowExplanations {
					printExplanation(out, q)
				}
			}
			results = res
		}

		if results == nil {
			// Completed by deadline rather than the final answer.
			if results, err = eng.Results(ctx, sess.ID()); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nTime is up! Unanswered questions were marked incorrect.")
		}

		printResults(out, eng, results)
		return nil
	},
}

func init() {
	quizCmd.Flags().String("type", "mixed", "Question type: multiple-choice, fill-blank, match-situation, audio, mixed")
	quizCmd.Flags().String("difficulty", "", "Filter idioms by difficulty: beginner, intermediate, advanced")
	quizCmd.Flags().StringSlice("category", nil, "Filter idioms by category (repeatable)")
	quizCmd.Flags().Int("count", 0, "Number of questions (default 5)")
	quizCmd.Flags().Duration("time-limit", 0, "Total time limit, e.g. 2m (0 = untimed)")
	quizCmd.Flags().Duration("question-limit", 0, "Per-question time limit (0 = unbounded)")
	quizCmd.Flags().Bool("no-shuffle", false, "Keep catalog order for questions and options")
	quizCmd.Flags().Bool("explain", true, "Show explanations for wrong answers")
	quizCmd.Flags().Bool("learn", true, "Mark correctly answered idioms as learned")
	quizCmd.Flags().Int("passing-score", 0, "Minimum percentage to pass (default 60)")
}

func quizConfigFromFlags(cmd *cobra.Command) (quiz.Config, error) {
	flags := cmd.Flags()
	qtype, _ := flags.GetString("type")
	difficulty, _ := flags.GetString("difficulty")
	categories, _ := flags.GetStringSlice("category")
	count, _ := flags.GetInt("count")
	timeLimit, _ := flags.GetDuration("time-limit")
	questionLimit, _ := flags.GetDuration("question-limit")
	noShuffle, _ := flags.GetBool("no-shuffle")
	explain, _ := flags.GetBool("explain")
	learn, _ := flags.GetBool("learn")
	passing, _ := flags.GetInt("passing-score")

	switch quiz.Type(qtype) {
	case quiz.TypeMultipleChoice, quiz.TypeFillBlank, quiz.TypeMatchSituation, quiz.TypeAudio, quiz.TypeMixed:
	default:
		return quiz.Config{}, fmt.Errorf("unknown quiz type %q", qtype)
	}

	cats := make([]idiom.Category, 0, len(categories))
	for _, c := range categories {
		cats = append(cats, idiom.Category(c))
	}

	return quiz.Config{
		Type:             quiz.Type(qtype),
		Difficulty:       idiom.Difficulty(difficulty),
		Categories:       cats,
		QuestionCount:    count,
		TimeLimit:        timeLimit,
		PerQuestionLimit: questionLimit,
		ShuffleQuestions: !noShuffle,
		ShuffleOptions:   !noShuffle,
		PassingScore:     passing,
		ShowExplanations: explain,
		MarkLearned:      learn,
	}, nil
}

func printQuestion(out io.Writer, q quiz.Question) {
	switch q := q.(type) {
	case quiz.MultipleChoice:
		fmt.Fprintln(out, q.Prompt)
		printOptions(out, q.Options)
	case quiz.FillBlank:
		fmt.Fprintln(out, "Fill in the blank:")
		fmt.Fprintln(out, " ", q.Sentence)
		if q.Hint != "" {
			fmt.Fprintln(out, "  Hint:", q.Hint)
		}
	case quiz.MatchSituation:
		fmt.Fprintln(out, "Which idiom fits this situation?")
		fmt.Fprintln(out, " ", q.Situation)
		printOptions(out, q.Options)
	case quiz.Audio:
		fmt.Fprintf(out, "Listen to %s and pick the meaning:\n", q.AudioFile)
		printOptions(out, q.Options)
	}
}

func printOptions(out io.Writer, options []quiz.Option) {
	for i, o := range options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, o.Text)
	}
}

// readAnswer reads one line and maps it to the raw answer value: an
// option id for option questions (by 1-based number), free text for
// fill-blank. Returns quit=true on "q" or EOF.
func readAnswer(out io.Writer, in *bufio.Scanner, q quiz.Question) (raw string, quit bool) {
	fmt.Fprint(out, "> ")
	if !in.Scan() {
		return "", true
	}
	line := strings.TrimSpace(in.Text())
	if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
		return "", true
	}

	options := questionOptions(q)
	if options == nil {
		return line, false
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		// Out-of-range picks score as wrong answers.
		return line, false
	}
	return options[n-1].ID, false
}

func questionOptions(q quiz.Question) []quiz.Option {
	switch q := q.(type) {
	case quiz.MultipleChoice:
		return q.Options
	case quiz.MatchSituation:
		return q.Options
	case quiz.Audio:
		return q.Options
	default:
		return nil
	}
}

func printExplanation(out io.Writer, q quiz.Question) {
	switch q := q.(type) {
	case quiz.MultipleChoice:
		fmt.Fprintln(out, " ", q.Explanation)
	case quiz.MatchSituation:
		fmt.Fprintln(out, " ", q.Explanation)
	case quiz.FillBlank:
		if len(q.CorrectAnswers) > 0 {
			fmt.Fprintf(out, "  The answer was %q.\n", q.CorrectAnswers[0])
		}
	case quiz.Audio:
		fmt.Fprintf(out, "  %q means: %s\n", q.Idiom.Text, q.Idiom.Meaning)
	}
}

func printResults(out io.Writer, eng *engine.Engine, r *quiz.Results) {
	s := r.Score
	fmt.Fprintf(out, "\nScore: %d/%d (%d%%)  Grade: %s\n", s.CorrectAnswers, s.TotalQuestions, s.Percentage, s.Grade)
	if s.Passed {
		fmt.Fprintln(out, "Passed!")
	} else {
		fmt.Fprintln(out, "Not passed this time.")
	}
	fmt.Fprintf(out, "XP earned: %d\n", r.XPEarned)
	if r.LeveledUp {
		title := eng.LevelTitle(r.NewLevel)
		fmt.Fprintf(out, "Level up! You are now level %d (%s).\n", r.NewLevel, title)
	}
	if r.StreakInfo.CurrentStreak > 1 {
		fmt.Fprintf(out, "Streak: %d days\n", r.StreakInfo.CurrentStreak)
	}
	for _, id := range r.AchievementsUnlocked {
		fmt.Fprintf(out, "Achievement unlocked: %s\n", id)
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintln(out, "Tip:", rec.Message)
	}
}
