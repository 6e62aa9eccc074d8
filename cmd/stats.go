package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfarleigh/certrun/internal/practice"
	"github.com/jfarleigh/certrun/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-topic accuracy and weakest questions for an exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		examName, _ := cmd.Flags().GetString("exam")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		exam, err := pickExam(ctx, s.BankRepo(), examName)
		if err != nil {
			return err
		}
		if exam == nil {
			fmt.Println("No exams in the bank yet. Run \"certrun seed\" or \"certrun import\" first.")
			return nil
		}

		svc := practice.NewService(s.BankRepo(), s.HistoryRepo(), s.SessionRepo())
		stats, err := svc.Stats(ctx, exam.ID, limit)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		sessions, err := svc.Sessions(ctx, exam.ID, recentSessionLimit)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}

		title := exam.Name
		if exam.ExamCode != "" {
			title = fmt.Sprintf("%s (%s)", exam.Name, exam.ExamCode)
		}
		fmt.Printf("%s: %d questions\n\n", title, exam.QuestionCount)

		fmt.Println("Accuracy by topic")
		fmt.Printf("%-32s  %9s  %9s  %9s\n", "Topic", "Questions", "Attempts", "Accuracy")
		fmt.Println(strings.Repeat("─", 66))
		for _, tp := range stats.Topics {
			acc := "untried"
			if tp.AttemptCount > 0 {
				acc = fmt.Sprintf("%.1f%%", tp.Accuracy()*100)
			}
			fmt.Printf("%-32s  %9d  %9d  %9s\n",
				truncate(tp.TopicName, 32), tp.QuestionCount, tp.AttemptCount, acc)
		}
		fmt.Println()

		fmt.Println("Weakest questions")
		if len(stats.Weakest) == 0 {
			fmt.Println("No attempts recorded yet.")
		} else {
			fmt.Printf("%-48s  %9s  %9s\n", "Question", "Attempts", "Accuracy")
			fmt.Println(strings.Repeat("─", 70))
			for _, q := range stats.Weakest {
				fmt.Printf("%-48s  %9d  %8.1f%%\n",
					truncate(q.Text, 48), q.AttemptCount, q.Accuracy*100)
			}
		}
		fmt.Println()

		fmt.Println("Recent sessions")
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}
		fmt.Printf("%-19s  %-9s  %-10s  %9s\n", "Started", "Mode", "Status", "Questions")
		fmt.Println(strings.Repeat("─", 54))
		for _, sess := range sessions {
			fmt.Printf("%-19s  %-9s  %-10s  %9d\n",
				sess.StartedAt.Local().Format("2006-01-02 15:04:05"),
				sess.Mode, sess.Status, len(sess.Questions))
		}
		return nil
	},
}

const recentSessionLimit = 5

func init() {
	statsCmd.Flags().String("exam", "", "Exam name (defaults to the only exam in the bank)")
	statsCmd.Flags().IntP("limit", "n", 0, "Number of weakest questions to show")
}

// pickExam resolves the exam to report on. With no name it picks the
// sole exam in the bank, returning nil when the bank is empty.
func pickExam(ctx context.Context, repo store.BankRepo, name string) (*store.Exam, error) {
	if name != "" {
		exam, err := repo.ExamByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("look up exam: %w", err)
		}
		if exam == nil {
			return nil, fmt.Errorf("exam %q not found", name)
		}
		return exam, nil
	}

	exams, err := repo.Exams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	switch len(exams) {
	case 0:
		return nil, nil
	case 1:
		return exams[0], nil
	default:
		names := make([]string, len(exams))
		for i, e := range exams {
			names[i] = fmt.Sprintf("%q", e.Name)
		}
		return nil, fmt.Errorf("bank holds %d exams (%s), pick one with --exam", len(exams), strings.Join(names, ", "))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
