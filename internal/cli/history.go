package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded solve attempts",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solve attempts",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <attempt-id>",
	Short: "Show details of a solve attempt",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of attempts to display")
	historyCmd.AddCommand(historyShowCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	attempts, err := storage.NewAttemptRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %6s  %8s  %10s\n", "ID", "WHEN", "MOVES", "STATES", "TIME")
	for _, a := range attempts {
		status := fmt.Sprintf("%d", a.MoveCount)
		if !a.Solved {
			status = "-"
		}
		fmt.Printf("%-36s  %-19s  %6s  %8d  %10s\n",
			a.AttemptID,
			a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			status,
			a.StatesExplored,
			(time.Duration(a.DurationMs) * time.Millisecond).String(),
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	a, err := storage.NewAttemptRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("attempt not found: %s", args[0])
	}

	fmt.Println("Attempt:  ", a.AttemptID)
	fmt.Println("When:     ", a.CreatedAt.Local().Format(time.RFC1123))
	fmt.Println("Scramble: ", a.Scramble)
	if a.Solved {
		fmt.Printf("Solution:  %s (%d moves)\n", a.Solution, a.MoveCount)
	} else {
		fmt.Println("Solution:  (none found)")
	}
	fmt.Println("States:   ", a.StatesExplored)
	fmt.Println("Time:     ", time.Duration(a.DurationMs)*time.Millisecond)
	fmt.Println("Oracle:   ", a.OracleUsed)
	return nil
}
