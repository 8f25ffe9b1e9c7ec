package cli

import (
	"context"
	"fmt"

	"github.com/hopfield/habitrabbit/pkg/client"
)

type HistoryCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	entries, err := ctx.Client.GetHistory(context.Background(), c.ID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries tracked yet for this habit.")
		return nil
	}

	printTitle(fmt.Sprintf("History for habit #%d", c.ID))
	for _, e := range entries {
		mark := pendingStyle.Render("[ ]")
		if e.Completed {
			mark = doneStyle.Render("[x]")
		}
		fmt.Printf("  %s %s\n", mark, e.Date)
	}

	fmt.Println()
	printTitle("Weekly completion rate")
	for _, w := range client.WeeklyRates(entries) {
		fmt.Printf("  %s %s %5.1f%% %s\n", w.Week, rateBar(w.CompletionRate), w.CompletionRate,
			faintStyle.Render(fmt.Sprintf("(%d/%d)", w.CompletedCount, w.TotalEntries)))
	}

	summary := client.Summarize(entries)
	fmt.Println()
	fmt.Printf("Tracked %d days, completed %d (%.1f%% overall)\n",
		summary.TotalDays, summary.CompletedDays, summary.CompletionRate)
	return nil
}
