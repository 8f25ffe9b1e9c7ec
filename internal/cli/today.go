package cli

import (
	"context"
	"fmt"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	statuses, err := ctx.Client.TodayStatus(context.Background())
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		fmt.Println("No habits found. Add your first habit with 'habitdash add'.")
		return nil
	}

	completed := 0
	for _, s := range statuses {
		if s.CompletedToday {
			completed++
		}
	}
	rate := float64(completed) / float64(len(statuses)) * 100

	printTitle("Today's Habits")
	fmt.Printf("Completed %d of %d (%.1f%%)\n\n", completed, len(statuses), rate)
	for _, s := range statuses {
		mark := pendingStyle.Render("[ ]")
		if s.CompletedToday {
			mark = doneStyle.Render("[x]")
		}
		fmt.Printf("  %s #%d %s\n", mark, s.ID, s.Name)
		if s.Description != "" {
			fmt.Printf("      %s\n", faintStyle.Render(s.Description))
		}
	}
	return nil
}
