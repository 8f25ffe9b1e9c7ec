package cli

import (
	"context"
	"fmt"
)

type AddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." short:"d"`
}

func (c *AddCmd) Run(ctx *Context) error {
	habit, err := ctx.Client.CreateHabit(context.Background(), c.Name, c.Description)
	if err != nil {
		return err
	}
	fmt.Printf("Added habit #%d: %s\n", habit.ID, habit.Name)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	habits, err := ctx.Client.ListHabits(context.Background())
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	printTitle("Habits")
	for _, h := range habits {
		fmt.Printf("  #%d %s %s\n", h.ID, h.Name, faintStyle.Render("(since "+h.CreatedDate.String()+")"))
		if h.Description != "" {
			fmt.Printf("      %s\n", faintStyle.Render(h.Description))
		}
	}
	return nil
}

type DeleteCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	message, err := ctx.Client.DeleteHabit(context.Background(), c.ID)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

type ToggleCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	result, err := ctx.Client.ToggleCompletion(context.Background(), c.ID)
	if err != nil {
		return err
	}
	fmt.Println(result.Message)
	return nil
}
