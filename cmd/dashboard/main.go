package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hopfield/habitrabbit/internal/cli"
	"github.com/hopfield/habitrabbit/pkg/client"
)

var CLI struct {
	Version kong.VersionFlag
	API     string `help:"Backend base URL." env:"API_BASE_URL" default:"http://localhost:8000"`

	Today   cli.TodayCmd   `cmd:"" help:"Show today's habits and completion." default:"1"`
	Add     cli.AddCmd     `cmd:"" help:"Add a new habit."`
	List    cli.ListCmd    `cmd:"" help:"List all habits."`
	Delete  cli.DeleteCmd  `cmd:"" help:"Delete a habit and its entries."`
	Toggle  cli.ToggleCmd  `cmd:"" help:"Toggle today's completion for a habit."`
	History cli.HistoryCmd `cmd:"" help:"Show history and weekly completion rates."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitdash"),
		kong.Description("Habit Rabbit dashboard client"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &cli.Context{
		Client: client.New(CLI.API),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
