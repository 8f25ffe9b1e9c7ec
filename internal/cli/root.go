package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hopfield/habitrabbit/pkg/client"
)

type Context struct {
	Client *client.Client
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

const barWidth = 20

// rateBar renders a completion percentage as a fixed-width bar.
func rateBar(rate float64) string {
	filled := int(rate / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	return doneStyle.Render(strings.Repeat("█", filled)) + pendingStyle.Render(strings.Repeat("░", barWidth-filled))
}

func printTitle(text string) {
	fmt.Println(titleStyle.Render(text))
}
