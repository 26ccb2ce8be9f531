package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/tenzies/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	dieStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Align(lipgloss.Center)

	heldStyle = dieStyle.
			BorderForeground(lipgloss.Color("42")).
			Foreground(lipgloss.Color("42")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Align(lipgloss.Center)

	statusStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

// View renders the table
func (a *App) View() string {
	state := a.surface.snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tenzies"))
	b.WriteString("\n")
	b.WriteString("Roll until all dice show the same face. Press a die's number to hold it between rolls.")
	b.WriteString("\n\n")
	b.WriteString(a.renderDice(state))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(state.status))
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

func (a *App) renderDice(state surfaceState) string {
	boxes := make([]string, 0, models.DiceCount)
	for i := 0; i < models.DiceCount; i++ {
		style := dieStyle
		if state.held[i] {
			style = heldStyle
		}
		box := style.Render(a.face(state.values[i]))
		label := labelStyle.Width(lipgloss.Width(box)).Render(fmt.Sprintf("%d", (i+1)%10))
		boxes = append(boxes, lipgloss.JoinVertical(lipgloss.Center, box, label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// face renders a die value, blank when the theme has no face for it
func (a *App) face(value int) string {
	if value == 0 {
		return " "
	}
	text, err := a.faces.Face(value)
	if err != nil {
		if !a.missing[value] {
			a.missing[value] = true
			log.Printf("Missing face for %d: %v", value, err)
		}
		return " "
	}
	return text
}
