// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/tags"
)

// MinLeftWidth is the minimum character width for the widget list pane.
const MinLeftWidth = 16

var mutedText = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

var errorText = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

var cardFace = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 3)

// TagBadge renders a tag with its stable hash color.
func TagBadge(tag string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(tags.ColorHash(tag))).
		Render("#" + tag)
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// PaneWidths calculates the left and right pane widths from a total width.
// The widget list gets a quarter (minimum MinLeftWidth), content the rest.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = totalWidth / 4
	if left < MinLeftWidth {
		left = MinLeftWidth
	}
	right = totalWidth - left
	if right < 0 {
		right = 0
	}
	return left, right
}
