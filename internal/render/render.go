// Package render formats passwords and strength scores for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/strength"
)

const (
	letterColor = lipgloss.Color("#ffffff")
	digitColor  = lipgloss.Color("#6f9df1")
	symbolColor = lipgloss.Color("#c95740")
)

var (
	letterStyle  = lipgloss.NewStyle().Foreground(letterColor)
	digitStyle   = lipgloss.NewStyle().Foreground(digitColor)
	symbolStyle  = lipgloss.NewStyle().Foreground(symbolColor)
	unknownStyle = lipgloss.NewStyle().Foreground(symbolColor).Underline(true)
)

// Password colors each character by category. With color off it returns
// the password unchanged.
func Password(pw crypto.Password, color bool) string {
	if !color {
		return pw.String()
	}

	var sb strings.Builder
	for _, r := range pw.String() {
		sb.WriteString(styleFor(r).Render(string(r)))
	}
	return sb.String()
}

func styleFor(r rune) lipgloss.Style {
	c, ok := crypto.Classify(r)
	if !ok {
		return unknownStyle
	}
	switch c {
	case crypto.Digit:
		return digitStyle
	case crypto.Symbol:
		return symbolStyle
	default:
		return letterStyle
	}
}

// StrengthBar renders score as a bar of the given width followed by the
// crack-time estimate.
func StrengthBar(score strength.Score, width int, color bool) string {
	opts := []progress.Option{progress.WithWidth(width), progress.WithoutPercentage()}
	if color {
		opts = append(opts, progress.WithScaledGradient(string(symbolColor), string(digitColor)))
	} else {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii))
	}
	bar := progress.New(opts...)

	return fmt.Sprintf("%s %3d/100  %s", bar.ViewAs(score.Percent()), score.Value, CrackTime(score.Estimate))
}

// CrackTime describes an estimate, e.g. "3 days to crack".
func CrackTime(est strength.Estimate) string {
	switch est.Unit {
	case strength.Centuries:
		return "centuries to crack"
	case strength.Unknown, "":
		return "less than an hour to crack"
	default:
		unit := string(est.Unit)
		if est.Magnitude == 1 {
			unit = strings.TrimSuffix(unit, "s")
		}
		return fmt.Sprintf("%d %s to crack", int(est.Magnitude), unit)
	}
}
