// Package view renders match progress and results.
package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
)

// View receives the game after every accepted move and once at the end.
type View interface {
	// Render describes the most recent move. With no move yet it draws nothing.
	Render(g game.View)

	// OnGameOver shows the secret and the result.
	OnGameOver(g game.View)
}

// Console writes plain lines with a colored result banner.
type Console struct {
	out    io.Writer
	banner lipgloss.Style
	secret lipgloss.Style
}

// NewConsole creates a console view writing to out. The renderer decides
// the color profile; pass one bound to out (or an SSH session).
func NewConsole(out io.Writer, r *lipgloss.Renderer) *Console {
	if r == nil {
		r = lipgloss.NewRenderer(out)
	}
	return &Console{
		out:    out,
		banner: r.NewStyle().Foreground(lipgloss.Color(core.ColorYellow.Code())).Bold(true),
		secret: r.NewStyle().Foreground(lipgloss.Color(core.ColorCyan.Code())),
	}
}

// Render prints "<seat> plays <guess>" for the last accepted move.
func (c *Console) Render(g game.View) {
	who, what, ok := g.LastMove()
	if !ok {
		return
	}
	fmt.Fprintf(c.out, "%s plays %d\n", who, what)
}

// OnGameOver prints the secret and the winner.
func (c *Console) OnGameOver(g game.View) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "%s was the number to guess\n\n", c.secret.Render(g.Secret().String()))
	fmt.Fprintln(c.out, c.banner.Render(ResultText(g.Outcome())))
}

// ResultText returns the banner for an outcome.
func ResultText(outcome int) string {
	if winner := game.WinnerOf(outcome); winner != "" {
		return fmt.Sprintf("%s WINS", winner)
	}
	return "IT'S A TIE"
}

var _ View = (*Console)(nil)
