// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Styler decorates human-readable output. With the Ascii profile every
// method returns its input unchanged.
type Styler struct {
	profile  termenv.Profile
	renderer *lipgloss.Renderer
}

// NewStyler returns a Styler for w. Output is colored only when w is a
// terminal and NO_COLOR is unset; anything else gets plain text.
func NewStyler(w io.Writer) *Styler {
	profile := termenv.Ascii
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) && os.Getenv("NO_COLOR") == "" {
		profile = termenv.ANSI256
	}
	return NewStylerWithProfile(w, profile)
}

// NewStylerWithProfile returns a Styler that renders with profile
// regardless of what w is connected to.
func NewStylerWithProfile(w io.Writer, profile termenv.Profile) *Styler {
	// SetColorProfile pins the profile; without it lipgloss re-detects
	// from the environment.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return &Styler{profile: profile, renderer: renderer}
}

// Color reports whether the Styler emits escape sequences.
func (s *Styler) Color() bool {
	return s.profile != termenv.Ascii
}

// JSON syntax-highlights a JSON document.
func (s *Styler) JSON(text string) string {
	if !s.Color() {
		return text
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, text, "json", "terminal256", "monokai"); err != nil {
		return text
	}
	return buffer.String()
}

// Good renders a passing verdict.
func (s *Styler) Good(text string) string {
	return s.render(text, "2", true)
}

// Bad renders a failing verdict or an error kind.
func (s *Styler) Bad(text string) string {
	return s.render(text, "1", true)
}

// Faint renders secondary detail.
func (s *Styler) Faint(text string) string {
	return s.render(text, "8", false)
}

func (s *Styler) render(text, color string, bold bool) string {
	if !s.Color() {
		return text
	}
	return s.renderer.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(bold).
		Render(text)
}
