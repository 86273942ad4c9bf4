/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"dirpx.dev/lstream"
	"dirpx.dev/lstream/declaration"
)

// styles holds the output styles, bound to the renderer of one writer so
// plain writers get plain text.
type styles struct {
	class lipgloss.Style
	attr  lipgloss.Style
	muted lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
}

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func newStyles(w io.Writer, mode string) styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case colorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case colorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return styles{
		class: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}),
		attr:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5F5F00", Dark: "#D7D787"}),
		muted: r.NewStyle().Faint(true),
		ok:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD75F"}),
		fail:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}),
	}
}

// describe prints the types and collections of f.
func describe(w io.Writer, st styles, f *declaration.File) {
	suffix := lstream.Config().Suffix

	for _, ts := range f.Types {
		fmt.Fprintln(w, st.class.Render(ts.Name))
		for _, ss := range ts.Streams {
			target := ss.As
			if target == "" {
				target = st.muted.Render("derived (*" + suffix + ")")
			}
			line := fmt.Sprintf("  %s -> %s", st.attr.Render(ss.Name), target)
			if ss.From != "" {
				line += st.muted.Render(" from " + ss.From)
			}
			fmt.Fprintln(w, line)
		}
		if d := ts.Delegate; d != nil {
			mode := "index"
			if d.Prefix {
				mode = "prefix"
			}
			fmt.Fprintf(w, "  delegate %s %s\n", st.attr.Render(d.Method), st.muted.Render("("+mode+")"))
		}
	}

	for _, cs := range f.Collections {
		of := cs.Of
		if of == "" {
			of = st.muted.Render("derived")
		}
		fmt.Fprintf(w, "%s of %s\n", st.class.Render(cs.Name), of)
	}
}
