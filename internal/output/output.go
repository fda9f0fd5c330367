// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/woozymasta/fsx"
	"gopkg.in/yaml.v3"
)

// statsDocument is the machine readable stats report.
type statsDocument struct {
	Stats  fsx.Stats `json:"stats" yaml:"stats"`
	Errors []string  `json:"errors" yaml:"errors"`
}

// findDocument is the machine readable find report.
type findDocument struct {
	Entries []fsx.FindEntry `json:"entries" yaml:"entries"`
	Errors  []string        `json:"errors" yaml:"errors"`
}

// statsDump mirrors fsx.Stats with the largest file dereferenced for %+v.
type statsDump struct {
	LargestFile   fsx.FileSize
	TotalFiles    int
	TotalDirs     int
	TotalSymlinks int
	TotalSize     int64
	MaxDepth      int
}

// styles are bound to one destination renderer.
type styles struct {
	label lipgloss.Style
	value lipgloss.Style
	dim   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		label: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		value: r.NewStyle().Bold(true),
		dim:   r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// WriteStats writes a stats report in format.
// Walk errors are included only in machine formats.
func WriteStats(w io.Writer, report fsx.StatsReport, format Format) error {
	stats := report.Stats

	switch format {
	case Human, Raw:
		size := strconv.FormatInt(stats.TotalSize, 10) + " bytes"
		if format == Human {
			size = HumanBytes(stats.TotalSize)
		}

		s := newStyles(w)
		p := &printer{w: w}
		p.line(s, "Files:", strconv.Itoa(stats.TotalFiles))
		p.line(s, "Dirs:", strconv.Itoa(stats.TotalDirs))
		if stats.TotalSymlinks > 0 {
			p.line(s, "Symlinks:", strconv.Itoa(stats.TotalSymlinks))
		}
		p.line(s, "Size:", size)
		if lf := stats.LargestFile; lf != nil {
			lsize := strconv.FormatInt(lf.Size, 10) + " bytes"
			if format == Human {
				lsize = HumanBytes(lf.Size)
			}

			p.line(s, "Largest file:", fmt.Sprintf("%s (%s)", lf.Path, lsize))
		}
		p.line(s, "Max depth:", strconv.Itoa(stats.MaxDepth))

		return p.err

	case Debug:
		dump := statsDump{
			TotalFiles:    stats.TotalFiles,
			TotalDirs:     stats.TotalDirs,
			TotalSymlinks: stats.TotalSymlinks,
			TotalSize:     stats.TotalSize,
			MaxDepth:      stats.MaxDepth,
		}
		if stats.LargestFile != nil {
			dump.LargestFile = *stats.LargestFile
		}

		_, err := fmt.Fprintf(w, "%+v\n", dump)
		return err

	case JSON, YAML:
		return encode(w, format, statsDocument{
			Stats:  stats,
			Errors: errorStrings(report.Errors),
		})

	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// WriteFind writes find matches in format, one line per match for
// line-oriented formats.
func WriteFind(w io.Writer, report fsx.FindReport, format Format) error {
	switch format {
	case Human, Raw:
		s := newStyles(w)
		p := &printer{w: w}
		for _, e := range report.Entries {
			if format == Raw {
				p.printf("%s\t%d\n", e.Path, e.Size)
				continue
			}

			p.printf("%s %s\n", e.Path, s.dim.Render("("+HumanBytes(e.Size)+")"))
		}

		return p.err

	case Debug:
		p := &printer{w: w}
		for _, e := range report.Entries {
			p.printf("%+v\n", e)
		}

		return p.err

	case JSON, YAML:
		entries := report.Entries
		if entries == nil {
			entries = []fsx.FindEntry{}
		}

		return encode(w, format, findDocument{
			Entries: entries,
			Errors:  errorStrings(report.Errors),
		})

	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// encode writes doc as an indented JSON or YAML document.
func encode(w io.Writer, format Format, doc any) error {
	if format == YAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// errorStrings renders errs, never returning nil.
func errorStrings(errs []error) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}

	return out
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s styles, label, value string) {
	p.printf("%s %s\n", s.label.Render(label), s.value.Render(value))
}
