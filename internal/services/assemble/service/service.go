// Package service inlines the dashboard assets and the generated calendar
// data into one self-contained HTML file
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"

	"dashboard/internal/core/calendar"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/files"
	"dashboard/internal/platform/logger"
)

// Default file names
const (
	IndexFile  = "index.html"
	StyleFile  = "style.css"
	ScriptFile = "app_static.js"
	DataFile   = "static_data.json"
	OutFile    = "dashboard.html"
)

var (
	styleLink  = regexp.MustCompile(`<link[^>]*href="style\.css[^"]*"[^>]*>`)
	appScript  = regexp.MustCompile(`<script[^>]*src="app\.js[^"]*"[^>]*>\s*</script>\s*`)
	bodyCloser = regexp.MustCompile(`(?i)</body>`)
)

// Options locates the inputs and the output
type Options struct {
	PublicDir string
	DataFile  string
	Out       string
}

func (o Options) withDefaults() Options {
	if o.PublicDir == "" {
		o.PublicDir = "."
	}
	if o.DataFile == "" {
		o.DataFile = DataFile
	}
	if o.Out == "" {
		o.Out = OutFile
	}
	return o
}

// Inputs are the loaded source texts
type Inputs struct {
	HTML string
	CSS  string
	JS   string
	Data []byte
}

// Result describes the written file
type Result struct {
	Path  string
	Bytes int
	Dates int
}

// Assembler reads, checks and combines the dashboard sources
type Assembler struct {
	opts Options
}

// New constructs an assembler
func New(opts Options) *Assembler {
	return &Assembler{opts: opts.withDefaults()}
}

// Options returns the resolved options
func (a *Assembler) Options() Options { return a.opts }

// Load reads all inputs; any missing file fails the run
func (a *Assembler) Load() (Inputs, error) {
	var in Inputs
	var err error
	if in.HTML, err = files.ReadText(filepath.Join(a.opts.PublicDir, IndexFile)); err != nil {
		return Inputs{}, err
	}
	if in.CSS, err = files.ReadText(filepath.Join(a.opts.PublicDir, StyleFile)); err != nil {
		return Inputs{}, err
	}
	if in.JS, err = files.ReadText(filepath.Join(a.opts.PublicDir, ScriptFile)); err != nil {
		return Inputs{}, err
	}
	data, err := files.ReadText(a.opts.DataFile)
	if err != nil {
		return Inputs{}, err
	}
	in.Data = []byte(data)
	return in, nil
}

// Run loads the inputs, assembles them and writes the output file
func (a *Assembler) Run(ctx context.Context) (Result, error) {
	in, err := a.Load()
	if err != nil {
		return Result{}, err
	}
	doc, err := Verify(in.Data)
	if err != nil {
		return Result{}, err
	}
	html, err := Assemble(in)
	if err != nil {
		return Result{}, err
	}
	if err := files.WriteAtomic(a.opts.Out, []byte(html), 0o644); err != nil {
		return Result{}, err
	}

	res := Result{Path: a.opts.Out, Bytes: len(html), Dates: len(doc.CalendarData.Dates())}
	logger.C(ctx).Info().
		Str("path", res.Path).
		Int("bytes", res.Bytes).
		Int("dates", res.Dates).
		Msg("dashboard assembled")
	return res, nil
}

// Verify checks that data is a {"calendarData": ...} document
func Verify(data []byte) (calendar.Document, error) {
	var doc calendar.Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return calendar.Document{}, perr.Wrap(err, perr.ErrorCodeJSON, "invalid static data")
	}
	if dec.More() {
		return calendar.Document{}, perr.New(perr.ErrorCodeJSON, "invalid static data: trailing content")
	}
	return doc, nil
}

// Assemble inlines the stylesheet, drops the live app script and injects the
// data plus the static script before </body>
func Assemble(in Inputs) (string, error) {
	loc := bodyCloser.FindAllStringIndex(in.HTML, -1)
	if len(loc) == 0 {
		return "", perr.New(perr.ErrorCodeValidation, "index.html has no </body>")
	}

	html := in.HTML
	style := "<style>\n" + in.CSS + "\n</style>"
	if styleLink.MatchString(html) {
		html = styleLink.ReplaceAllLiteralString(html, style)
	} else {
		logger.Named("assemble").Warn().Msg("stylesheet link not found, css not inlined")
	}
	html = appScript.ReplaceAllLiteralString(html, "")

	var b strings.Builder
	b.WriteString("<script>\n")
	b.WriteString("const embeddedData = ")
	b.WriteString(scriptSafe(bytes.TrimSpace(in.Data)))
	b.WriteString(";\n\n")
	b.WriteString(in.JS)
	b.WriteString("\n</script>\n")

	// the last </body> wins; earlier ones may sit inside comments
	loc = bodyCloser.FindAllStringIndex(html, -1)
	at := loc[len(loc)-1][0]
	return html[:at] + b.String() + html[at:], nil
}

// scriptSafe keeps a name or label containing "</script>" from closing the
// inline script; "<\/" is an equivalent JSON string escape
func scriptSafe(data []byte) string {
	return strings.ReplaceAll(string(data), "</", `<\/`)
}
