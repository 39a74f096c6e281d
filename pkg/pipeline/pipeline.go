// Package pipeline runs the resolve → fetch → build → render pipeline for
// co-authorship graphs.
//
// The CLI build command and the HTTP server both drive the pipeline through
// a [Runner], so caching, logging, and output naming behave the same way
// from every entry point.
//
// # Stages
//
//  1. Resolve: turn a name (or profile URL) into a profile locator
//  2. Fetch: download and parse the profile page into publication records
//  3. Build: fold the records into a weighted co-authorship graph
//  4. Render: produce the requested output formats
//
// # Usage
//
//	client := dblp.NewClient(c, cache.TTLHTTP, "")
//	runner := pipeline.NewRunner(client, c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Query:   "Zeshan Khan",
//	    Formats: []string{pipeline.FormatHTML},
//	})
//	if err != nil {
//	    return err
//	}
//	html := result.Artifacts[pipeline.FormatHTML]
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scholarnet/pkg/cache"
	"github.com/matzehuels/scholarnet/pkg/coauthor"
	apperr "github.com/matzehuels/scholarnet/pkg/errors"
	"github.com/matzehuels/scholarnet/pkg/render/network"
	"github.com/matzehuels/scholarnet/pkg/render/nodelink"
)

const (
	// DefaultOutput is the output path when none is given.
	DefaultOutput = "research_network.html"

	// DefaultDepth is the only traversal depth the pipeline performs.
	DefaultDepth = 1

	// DefaultPNGScale is the rasterization scale for PNG output.
	DefaultPNGScale = 2.0
)

// Output formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// Formats lists the supported formats in their canonical order.
var Formats = []string{FormatHTML, FormatJSON, FormatDOT, FormatSVG, FormatPNG, FormatPDF}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	return apperr.ValidateFormat(format, Formats)
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options configures one pipeline run.
// JSON tags let the server accept options in request bodies.
type Options struct {
	Query   string `json:"query"`
	Depth   int    `json:"depth,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	Formats   []string `json:"formats,omitempty"`
	Height    string   `json:"height,omitempty"`
	Width     string   `json:"width,omitempty"`
	BgColor   string   `json:"bg_color,omitempty"`
	FontColor string   `json:"font_color,omitempty"`
	Detailed  bool     `json:"detailed,omitempty"` // full names on node-link labels
	PNGScale  float64  `json:"png_scale,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the query and formats and fills defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := apperr.ValidateQuery(o.Query); err != nil {
		return err
	}
	if o.Depth < 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "depth must not be negative, got %d", o.Depth)
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Depth == 0 {
		o.Depth = DefaultDepth
	}
	o.validated = true
	return nil
}

// SetRenderDefaults fills render options left empty.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	o.Formats = normalizeFormats(o.Formats)
	d := network.DefaultOptions()
	if o.Height == "" {
		o.Height = d.Height
	}
	if o.Width == "" {
		o.Width = d.Width
	}
	if o.BgColor == "" {
		o.BgColor = d.BgColor
	}
	if o.FontColor == "" {
		o.FontColor = d.FontColor
	}
	if o.PNGScale <= 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// DepthIgnored reports whether the caller asked for more than one hop.
func (o *Options) DepthIgnored() bool {
	return o.Depth > DefaultDepth
}

// NetworkOptions returns the interactive page options.
func (o *Options) NetworkOptions() network.Options {
	return network.Options{
		Height:    o.Height,
		Width:     o.Width,
		BgColor:   o.BgColor,
		FontColor: o.FontColor,
	}
}

// NodelinkOptions returns the Graphviz diagram options.
func (o *Options) NodelinkOptions() nodelink.Options {
	return nodelink.Options{
		Detailed:  o.Detailed,
		BgColor:   o.BgColor,
		FontColor: o.FontColor,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
// Only the options that change that format's bytes are included.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatHTML:
		k.Height, k.Width = o.Height, o.Width
		k.BgColor, k.FontColor = o.BgColor, o.FontColor
	case FormatDOT, FormatSVG, FormatPNG, FormatPDF:
		k.BgColor, k.FontColor = o.BgColor, o.FontColor
		if o.Detailed {
			k.Format += "+detailed"
		}
		if format == FormatPNG {
			k.Format += fmt.Sprintf("@%gx", o.PNGScale)
		}
	}
	return k
}

// Result holds the outputs of a pipeline run.
type Result struct {
	Graph     *coauthor.Graph
	Locator   string
	Primary   string
	GraphHash string
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds timing and size information for a run.
type Stats struct {
	Records     int
	Skipped     int
	NodeCount   int
	EdgeCount   int
	ResolveTime time.Duration
	FetchTime   time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	ProfileHit bool
	RenderHit  bool // every requested format came from the cache
}

// OutputPath names the file for one format. With a single format the base
// path is used as given; otherwise its extension is replaced per format.
func OutputPath(base, format string, multi bool) string {
	if base == "" {
		base = DefaultOutput
	}
	if !multi {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}

func normalizeFormats(formats []string) []string {
	var out []string
	for _, f := range formats {
		for _, part := range strings.Split(f, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" && !slices.Contains(out, part) {
				out = append(out, part)
			}
		}
	}
	return out
}
