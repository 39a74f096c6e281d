package coauthor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// Node and edge palette.
const (
	PrimaryColor  = "red"
	DefaultColor  = "#1f78b4"
	BaseEdgeColor = "#8BA4DA"
)

const (
	baseNodeSize     = 10
	nodeSizePerPaper = 2

	// Edges stop darkening at this many shared papers.
	edgeSaturationWeight = 10.0
	edgeMaxDarkening     = 0.7
)

var baseEdge = mustHex(BaseEdgeColor)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// EdgeColor returns the hex color of an edge with the given weight. The base
// color is scaled toward black by up to 70%, reaching the darkest shade at a
// weight of ten.
func EdgeColor(weight int) string {
	norm := float64(weight) / edgeSaturationWeight
	norm = min(max(norm, 0), 1)
	f := 1 - edgeMaxDarkening*norm
	return colorful.Color{R: baseEdge.R * f, G: baseEdge.G * f, B: baseEdge.B * f}.Hex()
}

// NodeSize returns the display size for an author with count papers.
func NodeSize(count int) int {
	return baseNodeSize + nodeSizePerPaper*count
}

// Initials returns the first character of each whitespace-separated part of
// name, e.g. "Zeshan Khan" becomes "ZK".
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return b.String()
}

func nodeColor(primary bool) string {
	if primary {
		return PrimaryColor
	}
	return DefaultColor
}

func nodeTooltip(name, primary string, count int, isPrimary bool) string {
	if isPrimary {
		return fmt.Sprintf("%s\nTotal Papers: %d", name, count)
	}
	return fmt.Sprintf("%s\nCo-authored with %s: %d", name, primary, count)
}
