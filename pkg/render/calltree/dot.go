package calltree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Options configures call tree rendering.
type Options struct {
	// Detailed adds the move each call makes to its label.
	// When false, only the call signature is shown.
	Detailed bool
}

// ToDOT converts a call tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Nodes are named by the step of their move. Calls on a single disk are
// drawn as leaves with a grey fill.
func ToDOT(root *Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	root.Walk(func(n *Node) {
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed))
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(n), strings.Join(attrs, ", "))
	})

	buf.WriteString("\n")
	root.Walk(func(n *Node) {
		for _, child := range []*Node{n.Before, n.After} {
			if child != nil {
				fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID(n), nodeID(child))
			}
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(n *Node) string {
	return "s" + strconv.Itoa(n.Move.Step)
}

func fmtLabel(n *Node, detailed bool) string {
	if !detailed {
		return n.Label()
	}
	return n.Label() + "\n" + n.Move.String()
}

func fmtAttrs(n *Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Count == 1 {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
