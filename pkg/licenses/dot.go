package licenses

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

var categoryColors = map[string]string{
	"permissive":      "palegreen",
	"weak-copyleft":   "khaki",
	"strong-copyleft": "salmon",
}

// ReadEdges loads a license-incompatibilities.csv data file.
func ReadEdges(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = 2

	var edges []Edge
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return edges, nil
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedRow, err, "read %s", path)
		}
		from, err1 := strconv.Atoi(rec[0])
		to, err2 := strconv.Atoi(rec[1])
		if err1 != nil || err2 != nil {
			line, _ := cr.FieldPos(0)
			return nil, errors.New(errors.ErrCodeMalformedRow, "%s line %d: ids must be integers", path, line)
		}
		edges = append(edges, Edge{from, to})
	}
}

// ToDOT converts incompatibility edges to Graphviz DOT. Nodes are labeled
// with license names from reg and filled by rules category. Licenses that
// take part in no edge are left out.
func ToDOT(reg *Registry, edges []Edge, rules Rules) string {
	var ids []int
	seen := map[int]bool{}
	for _, e := range edges {
		for _, id := range []int{e.From, e.To} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	slices.Sort(ids)

	var buf bytes.Buffer
	buf.WriteString("digraph licenses {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, id := range ids {
		name, ok := reg.Name(id)
		if !ok {
			name = "#" + strconv.Itoa(id)
		}
		attrs := fmt.Sprintf("label=%q", name)
		if color, ok := categoryColors[rules.Category(name)]; ok {
			attrs += ", fillcolor=" + color
		}
		fmt.Fprintf(&buf, "  l%d [%s];\n", id, attrs)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  l%d -> l%d;\n", e.From, e.To)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	return buf.Bytes(), nil
}
