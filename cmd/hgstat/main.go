// Command hgstat loads an edge list and prints a single requested
// centrality or connectivity statistic, exercising hgraph, hgpath,
// centrality, connect and metrics end to end.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/gonum-extra/centrality"
	"github.com/gonum-extra/connect"
	"github.com/gonum-extra/hgpath"
	"github.com/gonum-extra/hgraph"
	"github.com/gonum-extra/hgraph/simple"
	ilog "github.com/gonum-extra/internal/log"
	"github.com/gonum-extra/metrics"
)

func main() {
	edgeList := flag.String("edges", "", "path to a CSV edge list: from,to per line (further fields are ignored)")
	directed := flag.Bool("directed", false, "treat the graph as directed")
	stat := flag.String("stat", "degree", "statistic to print: degree|closeness|betweenness|weak|strong|distances")
	flag.Parse()

	logger := ilog.Default()
	if *edgeList == "" {
		logger.Error("missing required -edges flag")
		os.Exit(2)
	}

	f, err := os.Open(*edgeList)
	if err != nil {
		logger.Error("open edge list", slog.Any("err", err))
		os.Exit(1)
	}
	defer f.Close()

	g, err := loadGraph(f, *directed)
	if err != nil {
		logger.Error("load graph", slog.Any("err", err))
		os.Exit(1)
	}

	if err := run(os.Stdout, g, *stat); err != nil {
		logger.Error("run statistic", slog.String("stat", *stat), slog.Any("err", err))
		os.Exit(1)
	}
}

func loadGraph(r io.Reader, directed bool) (*simple.Graph, error) {
	g := simple.New(directed)
	vertices := make(map[int64]hgraph.Vertex)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	get := func(id int64) hgraph.Vertex {
		v, ok := vertices[id]
		if !ok {
			v = simple.VertexID(id)
			vertices[id] = v
			g.AddVertex(v)
		}
		return v
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("hgstat: malformed edge record %v", rec)
		}
		from, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, err
		}
		to, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return nil, err
		}

		u, v := get(from), get(to)
		if directed {
			g.AddDirectedEdge(u, v)
		} else {
			g.AddEdge(u, v)
		}
	}
	return g, nil
}

func run(w io.Writer, g hgraph.Graph, stat string) error {
	switch stat {
	case "degree":
		d := centrality.NewDegree(g, centrality.ModeTotal)
		return printScores(w, g, d.Scores())
	case "closeness":
		oracle := hgpath.NewBFSOracle(g)
		c := centrality.NewCloseness(g, oracle)
		return printScores(w, g, c.Scores())
	case "betweenness":
		b := centrality.Betweenness(g)
		return printScores(w, g, b.Vertex)
	case "weak":
		for i, c := range connect.Weak(g) {
			fmt.Fprintf(w, "component %d: %d vertices\n", i, len(c))
		}
		return nil
	case "strong":
		sccs, err := connect.Strong(g)
		if err != nil {
			return err
		}
		for i, c := range sccs {
			fmt.Fprintf(w, "component %d: %d vertices\n", i, len(c))
		}
		return nil
	case "distances":
		oracle := hgpath.NewBFSOracle(g)
		r := metrics.Distances(g, oracle)
		fmt.Fprintf(w, "diameter=%g radius=%g center=%d periphery=%d\n",
			r.Diameter, r.Radius, len(r.Center), len(r.Periphery))
		return nil
	default:
		return fmt.Errorf("hgstat: unknown statistic %q", stat)
	}
}

func printScores(w io.Writer, g hgraph.Graph, scores map[int64]float64) error {
	ids := make([]int64, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fmt.Fprintf(w, "%d\t%g\n", id, scores[id])
	}
	return nil
}
