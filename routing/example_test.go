// Package routing_test provides runnable examples for the routing engine.
package routing_test

import (
	"fmt"

	"github.com/katalvlaran/hroute/multigraph"
	"github.com/katalvlaran/hroute/routing"
)

// ExampleShortestPath blends optimistic and pessimistic weights.
func ExampleShortestPath() {
	g := multigraph.NewGraph()
	for _, v := range []string{"Home", "Bridge", "Work"} {
		_ = g.InsertVertex(v)
	}
	// Highway is fast at night (w0) and jammed at rush hour (w1).
	_ = g.AddEdge("highway", "Home", "Work", 10, 40)
	_ = g.AddEdge("street", "Home", "Bridge", 12, 14)
	_ = g.AddEdge("street", "Bridge", "Work", 12, 14)

	for _, alpha := range []float64{0, 1} {
		p, _, err := routing.ShortestPath(g, "Home", "Work", alpha)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		names, _ := p.Names(g)
		cost, _ := p.Cost(g, alpha)
		fmt.Printf("alpha=%.0f %v cost=%.0f\n", alpha, names, cost)
	}
	// Output:
	// alpha=0 [Home Work] cost=10
	// alpha=1 [Home Bridge Work] cost=28
}
