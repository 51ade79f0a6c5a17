// Package lvlheap compares two mergeable priority queues as the engine of
// Dijkstra's single-source shortest-path algorithm on weighted undirected
// graphs.
//
// What is inside?
//
//	• leftist/      — leftist tree: meld-based insert / deleteMin, decrease-key
//	                  as full-tree delete + reinsert
//	• fibheap/      — Fibonacci heap over an index arena: handles, lazy
//	                  consolidation, cascading cuts
//	• shortestpath/ — Graph and the decrease-key Dijkstra loop over either queue
//	• builder/      — seeded graph constructors (random density, G(n,p), path,
//	                  cycle, star, complete)
//	• edgelist/     — the "<source> / <n m> / u v w" file format and distance
//	                  reports
//	• bench/        — timing, cross-validation, YAML config, Prometheus metrics
//	• cmd/lvlheap/  — the command line: -r n d x | -l FILE | -f FILE | -config FILE
//
// Quick example:
//
//	g, _ := shortestpath.NewGraph(4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 5)
//	_ = g.AddEdge(2, 3, 1)
//	dist, _ := shortestpath.Run(g, 0, shortestpath.WithQueue(shortestpath.LeftistTree))
//	// dist == [0 1 3 4]
//
//	go get github.com/katalvlaran/lvlheap
package lvlheap
