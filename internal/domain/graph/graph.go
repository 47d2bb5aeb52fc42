package graph

import "sort"

// Graph is an undirected adjacency map over skill and job-record nodes.
// Built once per dataset; never mutated during an analysis request.
type Graph struct {
	adj      map[string]map[string]struct{}
	jobNodes map[string]struct{}
}

func newGraph() *Graph {
	return &Graph{
		adj:      make(map[string]map[string]struct{}),
		jobNodes: make(map[string]struct{}),
	}
}

func (g *Graph) addNode(node string, job bool) {
	if _, ok := g.adj[node]; !ok {
		g.adj[node] = make(map[string]struct{})
	}
	if job {
		g.jobNodes[node] = struct{}{}
	}
}

func (g *Graph) addEdge(a, b string) {
	if a == b {
		return
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

func (g *Graph) HasNode(node string) bool {
	if g == nil {
		return false
	}
	_, ok := g.adj[node]
	return ok
}

func (g *Graph) HasEdge(a, b string) bool {
	if g == nil {
		return false
	}
	n, ok := g.adj[a]
	if !ok {
		return false
	}
	_, ok = n[b]
	return ok
}

// IsJob reports whether the node is a job-record node rather than a skill.
func (g *Graph) IsJob(node string) bool {
	if g == nil {
		return false
	}
	_, ok := g.jobNodes[node]
	return ok
}

// Nodes returns all node names in deterministic order.
func (g *Graph) Nodes() []string {
	if g == nil {
		return nil
	}
	out := make([]string, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Neighbors returns the deduplicated neighbor list of node in deterministic
// order.
func (g *Graph) Neighbors(node string) []string {
	if g == nil {
		return nil
	}
	set, ok := g.adj[node]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}
	return len(g.adj)
}

func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	total := 0
	for _, set := range g.adj {
		total += len(set)
	}
	return total / 2
}

// Reachable reports whether to can be reached from from by BFS.
func (g *Graph) Reachable(from, to string) bool {
	if g == nil || !g.HasNode(from) || !g.HasNode(to) {
		return false
	}
	if from == to {
		return true
	}
	visited := map[string]struct{}{from: {}}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next := range g.adj[cur] {
			if next == to {
				return true
			}
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return false
}
