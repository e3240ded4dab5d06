package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Use [Graph.EnsureNode] for lookup-or-create.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node that doesn't exist.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")
)

// Metadata keys set by [Build].
const (
	MetaAccountID    = "account_id"
	MetaRegion       = "region"
	MetaConnectionID = "connection_id"
)

// Metadata stores arbitrary key-value pairs attached to nodes, edges or the
// graph. Metadata maps are never nil once stored in a Graph.
type Metadata map[string]any

// String returns the value at key if it is a string, or "".
func (m Metadata) String(key string) string {
	s, _ := m[key].(string)
	return s
}

// Node is a VPC. ID is the vpc id.
type Node struct {
	ID   string
	Meta Metadata
}

// AccountID returns the owning account recorded when the node was created.
func (n Node) AccountID() string { return n.Meta.String(MetaAccountID) }

// Region returns the node's region, or "" when the export omitted it.
func (n Node) Region() string { return n.Meta.String(MetaRegion) }

// Edge is a directed peering connection from requester to accepter.
type Edge struct {
	From string
	To   string
	Meta Metadata
}

// ConnectionID returns the pcx id carried by the edge.
func (e Edge) ConnectionID() string { return e.Meta.String(MetaConnectionID) }

// Graph is a directed multigraph of VPCs joined by peering connections.
// Self-loops and parallel edges are allowed; cycles are expected (peering is
// not hierarchical).
//
// Node iteration follows insertion order, so anything derived from a Graph
// built from the same input is deterministic.
//
// The zero value is not usable - use New. Graph is not safe for concurrent use.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
	meta     Metadata
}

// New creates an empty Graph with optional graph-level metadata.
func New(meta Metadata) *Graph {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		meta:     meta,
	}
}

// Meta returns the graph-level metadata map.
func (g *Graph) Meta() Metadata { return g.meta }

// AddNode adds a node. Returns ErrInvalidNodeID for an empty ID or
// ErrDuplicateNodeID if the ID is taken.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	return nil
}

// EnsureNode returns the node with n.ID, adding n first if it is absent.
// An existing node is returned untouched: the first-seen attributes win.
// The boolean reports whether the node was created by this call.
func (g *Graph) EnsureNode(n Node) (*Node, bool, error) {
	if existing, ok := g.nodes[n.ID]; ok {
		return existing, false, nil
	}
	if err := g.AddNode(n); err != nil {
		return nil, false, err
	}
	return g.nodes[n.ID], true, nil
}

// AddEdge adds a directed edge between two existing nodes.
// Parallel edges and self-loops are kept as given.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// Node returns the node with the given ID and true, or nil and false.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order. The pointers refer to the
// graph's own nodes.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of outgoing edges from the node.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// AccountIDs returns the distinct node account ids in sorted order.
// Nodes without an account id are skipped.
func (g *Graph) AccountIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, id := range g.order {
		a := g.nodes[id].AccountID()
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		ids = append(ids, a)
	}
	slices.Sort(ids)
	return ids
}

// Validate checks that every edge references existing nodes.
// It returns an error wrapping ErrInvalidEdgeEndpoint naming the first bad edge.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if _, ok := g.nodes[e.From]; !ok {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrInvalidEdgeEndpoint)
		}
		if _, ok := g.nodes[e.To]; !ok {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrInvalidEdgeEndpoint)
		}
	}
	return nil
}
