// SPDX-License-Identifier: MIT

// Package core defines the undirected Graph used to hold similarity graphs
// over structure skeletons, with thread-safe primitives for building and
// querying it.
//
// Vertex ids are arbitrary non-empty strings; batch uses the canonical
// skeleton keys. Edges are unweighted and carry a generated id; the edit
// distance behind an edge stays with the caller.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same two vertices.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices. From is the
// endpoint given first to AddEdge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	From string
	To   string
}

// Graph is an undirected, unweighted simple graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Locks are always taken in that order.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nextEdgeID uint64              // atomic edge ID generator
	vertices   map[string]struct{} // vertex ID set
	edges      []*Edge             // insertion order

	// adjacency[a][b] = edge ID, mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]string),
	}
}
