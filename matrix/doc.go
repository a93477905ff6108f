// SPDX-License-Identifier: MIT

// Package matrix adapts between dense adjacency matrices and the graph
// type the rest of the module works on. It is the ingestion boundary:
// external data usually arrives as a square matrix of floats, and the
// estimation and simulation layers want a validated binary undirected
// graph.
//
// Two modes:
//
//   - Strict (the default). The input must be square, exactly
//     symmetric, hollow (zero diagonal), and binary: every off-diagonal
//     cell is 0 or 1. Anything else is a sentinel error, never a silent
//     repair.
//
//   - Collapse (WithCollapse). Weighted or asymmetric inputs are
//     reduced deterministically: any cell with magnitude above the
//     epsilon threshold counts as a tie, ties are OR-symmetrized
//     (a tie in either direction becomes an undirected tie), and the
//     diagonal is ignored. NaN and infinities stay errors even here.
//
// ToAdjacency goes the other way, and AttachAttrs bulk-loads vertex
// covariate columns onto an existing graph.
//
// Determinism: FromAdjacency reads cells in row-major order and never
// consults global state; equal inputs produce equal graphs.
package matrix
