// Package terms defines ERGM model terms: named sufficient statistics
// over a core.Graph together with their change statistics, the
// increments implied by toggling a single dyad.
//
// A Term contributes one coordinate to the model's statistic vector
// g(y). Two evaluation modes exist:
//
//   - Stat(g) recomputes the statistic from scratch, O(edges·n) at worst.
//   - Change(g, i, j) returns g(y⁺ᵢⱼ) − g(y⁻ᵢⱼ): the statistic's change
//     when the dyad (i, j) goes from absent to present, with every other
//     dyad held at its current state. The dyad's own current state is
//     ignored (masked), so Change is well-defined whether or not the tie
//     exists, and it never mutates the graph.
//
// The change-statistic contract is the foundation of efficient MCMC:
// one Metropolis–Hastings proposal needs only θ·Δg, and Δg touches only
// dyads sharing a vertex with the proposal. The invariant, verified by
// a property test in this package:
//
//	Stats(g with (i,j) tied) − Stats(g with (i,j) untied) == Changes(g, i, j)
//
// Built-in terms:
//
//	Edges()           — total tie count; change ≡ 1.
//	AbsDiff(attr)     — Σ over ties of |xᵢ − xⱼ| for numeric column attr.
//	NodeMatch(attr)   — Σ over ties of 1{cᵢ == cⱼ} for categorical attr.
//	GWESP(alpha)      — geometrically weighted edgewise shared partners
//	                    with fixed decay α ≥ 0; the induced-dependence
//	                    term (its change statistic reads graph state).
//
// Covariate terms implement Binder and must be bound to a concrete
// graph before evaluation so column lookups happen once, not per dyad.
// Bind every term list through Bind before handing it to a sampler.
//
// Errors:
//
//	ErrNoTerms     - empty term list where at least one is required.
//	ErrUnknownAttr - a covariate term names a column the graph lacks.
//	ErrBadDecay    - GWESP decay is negative, NaN or Inf.
//	ErrNotBound    - a covariate term was evaluated before Bind.
package terms
