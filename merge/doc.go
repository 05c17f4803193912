// Package merge implements the iterative region-merging engine: a
// cheapest-first scheduler over a region adjacency graph that merges region
// pairs under a composable scoring function until a score threshold is
// reached.
//
// The engine keeps a lazy min-heap of edge ids keyed by score (ties broken
// by ascending edge id) and never removes queue entries in place. Instead,
// edges carry two flags:
//
//   - deleted (on the graph): the edge was consumed by a merge or absorbed
//     by a parallel edge; popped entries for it are discarded.
//   - stale (on the engine): a neighboring merge changed the statistics
//     under the edge's recorded score; on pop the edge is rescored and
//     pushed back instead of merged.
//
// This optimistic discipline is sound because of monotone regret: a merge
// can only increase the true score of a surviving edge (regions grow,
// affinity maxima absorb parallel samples), so a stale edge surfaces no
// earlier than its recorded (smaller) score and re-enters the queue at its
// true one - no merge below the threshold is ever missed. The engine
// verifies the property on every rescoring and fails fast with
// ErrScoreRegression when a scoring function breaks it; silently accepting
// a decrease would unsound the queue.
//
// Merging an edge {a,b} allocates a fresh cluster node c, records a and b
// as children of c in the merge tree, and rewires the neighborhood with a
// move-then-detect-duplicate pass: every surviving incident edge of a and b
// is retargeted to c in place (first sighting of a neighbor), and when a
// second edge to the same neighbor turns up, the one with the smaller
// current score survives, absorbs the statistics of the other, and the
// loser is flagged deleted. FindEdge scans the already-moved edges on c, so
// the second sighting finds the first - this is why MoveEdge updates
// incidence eagerly.
//
// Statistics stay consistent through two channels: the scoring function's
// own merge callbacks (forwarded leaf-by-leaf through operator scorers),
// and optional Observers - typically the stats.Compound that ingested the
// RAG - which receive every merge first, so providers the scorer never
// reads are folded too.
//
// MergeUntil(t) is idempotent for t ≤ MergedUntil() and composes: calling
// it for an ascending sequence of thresholds produces the same merge
// history as a single call with the last one. Segmentation extraction maps
// labels to their current merge-tree root via GetRoot (path-compressing)
// or Relabel for whole label buffers.
//
// The engine is single-threaded; nothing here is safe for concurrent use.
//
// Errors:
//
//	ErrNilGraph        - constructor received a nil region graph.
//	ErrNilScoring      - constructor received a nil scoring function.
//	ErrScoreRegression - a stale edge rescored below its recorded score.
package merge
