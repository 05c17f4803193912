package merge

import "errors"

// Sentinel errors for the merging engine.
var (
	// ErrNilGraph indicates NewMerging received a nil region graph.
	ErrNilGraph = errors.New("merge: region graph must not be nil")
	// ErrNilScoring indicates NewMerging received a nil scoring function.
	ErrNilScoring = errors.New("merge: scoring function must not be nil")
	// ErrScoreRegression indicates a stale edge rescored below its recorded
	// score - a correctness bug in the scoring function or its providers
	// that would unsound the priority queue.
	ErrScoreRegression = errors.New("merge: stale edge rescored below its recorded score")
)
