// Package score composes statistics providers into scalar edge scores for
// the merging engine. Lower scores merge earlier.
//
// A scoring function is any implementation of Func:
//
//	Score(e) float64         - the current score of edge e
//	NotifyNodeMerge(a, b, c) - regions a and b were merged into cluster c
//	NotifyEdgeMerge(from, to) - edge "from" was absorbed by parallel "to"
//
// Leaf scorers read a single statistic (MinSize, MaxSize, MinAffinity,
// MaxAffinity, MeanAffinity, QuantileAffinity, MaxKAffinity, ContactArea,
// Random, Const). Operator scorers wrap children: unary OneMinus, Invert,
// Square; binary Add, Subtract, Multiply, Divide. Operators forward both
// merge callbacks to every child, so an arbitrarily deep composition stays
// consistent across merges.
//
// Scorers are pure with respect to provider state: two Score calls with no
// intervening merge return the same value. The node-merge folds of the
// size leaves are written as assignments (size[c] = size[a] + size[b]), so
// a provider shared by two leaves tolerates the double notification that
// operator forwarding produces. Sample-accumulating providers (quantile,
// mean, top-K) fold on edge merges only and each should be wrapped by a
// single leaf.
//
// The canonical composition of the default driver is
//
//	Multiply(OneMinus(MaxAffinity), MinSize)
//
// which merges small, weakly connected region pairs first and large,
// strongly connected pairs last.
package score
