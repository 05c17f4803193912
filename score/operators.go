package score

// This file implements the operator scorers. Each wraps one or two child
// scoring functions, applies a primitive arithmetic operation to their
// scores, and forwards both merge callbacks to every child so provider
// state stays consistent however deep the composition is.

import "github.com/katalvlaran/lvlseg/rag"

// unaryOp applies f to the score of a single child.
type unaryOp struct {
	child Func
	f     func(float64) float64
}

func (o *unaryOp) Score(e rag.EdgeID) float64 { return o.f(o.child.Score(e)) }

func (o *unaryOp) NotifyNodeMerge(a, b, c rag.NodeID) { o.child.NotifyNodeMerge(a, b, c) }

func (o *unaryOp) NotifyEdgeMerge(from, to rag.EdgeID) { o.child.NotifyEdgeMerge(from, to) }

// binaryOp applies f to the scores of two children.
type binaryOp struct {
	left, right Func
	f           func(float64, float64) float64
}

func (o *binaryOp) Score(e rag.EdgeID) float64 { return o.f(o.left.Score(e), o.right.Score(e)) }

func (o *binaryOp) NotifyNodeMerge(a, b, c rag.NodeID) {
	o.left.NotifyNodeMerge(a, b, c)
	o.right.NotifyNodeMerge(a, b, c)
}

func (o *binaryOp) NotifyEdgeMerge(from, to rag.EdgeID) {
	o.left.NotifyEdgeMerge(from, to)
	o.right.NotifyEdgeMerge(from, to)
}

// OneMinus returns the scorer 1 − x(e).
func OneMinus(x Func) Func {
	return &unaryOp{child: x, f: func(v float64) float64 { return 1 - v }}
}

// Invert returns the scorer 1 / x(e).
func Invert(x Func) Func {
	return &unaryOp{child: x, f: func(v float64) float64 { return 1 / v }}
}

// Square returns the scorer x(e)².
func Square(x Func) Func {
	return &unaryOp{child: x, f: func(v float64) float64 { return v * v }}
}

// Add returns the scorer a(e) + b(e).
func Add(a, b Func) Func {
	return &binaryOp{left: a, right: b, f: func(x, y float64) float64 { return x + y }}
}

// Subtract returns the scorer a(e) − b(e).
func Subtract(a, b Func) Func {
	return &binaryOp{left: a, right: b, f: func(x, y float64) float64 { return x - y }}
}

// Multiply returns the scorer a(e) · b(e).
func Multiply(a, b Func) Func {
	return &binaryOp{left: a, right: b, f: func(x, y float64) float64 { return x * y }}
}

// Divide returns the scorer a(e) / b(e).
func Divide(a, b Func) Func {
	return &binaryOp{left: a, right: b, f: func(x, y float64) float64 { return x / y }}
}
