// Package core provides the shared evaluation substrate for all lvlopt engines:
// opaque solution buffers, the direction predicate, counted objective evaluation,
// deterministic RNG streams, the default solution hash, the best-of-K local
// search kernel and the shared acceptance-criteria module.
//
// Solutions are fixed-size byte buffers of ElemSize()·Dimension() bytes whose
// semantics belong entirely to the caller's Problem implementation; the engines
// never interpret buffer contents. All cost comparisons route through a single
// Direction predicate, so minimize/maximize semantics are encoded exactly once.
//
// Every objective call goes through an Evaluator, which increments the
// evaluation counter — the Problem.Cost contract ("pure function of the buffer")
// is load-bearing for that accounting.
//
// Errors:
//
//	ErrNilProblem        - problem implementation is nil.
//	ErrZeroDimension     - Dimension() or ElemSize() is not positive.
//	ErrDimensionMismatch - a buffer does not match the problem's byte length.
//	ErrBadOptions        - an options field is out of its documented range.
package core
