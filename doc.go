// Package gostreamiter provides lazy, single-pass iteration over elements that are
// exposed as borrowed views into iterator-owned storage, rather than as owned values.
//
// This matters when the natural representation of "the next element" is a slice,
// window, or parsed record that would otherwise need a fresh allocation or copy on
// every step purely to satisfy an output-by-value contract. Iterators here hand out
// a pointer into their own storage instead.
//
// Iterators are driven by a pair of operations, Advance and Get, rather than a
// single fused step. Advance moves the iterator one position forward; Get returns a
// view of the current element, or nil once there is none. Next combines the two and
// is the usual way to consume an iterator:
//
//	for elem := gostreamiter.Next(it); elem != nil; elem = gostreamiter.Next(it) {
//		// work with elem
//	}
//
// The split into two operations exists so that adaptors such as Filter can advance
// the inner iterator several positions, inspecting each intermediate element,
// before committing to a final one.
//
// The pointer returned by Get is only valid until the next call to Advance on the
// same iterator: an Advance may overwrite the storage the pointer refers to. Copy
// the element if it must outlive the step. Get never allocates and is idempotent
// between advances.
//
// Iterators start just before their first element, so Advance must be called before
// the first Get. Calling Get before the first Advance, or Advance after exhaustion,
// is unspecified for most iterators; wrap an iterator in Fuse to make both cases
// well defined (always nil).
//
// Sources are constructed from slices (FromSlice), channels (FromChannel), or any
// standard value-producing sequence (Convert). Adaptors such as Map, Filter, Skip
// and Take wrap an inner iterator and pull from it on demand; no adaptor buffers
// more than a single element. Cloned, Owned and Collect bridge back out to owned
// values.
//
// Iteration is synchronous and pull-based. No operation on a single iterator may be
// invoked concurrently with another; there is no internal locking. An iterator
// handed to an adaptor remains reachable through the original interface value, and
// uses of the two handles must be sequenced by the caller.
package gostreamiter
