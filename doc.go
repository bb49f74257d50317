/*
Package fragmap provides a keyed map whose copy operation is O(1)
regardless of size, while giving the copy and the original full value
semantics: writes on either are isolated from the other.

Uses

- Speculative evaluators and interpreters that need many near-duplicate
scoped environments

- Search frontiers and backtracking solvers that branch a large map on
every step

- An efficient copy-on-write alternative to copying a Go builtin map

How it works

A Map handle references a leaf fragment. Fragments form a shared parent
chain; each fragment records only the delta (inserts/overrides and
tombstones) relative to its parent. Copy() bumps a shared flag on the
leaf and hands back a second handle over the same fragment; the first
write through either handle branches a fresh, exclusively-owned leaf
before mutating, so the two handles never observe each other's writes.

Concurrency

A Map handle has a single logical owner; concurrent use of one handle
across goroutines is not supported without external synchronization.
Copy() creates a new handle that can evolve independently, sharing all
unmodified fragments with its source, and is consequently cheap.

Inspiration

Mohit Saini's lazy_map.hpp, and jrhy/mast's use of a shared/ToMut flag
to avoid mutating an aliased node.
*/
package fragmap
