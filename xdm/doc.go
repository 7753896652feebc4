// Package xdm provides zero-copy views over the binary encoding of XDM
// values: tagged scalars, sequences, and node trees.
//
// # Overview
//
// Every value is a tagged region: a one-byte tag followed by a payload whose
// interpretation the tag alone determines. Views in this package never own
// memory. A view is anchored over (buffer, offset, length) with Set and can be
// re-anchored any number of times, so hot loops reuse a handful of views
// instead of allocating per item.
//
//	var tv xdm.TaggedValue
//	var seq xdm.Sequence
//	tv.SetBytes(region)
//	if tv.Tag() == format.TagSequence {
//	    tv.Value(&seq)
//	    for i := 0; i < seq.EntryCount(); i++ {
//	        seq.Entry(i, &tv)
//	        ...
//	    }
//	}
//
// # Key Types
//
//   - Pointable: the re-anchorable (buffer, offset, length) view all others embed
//   - TaggedValue: tag byte plus payload
//   - Sequence: count, (offset, length) slot table, entries
//   - NodeTree: header, optional dictionary, root node
//   - Node and the kind views DocumentNode, ElementNode, AttributeNode,
//     TextNode, CommentNode, PINode
//   - String, Boolean, Long, Int, Short, Byte, Float, Double, Decimal
//
// # Validation
//
// Accessors trust their input: reading a region with the wrong tag is
// undefined, and callers check Tag before dispatch. Regions from outside the
// process should go through Validate first, which walks the whole value and
// reports layout errors from the format package.
//
// # Lifetimes
//
// A view aliases the bytes it was anchored on. If the underlying buffer is
// reused (for example a builder's storage after Reset), every view anchored
// on it is stale.
package xdm
