// Package builder writes XDM values in the binary encoding read by package xdm.
//
// # Overview
//
// Everything written here is write-once. A ValueStorage accumulates bytes
// until the caller takes them; a SequenceBuilder stages tagged items and lays
// out the count and slot table on Finish; TreeBuilder encodes a node tree
// from an in-memory description. Built regions are never patched afterwards.
//
// # Basic Usage
//
//	var out builder.ValueStorage
//	var sb builder.SequenceBuilder
//
//	sb.Reset(&out)
//	for i := range items {
//	    if err := sb.AddItem(&items[i]); err != nil {
//	        return err
//	    }
//	}
//	if err := sb.Finish(); err != nil {
//	    return err
//	}
//	out.TaggedValue(&result)
//
// Storage, builders, and the views anchored on their bytes are not safe for
// concurrent use. Give each goroutine its own.
package builder
