// Package sequence implements the node sequence set operators: union,
// intersect and except.
//
// Each operand is either a single node tree or a sequence whose entries are
// all node trees. Two nodes are the same node when their local node ids are
// equal; a node without an id is compared by the bytes of its encoded tree.
// Local ids are not qualified by document, so nodes of different documents
// that reuse an id compare equal.
//
// Results are sequences in operand order (see Union for the exact order);
// they are not sorted into document order.
package sequence
