package node

import "errors"

var (
	// ErrInvalidArgument signals a missing mandatory argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned when a node that is still linked is added.
	ErrInvalidState = errors.New("node is already linked")
	// ErrConcurrentModification is reported by an iterator when the list
	// changed since the iteration started.
	ErrConcurrentModification = errors.New("version mismatch, the collection was modified")
	// ErrCorruptedState signals that the links of the list are inconsistent,
	// usually because node links were changed outside of the list.
	ErrCorruptedState = errors.New("collection is corrupted")
)
