// Package scene defines the provider interfaces through which canvasmith
// observes the host canvas: opaque node handles exposing whatever bounds
// information the host has, and a viewport with a current center point.
//
// The core never owns scene state. Nodes are read-only handles; each accessor
// reports availability through an ok result so the anchor resolver can walk a
// priority chain of strategies. The inmemory subpackage provides a concrete
// implementation used in tests and by the CLI.
package scene
