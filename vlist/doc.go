// SPDX-License-Identifier: MIT

// Package vlist provides List, a double-ended vertex sequence backed by a
// power-of-two ring buffer.
//
// Searches build their result path by prepending predecessors while walking
// back from the meeting vertex and appending successors on the other side;
// both ends are amortized O(1). The buffer starts at MinCapacity slots and
// doubles when full. WithMaxLen bounds the length; a push beyond it fails
// with ErrOutOfMemory and leaves the list unchanged.
package vlist
