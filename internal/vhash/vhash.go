// Package vhash maps a vertex identifier to a row or column index of the
// sketch's bucket matrix.
//
// H is deterministic and reasonably uniform (xxhash-class, per the design
// notes this package is grounded on), and is the single place the matrix
// dimension N is folded into a hash value — earlier drafts of this sketch
// hardcoded the modulus, which silently broke the moment N changed.
package vhash

import "github.com/cespare/xxhash/v2"

// VID is a vertex identifier. Zero is reserved as the "empty" sentinel by
// the sketch and must never reach H from a caller that wants a meaningful
// index; H itself is total (H(0, n) is well-defined) so callers that
// already validated their input don't need a second branch here.
type VID = int32

// H maps id to an index in [0, n). n must be > 0.
//
// The same function is used for both the source and destination axes of
// the matrix; callers that need the row and the column call H twice with
// the respective identifiers.
func H(id VID, n int) int {
	var buf [4]byte
	buf[0] = byte(id)
	buf[1] = byte(id >> 8)
	buf[2] = byte(id >> 16)
	buf[3] = byte(id >> 24)

	sum := xxhash.Sum64(buf[:])

	return int(sum % uint64(n))
}
