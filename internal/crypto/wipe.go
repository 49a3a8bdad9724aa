// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/awnumar/memguard"

// Wipe overwrites b with zeros so secret material does not linger in memory
// after use. Best effort: Go gives no guarantee about copies the runtime may
// have made, but every buffer this package hands out is wiped on all exit
// paths of the operation that created it.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
