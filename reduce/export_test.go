// SPDX-License-Identifier: MIT

package reduce

// Test bridge: exposes unexported kernels to reduce_test only.
var (
	GaussSeidel       = gaussSeidel
	EnumerateClasses  = enumerateClasses[string]
	NeighborGraph     = neighborGraph
)
