// Package matrix provides the dense linear-algebra layer of dimred.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     explicit numeric policy (NaN/Inf rejection, +Inf as a distance sentinel).
//   - Kernels: Mul, Transpose, Scale, MatVec, rank-1 update (deflation) and
//     diagonal shift (regularization).
//   - Statistics: column means, centering, Gram/scatter, sample covariance,
//     pairwise Euclidean distances.
//   - Graph distances: in-place Floyd–Warshall over +Inf-sentinel matrices,
//     MaxFinite and ReplaceInfInPlace for disconnected components.
//
// Dense matrices are intended for N, D in the tens to low hundreds; every
// kernel is O(n²) memory and Floyd–Warshall is O(n³) time.
package matrix
