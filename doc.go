// Package dimred projects high-dimensional vectors onto a few dimensions
// with three classical techniques and the numeric machinery they share.
//
// 🚀 What is dimred?
//
//	A small, deterministic toolkit for dimensionality reduction:
//		• PCA: leading eigenvectors of the sample covariance
//		• LDA: discriminant directions for labeled data
//		• Isomap: geodesic distances on a neighbor graph + classical MDS
//
// ✨ Why dimred?
//
//   - Reproducible: every random start vector comes from an explicit seed
//   - Bounded: fixed iteration budgets, no open-ended convergence loops
//   - Safe: engines return sentinel errors instead of panicking
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      — row-major Dense, kernels, statistics, Floyd–Warshall, gonum bridge
//	vecmath/     — dot/norm/normalize/Gram–Schmidt, cosine similarity, top-k search
//	reduce/      — PowerIterator, PCA, LDA, Isomap, ClassicalMDS, RunAll
//	synth/       — labeled Gaussian clusters for experiments and tests
//	projcache/   — content-addressed result cache (xxhash keys)
//	cmd/dimred/  — command-line front end (generate, project, nearest, demo)
//
// Quick start:
//
//	ds, _ := synth.Clusters(20, 3, 10, synth.WithMinSeparation(5))
//	res, _ := reduce.LDA(ds.Data, ds.Labels)
//	fmt.Println(res.Components()) // 2
package dimred
