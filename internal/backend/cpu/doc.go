// Package cpu implements the tensor.Backend interface on the host CPU.
//
// Element-wise kernels are plain Go loops with a fixed iteration order,
// which keeps training runs bit-for-bit reproducible for a given seed.
// Matrix multiplication is delegated to gonum's BLAS implementation.
package cpu
