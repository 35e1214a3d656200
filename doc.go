// Package eqs provides the dense linear-algebra value types used by
// equation-solving and geometry toolkits: a fixed-shape Matrix and a
// companion Vector.
//
// What eqs gives you:
//
//   - Matrix: a dense, row-major float64 grid with a fixed shape, created
//     zero-filled and mutated in place through bounds-checked accessors
//     (Set, AddAt, SetData, SetIdentityRow, SetIdentityCol, Scale).
//   - Derived values: Clone, element-wise Plus, and TimesVector allocate
//     fresh results and never touch their operands.
//   - Transpose-free reads: TransposedAt remaps (row, col) → (col, row) in
//     O(1), so normal-equation style call sites never pay for a physical
//     transpose.
//   - Vector: length, indexed get/set/accumulate, Plus/Minus, Dot, Norm,
//     and in-place Scale; the operand and result type of TimesVector.
//   - Tolerance equality: Equals compares element pairs through the
//     eqs/nums policy rather than bit-for-bit, because these values come
//     out of floating-point accumulation.
//
// Design guarantees:
//
//   - No panics on user errors - every indexed or size-dependent operation
//     returns a sentinel error (ErrOutOfRange, ErrSizeMismatch, ...)
//     matchable with errors.Is.
//   - Deterministic loop orders; no global state, no hidden allocation in
//     mutators.
//   - Single-threaded value semantics: mutators require exclusive access;
//     read-only operations are safe on shared, otherwise-idle values.
//
// Out of scope by design: linear-system solving, determinants, inversion,
// eigen-analysis, sparse or symbolic storage.
package eqs
