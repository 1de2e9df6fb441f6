// Package matmemotest provides a reusable contract suite for
// matmemo.CellAPI implementations.
//
// Alternative cell implementations can run the suite from their own
// tests without importing root test helpers:
//
//	func TestMyCellContract(t *testing.T) {
//		matmemotest.RunCellContract(t, func(m *matrix.Dense) matmemotest.Cell {
//			return mypkg.NewCell(m)
//		}, matmemotest.Options{})
//	}
package matmemotest
