// Package board holds the pipeline topology: boards, their ordered columns,
// the terminal outcome classification and the reorder permutation check.
package board
