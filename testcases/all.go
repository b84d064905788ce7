package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in generated file names.
var All = map[string][]TestCase{
	"degenerate": degenerateCases,
	"axis":       axisCases,
	"diagonal":   diagonalCases,
	"shallow":    shallowCases,
	"steep":      steepCases,
	"limits":     limitCases,
}
