// Package diagnostics removes the error messages SES interleaves
// directly into its data output. Each numbered message occupies a known
// span of lines around its marker; the tables here record those spans
// so the resolver can lift whole messages out of the content stream
// without disturbing the structural grammar.
package diagnostics

// Spec records the line footprint of one numbered diagnostic.
// LinesAfter includes the marker line itself; LinesBefore lines were
// already printed before the marker and must be reclassified
// retroactively. Fatal mirrors the upstream program's own severity: a
// fatal input error suppresses the simulation stage.
type Spec struct {
	LinesBefore int
	LinesAfter  int
	Fatal       bool
}

// inputSpecs covers the input-verification stage (*ERROR* TYPE n).
var inputSpecs = map[int]Spec{
	1:   {0, 2, true},
	2:   {0, 2, true},
	3:   {0, 3, true},
	4:   {0, 2, false},
	5:   {1, 2, true},
	6:   {0, 4, true},
	7:   {0, 2, false},
	8:   {1, 3, true},
	9:   {0, 2, true},
	10:  {0, 5, true},
	11:  {0, 2, false},
	12:  {1, 6, true},
	32:  {0, 2, true},
	33:  {0, 3, true},
	104: {0, 2, false},
	161: {1, 2, true},
}

// simSpecs covers the runtime stage (*SIMULATION ERROR* TYPE n).
var simSpecs = map[int]Spec{
	1:  {0, 3, true},
	2:  {0, 2, true},
	3:  {1, 4, true},
	4:  {0, 2, false},
	5:  {0, 6, true},
	6:  {1, 2, false},
	7:  {0, 3, true},
	8:  {0, 2, false},
	21: {0, 4, true},
	22: {1, 3, true},
}

// criticalSpec is the footprint of the unnumbered ill-conditioned
// matrix message, folded into the same removal machinery.
var criticalSpec = Spec{LinesBefore: 1, LinesAfter: 4, Fatal: true}
