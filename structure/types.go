package structure

// FunctionInfo describes one function definition found in the source.
type FunctionInfo struct {
	Name       string   `json:"name"`
	Parameters []string `json:"args"`
	Line       int      `json:"line"`
}

// ClassInfo describes one class definition and its immediate methods.
type ClassInfo struct {
	Name    string   `json:"name"`
	Methods []string `json:"methods"`
	Line    int      `json:"line"`
}

// Complexity holds coarse structural counters, a proxy for cyclomatic
// complexity rather than a control-flow-graph metric.
type Complexity struct {
	Branches  int `json:"branches"`
	Loops     int `json:"loops"`
	Functions int `json:"functions"`
	Classes   int `json:"classes"`
}

// Summary is the result of one structural pass over a source text.
// When ParseError is set the source could not be parsed and every other
// field is empty.
type Summary struct {
	Imports    []string       `json:"imports"`
	Functions  []FunctionInfo `json:"functions"`
	Classes    []ClassInfo    `json:"classes"`
	Complexity Complexity     `json:"complexity"`
	ParseError string         `json:"parse_error,omitempty"`
}
