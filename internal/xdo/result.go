package xdo

// Ref identifies the result slot of one output-producing call.
type Ref int

// Result is the outcome of one Execute.
type Result struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	// Values holds one entry per registered parser, in call order. It is nil
	// when the process failed or parsing failed.
	Values []Fields
}

// OK reports whether the process exited successfully.
func (r *Result) OK() bool { return r.ExitCode == 0 }

// Err returns an *ExitError for a non-zero exit, nil otherwise.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ExitError{Code: r.ExitCode, Stderr: r.Stderr}
}

// Get returns the value for ref, or nil when it is out of range.
func (r *Result) Get(ref Ref) Fields {
	if int(ref) < 0 || int(ref) >= len(r.Values) {
		return nil
	}
	return r.Values[ref]
}
