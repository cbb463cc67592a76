package core

// Result is the outcome of optimizing one file. Before and After are file
// sizes in bytes. A failed attempt reports After == Before so run totals are
// not skewed.
type Result struct {
	Before    int64
	After     int64
	Converted bool
	// Skipped is set when the target already existed and nothing was written.
	Skipped bool
}

// Totals accumulates results across an optimizer run.
type Totals struct {
	Scanned   int
	Converted int
	Skipped   int // target already existed
	Before    int64
	After     int64
}

// Add folds one file's result into the totals.
func (t *Totals) Add(r Result) {
	t.Scanned++
	t.Before += r.Before
	t.After += r.After
	switch {
	case r.Converted:
		t.Converted++
	case r.Skipped:
		t.Skipped++
	}
}

// Saved is the byte difference between the inputs and the outputs. It is
// negative when re-encoding grew the files.
func (t Totals) Saved() int64 {
	return t.Before - t.After
}
