package pipeline

// Summary tracks aggregate counters and byte totals across a batch run.
// Aggregation is purely additive and independent of result order. The
// summary is owned by the run loop; transforms never see it.
type Summary struct {
	Attempted int
	Succeeded int
	Skipped   int
	Failed    int

	// OutputRoot is the resolved absolute output location reported at run end.
	OutputRoot string

	TotalInputBytes  int64
	TotalOutputBytes int64
}

// Record folds one transform result into the summary.
func (s *Summary) Record(r Result) {
	s.Attempted++
	switch r.Status {
	case StatusOK:
		s.Succeeded++
	case StatusSkipped:
		s.Skipped++
	default:
		s.Failed++
	}
	s.TotalInputBytes += r.InBytes
	s.TotalOutputBytes += r.OutBytes
}
