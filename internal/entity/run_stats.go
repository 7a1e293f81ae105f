package entity

// RunStats is the tally of one collector or extractor run.
//
// Processed counts results pages for the collector and detail URLs for the
// extractor. Errors counts skipped items of either kind: for the collector
// that is failed pages plus collected URLs that a sink rejected, so Errors
// can exceed Processed there. An item interrupted by cancellation is not
// counted as an error.
type RunStats struct {
	Processed int // items attempted
	Errors    int // items skipped because of a fetch, parse, extraction or sink failure
	Records   int // items written to the sinks
}
