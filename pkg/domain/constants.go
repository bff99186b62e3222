package domain

// Kind constants name the built-in node variants.
// They are used as event payloads, log attributes and metric labels.
const (
	KindAction         = "action"
	KindSelector       = "selector"
	KindIndexSelector  = "index_selector"
	KindSequence       = "sequence"
	KindRandomSelector = "random_selector"
	KindRandomSequence = "random_sequence"
)
