package pulsectl

// Fake serves canned endpoint lists and records routing calls. It stands in
// for Client in controller tests.
type Fake struct {
	SinkList   []SinkInfo
	SourceList []SourceInfo

	// Names that fail to resolve when asserted.
	Unresolvable map[string]bool

	SinkCalls   []string
	SourceCalls []string
}

func NewFake() *Fake {
	return &Fake{Unresolvable: map[string]bool{}}
}

func (f *Fake) Sinks() []SinkInfo     { return f.SinkList }
func (f *Fake) Sources() []SourceInfo { return f.SourceList }

func (f *Fake) SetDefaultSink(name string) bool {
	f.SinkCalls = append(f.SinkCalls, name)
	return !f.Unresolvable[name]
}

func (f *Fake) SetDefaultSource(name string) bool {
	f.SourceCalls = append(f.SourceCalls, name)
	return !f.Unresolvable[name]
}

// RouteCalls returns the total number of routing assertions recorded.
func (f *Fake) RouteCalls() int {
	return len(f.SinkCalls) + len(f.SourceCalls)
}
