package headset

// PollResult is one scripted outcome for FakeTransport.
type PollResult struct {
	Status Status
	Err    error
}

// FakeTransport replays scripted status results. Once the script runs out
// the last entry repeats. Stands in for the USB transport in tests.
type FakeTransport struct {
	Script []PollResult
	pos    int

	Closes int
}

func (f *FakeTransport) Status() (Status, error) {
	if len(f.Script) == 0 {
		return Status{}, nil
	}
	r := f.Script[f.pos]
	if f.pos < len(f.Script)-1 {
		f.pos++
	}
	return r.Status, r.Err
}

func (f *FakeTransport) Close() error {
	f.Closes++
	return nil
}
