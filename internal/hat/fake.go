package hat

// FakeDisplay is a test double that records every rendered frame.
type FakeDisplay struct {
	Frames    []string
	RenderErr error // if set, returned by Render (frames still recorded)
	Closed    bool
}

func (d *FakeDisplay) Render(text string) error {
	d.Frames = append(d.Frames, text)
	return d.RenderErr
}

func (d *FakeDisplay) Close() error {
	d.Closed = true
	return nil
}

// Last returns the most recent frame, or "" if nothing was rendered.
func (d *FakeDisplay) Last() string {
	if len(d.Frames) == 0 {
		return ""
	}
	return d.Frames[len(d.Frames)-1]
}

// FakeLED is a test double that records every switch.
type FakeLED struct {
	On     bool
	States []bool
	SetErr error
	Closed bool
}

func (l *FakeLED) Set(on bool) error {
	if l.SetErr != nil {
		return l.SetErr
	}
	l.On = on
	l.States = append(l.States, on)
	return nil
}

func (l *FakeLED) Close() error {
	l.Closed = true
	return nil
}
