package fmbell

import (
	"bufio"
	"fmt"
	"io"
)

type Param struct {
	Index int
	Value uint16
}

// Harness plays a single note on a fresh voice and prints one line out of
// Every samples.
type Harness struct {
	Samples  int
	Block    int
	Every    int
	Note     uint8
	Velocity uint8
	Params   []Param
}

func DefaultHarness() Harness {
	return Harness{
		Samples:  SampleRate,
		Block:    64,
		Every:    100,
		Note:     60,
		Velocity: 60,
		Params: []Param{
			{Index: ParamRatio, Value: 512},
			{Index: ParamDepth, Value: 300},
			{Index: ParamDecay, Value: 700},
			{Index: ParamModDecay, Value: 500},
		},
	}
}

func (h Harness) Validate() error {
	if h.Samples < 0 {
		return fmt.Errorf("samples: negative count (%d)", h.Samples)
	}
	if h.Block <= 0 {
		return fmt.Errorf("block: size should be positive (%d)", h.Block)
	}
	if h.Every <= 0 {
		return fmt.Errorf("every: step should be positive (%d)", h.Every)
	}
	if h.Note > 127 || h.Velocity > 127 {
		return fmt.Errorf("note/velocity: out of midi range")
	}
	return nil
}

// Run writes the header comment and the decimated output of the voice to w.
func (h Harness) Run(w io.Writer) error {
	if err := h.Validate(); err != nil {
		return err
	}
	v := NewVoice(SampleRate)
	for _, p := range h.Params {
		if err := v.SetParam(p.Index, p.Value); err != nil {
			return err
		}
	}
	v.NoteOn(h.Note, h.Velocity)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Test output: sample_number, value (-1.0 to 1.0)")

	buf := make([]float64, h.Block)
	for n := 0; n < h.Samples; {
		v.Process(buf)
		for _, s := range buf {
			if n >= h.Samples {
				break
			}
			if n%h.Every == 0 {
				fmt.Fprintf(bw, "%d, %f\n", n, s)
			}
			n++
		}
	}
	return bw.Flush()
}
