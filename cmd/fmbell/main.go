// Command fmbell plays one note on the FM bell voice and prints the
// decimated output as "index, value" lines, ready to be piped into scope.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/midbel/scope/fmbell"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		h     = fmbell.DefaultHarness()
		flags = flag.NewFlagSet(args[0], flag.ContinueOnError)
	)
	flags.SetOutput(stderr)

	var (
		samples  = flags.Int("samples", h.Samples, "number of samples to generate")
		every    = flags.Int("every", h.Every, "print one sample out of every n")
		block    = flags.Int("block", h.Block, "frames processed per cycle")
		note     = flags.Uint("note", uint(h.Note), "midi note")
		velocity = flags.Uint("velocity", uint(h.Velocity), "note velocity")
		ratio    = flags.Uint("ratio", 512, "modulator:carrier ratio knob (0-1023)")
		depth    = flags.Uint("depth", 300, "modulation depth knob (0-1023)")
		decay    = flags.Uint("decay", 700, "amplitude decay knob (0-1023)")
		modDecay = flags.Uint("mod-decay", 500, "modulator decay knob (0-1023)")
		fine     = flags.Uint("fine", 512, "fine ratio knob (0-1023)")
		vibrato  = flags.Uint("vibrato", 0, "vibrato depth knob (0-1023)")
	)
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if *note > 127 || *velocity > 127 {
		return fmt.Errorf("note and velocity should be between 0 and 127")
	}
	h.Samples = *samples
	h.Every = *every
	h.Block = *block
	h.Note = uint8(*note)
	h.Velocity = uint8(*velocity)
	h.Params = []fmbell.Param{
		{Index: fmbell.ParamRatio, Value: knob(*ratio)},
		{Index: fmbell.ParamDepth, Value: knob(*depth)},
		{Index: fmbell.ParamDecay, Value: knob(*decay)},
		{Index: fmbell.ParamModDecay, Value: knob(*modDecay)},
	}
	// fine and vibrato keep their initial state unless asked for.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fine":
			h.Params = append(h.Params, fmbell.Param{Index: fmbell.ParamFineRatio, Value: knob(*fine)})
		case "vibrato":
			h.Params = append(h.Params, fmbell.Param{Index: fmbell.ParamVibrato, Value: knob(*vibrato)})
		}
	})
	return h.Run(stdout)
}

func knob(v uint) uint16 {
	if v > fmbell.MaxParam {
		return fmbell.MaxParam
	}
	return uint16(v)
}
