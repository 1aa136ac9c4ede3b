// Package fmbell implements a two-operator FM voice tuned for bell-like
// sounds, along with the harness printing its output as (index, value) lines.
package fmbell

import (
	"errors"
	"fmt"
	"math"
)

const SampleRate = 48000

const (
	ParamRatio = iota
	ParamDepth
	ParamDecay
	ParamModDecay
	ParamFineRatio
	ParamVibrato
)

// MaxParam is the largest knob value accepted by SetParam.
const MaxParam = 1023

const (
	vibratoFreq  = 5.0
	minDecayTime = 0.001
	maxDecayTime = 10.0
	clipAmount   = 0.05
	q31Scale     = 2147483647.0
)

var ErrParam = errors.New("unknown parameter")

type Voice struct {
	rate float64
	w0   float64

	carrierPhase float64
	modPhase     float64
	vibPhase     float64

	ratio    float64
	fine     float64
	depth    float64
	vibDepth float64

	ampEnv   float64
	modEnv   float64
	ampDecay float64
	modDecay float64

	gate bool
}

func NewVoice(rate float64) *Voice {
	if rate <= 0 {
		rate = SampleRate
	}
	return &Voice{
		rate:     rate,
		w0:       noteIncrement(60, rate),
		ratio:    1,
		ampDecay: 0.99,
		modDecay: 0.99,
	}
}

// SetParam changes one of the voice parameters from a knob value between 0
// and MaxParam. Larger values are clamped.
func (v *Voice) SetParam(index int, value uint16) error {
	if value > MaxParam {
		value = MaxParam
	}
	f := float64(value) / MaxParam
	switch index {
	case ParamRatio:
		v.ratio = 1 + f*19
	case ParamDepth:
		v.depth = f * 10
	case ParamDecay:
		t := minDecayTime + f*(maxDecayTime-minDecayTime)
		v.ampDecay = fastExp(-1 / (t * v.rate))
	case ParamModDecay:
		t := minDecayTime + f*(maxDecayTime-minDecayTime)*0.5
		v.modDecay = fastExp(-1 / (t * v.rate))
	case ParamFineRatio:
		v.fine = f - 0.5
	case ParamVibrato:
		v.vibDepth = f * 100
	default:
		return fmt.Errorf("%d: %w", index, ErrParam)
	}
	return nil
}

// NoteOn starts a note. Phases restart from zero, the amplitude envelope
// starts at the scaled velocity and the modulator envelope at full depth.
func (v *Voice) NoteOn(note, velocity uint8) {
	v.gate = true
	v.w0 = noteIncrement(note, v.rate)
	v.ampEnv = math.Min((float64(velocity)+64)/127, 1)
	v.modEnv = 1
	v.carrierPhase = 0
	v.modPhase = 0
	v.vibPhase = 0
}

// NoteOff releases the note. Envelopes keep decaying on their own.
func (v *Voice) NoteOff() {
	v.gate = false
}

func (v *Voice) Gate() bool {
	return v.gate
}

func (v *Voice) Process(dst []float64) {
	var (
		modInc = v.w0 * (v.ratio + v.fine)
		vibInc = vibratoFreq / v.rate
	)
	for i := range dst {
		v.ampEnv *= v.ampDecay
		v.modEnv *= v.modDecay

		var vibrato float64
		if v.vibDepth > 0 {
			vibrato = sine(v.vibPhase) * v.vibDepth * 0.01
			v.vibPhase = wrap(v.vibPhase + vibInc)
		}

		mod := sine(v.modPhase) * v.depth * v.modEnv
		out := sine(v.carrierPhase+mod) * v.ampEnv

		v.carrierPhase = wrap(v.carrierPhase + v.w0*(1+vibrato))
		v.modPhase = wrap(v.modPhase + modInc)

		dst[i] = quantize(softClip(clipAmount, out))
	}
}

func noteIncrement(note uint8, rate float64) float64 {
	freq := 440 * math.Pow(2, (float64(note)-69)/12)
	return freq / rate
}

func sine(phase float64) float64 {
	return math.Sin(phase * 2 * math.Pi)
}

func wrap(phase float64) float64 {
	return phase - math.Floor(phase)
}

func softClip(c, x float64) float64 {
	x *= 1 + c
	return x / (1 + c*math.Abs(x))
}

// quantize goes through the 32 bits fixed point format used by the target
// hardware and back.
func quantize(x float64) float64 {
	x = math.Max(-1, math.Min(1, x))
	return float64(int32(x*q31Scale)) / q31Scale
}

// fastExp approximates e^x as (1+x/256)^256.
func fastExp(x float64) float64 {
	x = 1 + x/256
	for i := 0; i < 8; i++ {
		x *= x
	}
	return x
}
