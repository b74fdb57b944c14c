// Package sound plays short procedural cues for animator events: a thud on
// every footfall and a servo whine when the cannon spins up.
package sound

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	// bytesPerFrame is one stereo float32 frame.
	bytesPerFrame = 8
)

// Cue identifies one sound.
type Cue int

const (
	CueFootstep Cue = iota
	CueServo
	numCues
)

func (c Cue) String() string {
	switch c {
	case CueFootstep:
		return "footstep"
	case CueServo:
		return "servo"
	}
	return "unknown"
}

// Samples renders a cue as interleaved stereo float32 LE.
func Samples(c Cue) []byte {
	switch c {
	case CueFootstep:
		return genFootstep()
	case CueServo:
		return genServo()
	}
	return nil
}

// genFootstep: a heavy metal foot landing. Low pitched drop with a short
// noise scuff on top.
func genFootstep() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(4242)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		// 120→40 Hz.
		freq := 120 * math.Pow(1.0/3, p*2)
		thump := math.Sin(2*math.Pi*freq*t) * math.Exp(-p*9) * 0.7
		scuff := 0.0
		if p < 0.1 {
			scuff = lcg(&seed) * (1 - p/0.1) * 0.25
		}
		clank := math.Sin(2*math.Pi*1850*t) * math.Exp(-p*40) * 0.06
		putStereoF32(buf, i, softSat(thump+scuff+clank))
	}
	return buf
}

// genServo: a rising whine with a slight warble, as the barrel spins up.
func genServo() []byte {
	n := int(0.35 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.08, 0.1, 0.7, 0.3)
		freq := (300 + 900*p) * (1 + 0.01*math.Sin(2*math.Pi*30*t))
		phase += 2 * math.Pi * freq / SampleRate
		s := math.Sin(phase)*0.6 + math.Sin(2*phase)*0.2 + math.Sin(3*phase)*0.08
		putStereoF32(buf, i, softSat(s*env*0.45))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of
// frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * bytesPerFrame
	for ch := 0; ch < ChannelCount; ch++ {
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
		o += 4
	}
}

func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// lcg is a small deterministic noise source in [-1,1).
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*bytesPerFrame) }
