package sound

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/pkg/errors"

	"robot-rig/internal/anim"
	"robot-rig/internal/log"
)

// maxVoices bounds how many cues overlap; extra cues are dropped.
const maxVoices = 4

// Player owns the audio context and the pre-rendered cue buffers.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	cues   [numCues][]byte
	active atomic.Int32
	volume float64
	logger log.Logger
}

// NewPlayer opens the audio device. Callers treat an error as "run
// silently".
func NewPlayer(volume float64, logger log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.Discard()
	}
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, errors.Wrap(err, "sound: open device")
	}
	p := &Player{ctx: ctx, ready: ready, volume: volume, logger: logger}
	for c := Cue(0); c < numCues; c++ {
		p.cues[c] = Samples(c)
	}
	return p, nil
}

// Attach plays the footstep cue on every step and the servo cue when the
// cannon starts spinning.
func (p *Player) Attach(bus *anim.EventBus) {
	bus.Subscribe(anim.EventStep, func(anim.Event) { p.Play(CueFootstep) })
	bus.Subscribe(anim.EventSpinStart, func(anim.Event) { p.Play(CueServo) })
}

// Play starts c in the background and returns immediately. Cues requested
// before the device is ready, or beyond maxVoices, are dropped.
func (p *Player) Play(c Cue) {
	if c < 0 || c >= numCues {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	if p.active.Add(1) > maxVoices {
		p.active.Add(-1)
		p.logger.Debugf("sound: dropped %s cue", c)
		return
	}

	go func() {
		defer p.active.Add(-1)
		player := p.ctx.NewPlayer(&sampleReader{data: p.cues[c]})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.logger.Warnf("sound: close %s player: %v", c, err)
		}
	}()
}

type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(b []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(b, r.data[r.pos:])
	r.pos += n
	return n, nil
}
