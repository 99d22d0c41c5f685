package audio

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"sync"

	"vrcollab/internal/config"
	"vrcollab/internal/engine"

	"github.com/ebitengine/oto/v3"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const sampleRate = 44100

// Global oto context, created once for the process.
var (
	otoContext     *oto.Context
	otoContextOnce sync.Once
	otoContextErr  error
)

func initOtoContext() error {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
		}
		var ready chan struct{}
		otoContext, ready, otoContextErr = oto.NewContext(op)
		if otoContextErr != nil {
			return
		}
		<-ready
		log.Println("Audio: oto context initialized")
	})
	return otoContextErr
}

// Sound is one of the synthesized feedback clips.
type Sound int

const (
	SoundPress Sound = iota
	SoundRelease
	SoundHover
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Feedback plays short clicks for widget interaction, panned toward the
// widget that produced them. A Feedback without an audio device is inert.
type Feedback struct {
	Enabled bool
	Volume  float32

	listener Listener
	clips    map[Sound][]float32
	players  []*oto.Player
}

func NewFeedback(conf config.Audio) *Feedback {
	f := &Feedback{
		Volume: conf.Volume,
		listener: Listener{
			Forward: rl.Vector3{Z: -1},
			Right:   rl.Vector3{X: 1},
		},
		clips: map[Sound][]float32{
			SoundPress:   synth(1800, 0.025, 1),
			SoundRelease: synth(1200, 0.025, 0.8),
			SoundHover:   synth(2400, 0.008, 0.3),
		},
	}
	if !conf.Enabled {
		log.Println("Audio: feedback disabled by config")
		return f
	}
	if err := initOtoContext(); err != nil {
		log.Printf("Audio: no output device, feedback disabled: %v", err)
		return f
	}
	f.Enabled = true
	return f
}

// SetListener updates the listener from the head position and view direction.
func (f *Feedback) SetListener(pos, forward rl.Vector3) {
	forward = rl.Vector3Normalize(forward)
	right := rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1})
	if rl.Vector3Length(right) < 1e-4 {
		right = rl.Vector3{X: 1}
	}
	f.listener = Listener{Position: pos, Forward: forward, Right: rl.Vector3Normalize(right)}
}

// Watch plays press, release and hover clicks for obj's events.
func (f *Feedback) Watch(obj *engine.GameObject) {
	obj.AddListener(engine.EventPressed, func(ev engine.Event) { f.Play(SoundPress, ev.Source.WorldPosition()) })
	obj.AddListener(engine.EventReleased, func(ev engine.Event) { f.Play(SoundRelease, ev.Source.WorldPosition()) })
	obj.AddListener(engine.EventPointerEnter, func(ev engine.Event) { f.Play(SoundHover, ev.Source.WorldPosition()) })
}

// Play starts clip s as if emitted at pos.
func (f *Feedback) Play(s Sound, pos rl.Vector3) {
	if !f.Enabled || otoContext == nil {
		return
	}
	clip, ok := f.clips[s]
	if !ok {
		return
	}
	pcm := render(clip, f.Volume, Pan(f.listener, pos))
	player := otoContext.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	f.players = append(f.players, player)
}

// Update closes players that finished.
func (f *Feedback) Update() {
	live := f.players[:0]
	for _, p := range f.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	f.players = live
}

func (f *Feedback) Close() {
	for _, p := range f.players {
		p.Close()
	}
	f.players = nil
}

// Pan returns 0 for full left, 0.5 for center and 1 for full right.
func Pan(l Listener, pos rl.Vector3) float32 {
	toSource := rl.Vector3Subtract(pos, l.Position)
	if rl.Vector3Length(toSource) < 1e-4 {
		return 0.5
	}
	rightDot := rl.Vector3DotProduct(rl.Vector3Normalize(toSource), l.Right)
	pan := 0.5 + rightDot*0.5
	if pan < 0 {
		pan = 0
	} else if pan > 1 {
		pan = 1
	}
	return pan
}

// synth renders a sine burst with an exponential decay, mono.
func synth(freq, seconds float64, amp float32) []float32 {
	n := int(seconds * sampleRate)
	out := make([]float32, n)
	for i := range out {
		t := float64(i) / sampleRate
		env := math.Exp(-t * 5 / seconds)
		out[i] = amp * float32(math.Sin(2*math.Pi*freq*t)*env)
	}
	return out
}

// render interleaves mono samples into stereo float32 little endian.
func render(mono []float32, volume, pan float32) []byte {
	left := volume * (1 - pan)
	right := volume * pan
	buf := make([]byte, len(mono)*8)
	for i, s := range mono {
		writeFloat32LE(buf[i*8:], s*left)
		writeFloat32LE(buf[i*8+4:], s*right)
	}
	return buf
}

func writeFloat32LE(b []byte, v float32) {
	bits := math.Float32bits(v)
	binary.LittleEndian.PutUint32(b, bits)
}
