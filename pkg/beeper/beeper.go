// Package beeper plays the CHIP-8 buzzer tone through oto.
package beeper

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// Tone defaults
const (
	SampleRate = 44100
	ToneHz     = 440
	Volume     = 0.2
)

// SquareWave is an io.Reader producing float32 little endian mono samples
// of a square wave while enabled and silence otherwise
type SquareWave struct {
	active     atomic.Bool
	sampleRate int
	toneHz     int
	volume     float32
	phase      int // sample index within one period
}

// NewSquareWave returns a disabled generator
func NewSquareWave(sampleRate, toneHz int, volume float32) *SquareWave {
	return &SquareWave{
		sampleRate: sampleRate,
		toneHz:     toneHz,
		volume:     volume,
	}
}

// SetActive turns the tone on or off
func (w *SquareWave) SetActive(active bool) {
	w.active.Store(active)
}

// Active reports whether the tone is on
func (w *SquareWave) Active() bool {
	return w.active.Load()
}

// Read fills p with whole samples
func (w *SquareWave) Read(p []byte) (int, error) {
	period := w.sampleRate / w.toneHz
	if period < 2 {
		period = 2
	}
	active := w.active.Load()

	n := len(p) / 4
	for i := 0; i < n; i++ {
		var sample float32
		if active {
			sample = w.volume
			if w.phase >= period/2 {
				sample = -w.volume
			}
		}
		w.phase = (w.phase + 1) % period
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(sample))
	}
	return n * 4, nil
}

// Beeper owns the audio device
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	wave   *SquareWave
	mutex  sync.Mutex
}

// New opens the audio device and starts streaming silence
func New() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{
		ctx:  ctx,
		wave: NewSquareWave(SampleRate, ToneHz, Volume),
	}
	b.player = ctx.NewPlayer(b.wave)
	b.player.Play()
	return b, nil
}

// Beep turns the tone on or off
func (b *Beeper) Beep(active bool) {
	b.wave.SetActive(active)
}

// Close stops playback
func (b *Beeper) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
