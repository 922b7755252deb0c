package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/hailam/chessplay/internal/board"
)

// Sound is a short effect played after a board event.
type Sound int

const (
	SoundMove Sound = iota
	SoundCapture
	SoundCastle
	SoundCheck
	SoundIllegal
)

const sampleRate = 44100

// envelope shapes a tone's amplitude over its normalised progress in [0,1].
type envelope func(t, progress float64) float64

func percussive(t, _ float64) float64 { return math.Exp(-t * 30) }

func attackDecay(_, progress float64) float64 {
	if progress < 0.1 {
		return progress / 0.1
	}
	return 1 - (progress-0.1)/0.9
}

func linearDecay(_, progress float64) float64 { return 1 - progress }

// SoundPlayer synthesises the effects once and plays them on demand.
type SoundPlayer struct {
	context *audio.Context
	sounds  map[Sound][]byte
	enabled bool
	volume  float64
}

// NewSoundPlayer creates the audio context and renders every effect.
func NewSoundPlayer() *SoundPlayer {
	sp := &SoundPlayer{
		context: audio.NewContext(sampleRate),
		enabled: true,
		volume:  0.5,
	}
	click := func(freq, dur, amp float64) []byte {
		return synth(dur, amp, percussive, func(i int, t float64) float64 {
			// Two detuned partials give the click a wooden knock.
			noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
			return math.Sin(2*math.Pi*freq*t) + noise
		})
	}
	sp.sounds = map[Sound][]byte{
		SoundMove:    click(440, 0.08, 0.3),
		SoundCapture: click(330, 0.12, 0.5),
		SoundCastle: concat(
			click(400, 0.06, 0.3),
			make([]byte, int(sampleRate*0.05)*4),
			click(440, 0.06, 0.24),
		),
		SoundCheck: synth(0.15, 0.4, attackDecay, func(_ int, t float64) float64 {
			return math.Sin(2 * math.Pi * 880 * t)
		}),
		SoundIllegal: synth(0.1, 0.15, linearDecay, func(_ int, t float64) float64 {
			return math.Sin(2*math.Pi*150*t) + 0.3*math.Sin(4*math.Pi*150*t)
		}),
	}
	return sp
}

// synth renders dur seconds of wave as 16-bit little-endian stereo PCM.
func synth(dur, amp float64, env envelope, wave func(i int, t float64) float64) []byte {
	samples := int(sampleRate * dur)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		v := wave(i, t) * env(t, t/dur) * amp
		v = math.Max(-1, math.Min(1, v))
		s := int16(v * math.MaxInt16)
		data[i*4] = byte(s)
		data[i*4+1] = byte(s >> 8)
		data[i*4+2] = byte(s)
		data[i*4+3] = byte(s >> 8)
	}
	return data
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Play starts the effect. Overlapping calls each get their own player.
func (sp *SoundPlayer) Play(s Sound) {
	if !sp.enabled {
		return
	}
	data, ok := sp.sounds[s]
	if !ok {
		return
	}
	player := sp.context.NewPlayerFromBytes(data)
	player.SetVolume(sp.volume)
	player.Play()
}

// SetEnabled turns playback on or off.
func (sp *SoundPlayer) SetEnabled(enabled bool) {
	sp.enabled = enabled
}

// Enabled reports whether playback is on.
func (sp *SoundPlayer) Enabled() bool {
	return sp.enabled
}

// soundFor picks the effect for m played in before.
func soundFor(before board.Position, m board.Move) Sound {
	after := before.ApplyMove(m)
	switch {
	case after.InCheck():
		return SoundCheck
	case m.IsCastling(before):
		return SoundCastle
	case m.IsCapture(before):
		return SoundCapture
	default:
		return SoundMove
	}
}
