package client

import (
	"sync"
	"time"
)

// Player simulates playback progress for one selected track. There is no
// audio pipeline behind it — elapsed time advances with the wall clock while
// playing and wraps back to zero at the end of the track, the way the site's
// vinyl player loops. Presentation logic only; it never touches the catalog.
type Player struct {
	mu       sync.Mutex
	duration time.Duration
	elapsed  time.Duration
	playing  bool
	since    time.Time

	now func() time.Time
}

// NewPlayer creates a stopped player for a track of the given duration.
func NewPlayer(duration time.Duration) *Player {
	return &Player{duration: duration, now: time.Now}
}

// Play starts or resumes playback. Playing twice is a no-op.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing || p.duration <= 0 {
		return
	}
	p.playing = true
	p.since = p.now()
}

// Pause freezes the current position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	p.elapsed = p.position()
	p.playing = false
}

// Stop pauses and rewinds to the beginning.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.elapsed = 0
}

// Playing reports whether the player is currently advancing.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Elapsed returns the current position within the track.
func (p *Player) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position()
}

// Progress returns the current position as a fraction in [0, 1).
func (p *Player) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.duration <= 0 {
		return 0
	}
	return float64(p.position()) / float64(p.duration)
}

// position computes the looped playback position; callers hold the lock.
func (p *Player) position() time.Duration {
	pos := p.elapsed
	if p.playing {
		pos += p.now().Sub(p.since)
	}
	if p.duration > 0 {
		pos %= p.duration
	}
	return pos
}
