package feed

// Player is the playback surface for a single reel. The UI supplies a
// simulated player per reel; tests supply fakes, including ones whose
// Play always fails to exercise the muted-retry fallback.
type Player interface {
	// Rewind resets playback to the start of the media.
	Rewind()
	// Play starts playback. It may fail (autoplay policies, missing
	// media); callers fall back to a muted retry and never propagate
	// the error further.
	Play() error
	// Pause stops playback. Failures are logged, not surfaced.
	Pause() error
	// SetMuted mirrors the per-item mute flag onto the media.
	SetMuted(muted bool)
}

// PlayerSource resolves the player for a reel id.
type PlayerSource interface {
	PlayerFor(reelID string) Player
}

// PlayerFunc adapts a function to the PlayerSource interface.
type PlayerFunc func(reelID string) Player

// PlayerFor implements PlayerSource.
func (f PlayerFunc) PlayerFor(reelID string) Player { return f(reelID) }

// NopPlayer is a Player whose operations always succeed. It backs reels
// in headless contexts where no playback surface exists.
type NopPlayer struct {
	PlayingState bool
	MutedState   bool
}

func (p *NopPlayer) Rewind() {}

func (p *NopPlayer) Play() error {
	p.PlayingState = true
	return nil
}

func (p *NopPlayer) Pause() error {
	p.PlayingState = false
	return nil
}

func (p *NopPlayer) SetMuted(muted bool) { p.MutedState = muted }
