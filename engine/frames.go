package engine

import "time"

// FrameSource is the host frame clock driving the loop
// Stop must release every timer the source holds
type FrameSource interface {
	Frames() <-chan time.Time
	Stop()
}

// TickerFrames delivers frames at a fixed interval, dropping frames the loop is too slow to take
type TickerFrames struct {
	ticker *time.Ticker
}

func NewTickerFrames(interval time.Duration) *TickerFrames {
	return &TickerFrames{ticker: time.NewTicker(interval)}
}

func (t *TickerFrames) Frames() <-chan time.Time {
	return t.ticker.C
}

func (t *TickerFrames) Stop() {
	t.ticker.Stop()
}
