// Package device connects the player to the system sound card.
package device

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Speaker is the process-wide beep speaker.
type Speaker struct{}

func (Speaker) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (Speaker) Play(s beep.Streamer) { speaker.Play(s) }

// Clear takes the speaker lock itself.
func (Speaker) Clear() { speaker.Clear() }

func (Speaker) Lock()   { speaker.Lock() }
func (Speaker) Unlock() { speaker.Unlock() }
