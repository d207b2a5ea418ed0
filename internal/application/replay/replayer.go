package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/room/internal/infrastructure/input"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Apply publishes the current frame's events to target and advances. It
// returns false once every frame has been applied.
func (r *Replayer) Apply(target input.Target) bool {
	if r.frame >= len(r.data.Frames) {
		return false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	for _, e := range fi.E {
		switch e.K {
		case KindNewpress:
			target.SignifyNewpress(e.P)
		case KindReleased:
			target.SignifyReleased(e.P)
		case KindButtonNewpress:
			target.SignifyButtonNewpress(e.P, e.B)
		case KindButtonReleased:
			target.SignifyButtonReleased(e.P, e.B)
		}
	}
	return true
}

// Done reports whether every frame has been applied
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: a tap on pointer 0
// every tapEvery frames
func CreateTestReplayData(frames, tapEvery int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Config:    "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
		if tapEvery > 0 && i%tapEvery == 0 {
			data.Frames[i].E = []Event{
				{K: KindNewpress, P: 0},
				{K: KindReleased, P: 0},
			}
		}
	}

	return data
}
