package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/younwookim/room/internal/infrastructure/input"
)

const Version = "2.0"

// Recorder forwards input edges to a Target and records them per frame.
// The Signify methods may be called from any goroutine.
type Recorder struct {
	target input.Target

	mu        sync.Mutex
	data      ReplayData
	pending   []Event
	recording bool
	frame     int
}

// NewRecorder creates a recorder with seed for deterministic replay
func NewRecorder(target input.Target, seed int64, config string) *Recorder {
	return &Recorder{
		target: target,
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Config:    config,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// signify records e and forwards it under one lock, so a frame boundary
// never falls between the two.
func (r *Recorder) signify(e Event, forward func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		r.pending = append(r.pending, e)
	}
	forward()
}

func (r *Recorder) SignifyNewpress(p int) {
	r.signify(Event{K: KindNewpress, P: p}, func() { r.target.SignifyNewpress(p) })
}

func (r *Recorder) SignifyReleased(p int) {
	r.signify(Event{K: KindReleased, P: p}, func() { r.target.SignifyReleased(p) })
}

func (r *Recorder) SignifyButtonNewpress(c, b int) {
	r.signify(Event{K: KindButtonNewpress, P: c, B: b}, func() { r.target.SignifyButtonNewpress(c, b) })
}

func (r *Recorder) SignifyButtonReleased(c, b int) {
	r.signify(Event{K: KindButtonReleased, P: c, B: b}, func() { r.target.SignifyButtonReleased(c, b) })
}

// EndFrame closes the current frame. Call it once per update, before the
// target drains its input. Hosts that publish edges from another goroutine
// use Frame instead.
func (r *Recorder) EndFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endFrame()
}

// Frame closes the current frame and runs drain before any further edge is
// recorded or forwarded. Edges published meanwhile block and land in the
// next frame. drain must not call back into the recorder.
func (r *Recorder) Frame(drain func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endFrame()
	drain()
}

func (r *Recorder) endFrame() {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{F: r.frame, E: r.pending})
	r.pending = nil
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	data := r.Data()
	if len(data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording; edges are still forwarded
func (r *Recorder) Stop() {
	r.mu.Lock()
	r.recording = false
	r.mu.Unlock()
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data.Frames)
}

// Data returns a copy of the replay data
func (r *Recorder) Data() ReplayData {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.data
	d.Frames = append([]FrameInput(nil), r.data.Frames...)
	return d
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
