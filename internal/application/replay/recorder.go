package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/knight/internal/application/system"
)

// Recorder passes input through from a source and records every frame
type Recorder struct {
	source system.InputReader
	data   ReplayData
}

// NewRecorder creates a recorder reading from source
func NewRecorder(source system.InputReader, stage string) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Version:   Version,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
	}
}

// GetInput implements system.InputReader
func (r *Recorder) GetInput() system.InputState {
	in := r.source.GetInput()
	r.data.Frames = append(r.data.Frames, toFrame(len(r.data.Frames), in))
	return in
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
