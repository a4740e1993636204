package replay

import (
	"github.com/younwookim/knight/internal/application/system"
)

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	A bool `json:"a,omitempty"` // Attack
	C bool `json:"c,omitempty"` // Confirm
	P bool `json:"p,omitempty"` // Pause
}

// ReplayData contains all data needed to replay a game session.
// The simulation has no randomness, so the input stream is enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrame(f int, in system.InputState) FrameInput {
	return FrameInput{
		F: f,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		A: in.Attack,
		C: in.Confirm,
		P: in.Pause,
	}
}

func (fi FrameInput) state() system.InputState {
	return system.InputState{
		Left:    fi.L,
		Right:   fi.R,
		Up:      fi.U,
		Down:    fi.D,
		Attack:  fi.A,
		Confirm: fi.C,
		Pause:   fi.P,
	}
}
