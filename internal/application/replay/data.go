package replay

// Event kinds
const (
	KindNewpress       = "np"
	KindReleased       = "rl"
	KindButtonNewpress = "bn"
	KindButtonReleased = "br"
)

// Event is one Signify call
type Event struct {
	K string `json:"k"`           // Kind
	P int    `json:"p"`           // Pointer or controller
	B int    `json:"b,omitempty"` // Button
}

// FrameInput records the input edges published during a single frame
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	E []Event `json:"e,omitempty"` // Events in publication order
}

// ReplayData contains all data needed to replay a room session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Config    string       `json:"config"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
