package rav1e

import "fmt"

// RefType tags a prediction source: the intra marker, one of the seven
// inter reference slots, or the none marker. Slots 1 through 7 correspond
// to reference list indices 0 through 6.
type RefType int

const (
	IntraFrame RefType = iota
	LastFrame
	Last2Frame
	Last3Frame
	GoldenFrame
	BwdrefFrame
	Altref2Frame
	AltrefFrame
	NoneFrame
)

const (
	// FwdRefs is the number of forward-in-time reference slots.
	FwdRefs = 4
	// BwdRefs is the number of backward-in-time reference slots.
	BwdRefs = 3
	// InterRefsPerFrame is the number of inter reference slots.
	InterRefsPerFrame = 7
	// TotalRefsPerFrame counts the intra marker as well.
	TotalRefsPerFrame = 8

	// RefFramesLog2 sizes the reconstructed-frame slot pool.
	RefFramesLog2 = 3
	// RefFrames is the number of reconstructed-frame buffer slots.
	RefFrames = 1 << RefFramesLog2

	RefContexts  = 3
	MvrefRowCols = 3
)

// Uni-directional compound reference pairs, in signaling order.
const (
	LastLast2Frames     = 0 // { LastFrame, Last2Frame }
	LastLast3Frames     = 1 // { LastFrame, Last3Frame }
	LastGoldenFrames    = 2 // { LastFrame, GoldenFrame }
	BwdrefAltrefFrames  = 3 // { BwdrefFrame, AltrefFrame }
	Last2Last3Frames    = 4 // { Last2Frame, Last3Frame }
	Last2GoldenFrames   = 5 // { Last2Frame, GoldenFrame }
	Last3GoldenFrames   = 6 // { Last3Frame, GoldenFrame }
	BwdrefAltref2Frames = 7 // { BwdrefFrame, Altref2Frame }
	Altref2AltrefFrames = 8 // { Altref2Frame, AltrefFrame }
	TotalUnidirCompRefs = 9

	// UnidirCompRefs is the number of uni-directional pairs that are
	// explicitly signaled.
	UnidirCompRefs = BwdrefAltrefFrames + 1

	TotalCompRefs = FwdRefs*BwdRefs + TotalUnidirCompRefs
)

// AllInterRefs lists the seven inter reference slots in index order.
var AllInterRefs = [InterRefsPerFrame]RefType{
	LastFrame, Last2Frame, Last3Frame, GoldenFrame,
	BwdrefFrame, Altref2Frame, AltrefFrame,
}

// ToIndex converts an inter reference slot to its dense reference list
// index in [0, 7). Calling it on IntraFrame or NoneFrame is a fatal usage
// error.
func (r RefType) ToIndex() int {
	switch r {
	case NoneFrame:
		panic("rav1e: tried to get slot of NONE_FRAME")
	case IntraFrame:
		panic("rav1e: tried to get slot of INTRA_FRAME")
	default:
		return int(r) - 1
	}
}

// IsFwdRef reports whether the slot refers forward in time.
func (r RefType) IsFwdRef() bool { return int(r) < 5 }

// IsBwdRef reports whether the slot refers backward in time.
func (r RefType) IsBwdRef() bool { return int(r) >= 5 }

func (r RefType) String() string {
	switch r {
	case IntraFrame:
		return "INTRA_FRAME"
	case LastFrame:
		return "LAST_FRAME"
	case Last2Frame:
		return "LAST2_FRAME"
	case Last3Frame:
		return "LAST3_FRAME"
	case GoldenFrame:
		return "GOLDEN_FRAME"
	case BwdrefFrame:
		return "BWDREF_FRAME"
	case Altref2Frame:
		return "ALTREF2_FRAME"
	case AltrefFrame:
		return "ALTREF_FRAME"
	case NoneFrame:
		return "NONE_FRAME"
	}
	return fmt.Sprintf("RefType(%d)", int(r))
}
