package gestures

import (
	"fmt"
	"time"

	"github.com/go-drift/transit/pkg/graphics"
)

// DefaultTouchSlop is the distance a pointer must travel before a drag is
// recognized.
const DefaultTouchSlop = 8.0

// PointerPhase is the lifecycle phase of a raw pointer event.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a raw pointer update from the platform or an input device.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
	Time      time.Time
}
