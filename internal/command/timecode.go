package command

import "fmt"

// TimeCodeType is TimeCodeState.Type's enumeration.
type TimeCodeType uint8

const (
	TimeCodeTypeFreeRunning TimeCodeType = 0
	TimeCodeTypeTimeOfDay   TimeCodeType = 1
)

func (t TimeCodeType) String() string {
	switch t {
	case TimeCodeTypeFreeRunning:
		return "FreeRunning"
	case TimeCodeTypeTimeOfDay:
		return "TimeOfDay"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// TimeCodeState is the `TCCc` record: whether the switcher's timecode
// tracks free-running or time-of-day.
type TimeCodeState struct {
	Type TimeCodeType
}

func (TimeCodeState) isCommand() {}

func decodeTimeCodeState(body []byte) (Command, error) {
	if len(body) < 1 {
		return nil, truncatedf("TCCc", 1, len(body))
	}
	return TimeCodeState{Type: TimeCodeType(body[0])}, nil
}
