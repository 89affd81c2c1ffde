package command

import "fmt"

// Input is the active-input enumeration carried by Source.ActiveInput.
// Values outside the known set decode as Input(raw) and print as
// "Unknown(raw)".
type Input uint16

const (
	InputSDI       Input = 1
	InputHDMI      Input = 2
	InputComposite Input = 3
	InputComponent Input = 4
	InputSVideo    Input = 5
	InputInternal  Input = 256
)

func (i Input) String() string {
	switch i {
	case InputSDI:
		return "SDI"
	case InputHDMI:
		return "HDMI"
	case InputComposite:
		return "Composite"
	case InputComponent:
		return "Component"
	case InputSVideo:
		return "S-Video"
	case InputInternal:
		return "Internal"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(i))
	}
}

// SourceType is Source.Type's enumeration.
type SourceType uint8

const (
	SourceTypeExternal        SourceType = 0
	SourceTypeBlack           SourceType = 1
	SourceTypeColorBars       SourceType = 2
	SourceTypeColorGenerator  SourceType = 3
	SourceTypeMediaPlayerFill SourceType = 4
	SourceTypeMediaPlayerKey  SourceType = 5
	SourceTypeSuperSource     SourceType = 6
	SourceTypeDirect          SourceType = 7
	SourceTypeMEOutput        SourceType = 128
	SourceTypeAuxiliary       SourceType = 129
	SourceTypeMask            SourceType = 130
	SourceTypeStatus          SourceType = 131
)

func (t SourceType) String() string {
	switch t {
	case SourceTypeExternal:
		return "External"
	case SourceTypeBlack:
		return "Black"
	case SourceTypeColorBars:
		return "Color Bars"
	case SourceTypeColorGenerator:
		return "Color Generator"
	case SourceTypeMediaPlayerFill:
		return "Media Player Fill"
	case SourceTypeMediaPlayerKey:
		return "Media Player Key"
	case SourceTypeSuperSource:
		return "SuperSource"
	case SourceTypeDirect:
		return "Direct"
	case SourceTypeMEOutput:
		return "ME Output"
	case SourceTypeAuxiliary:
		return "Auxiliary"
	case SourceTypeMask:
		return "Mask"
	case SourceTypeStatus:
		return "Status"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// InputFlags is the bitset of physical input types a source can accept.
type InputFlags uint16

const (
	InputFlagSDI       InputFlags = 0x0001
	InputFlagHDMI      InputFlags = 0x0002
	InputFlagComposite InputFlags = 0x0004
	InputFlagComponent InputFlags = 0x0008
	InputFlagSVideo    InputFlags = 0x0010
	InputFlagInternal  InputFlags = 0x0100
)

// Has reports whether f contains every bit in mask.
func (f InputFlags) Has(mask InputFlags) bool { return f&mask == mask }

// FunctionFlags is the bitset of roles a source may be routed to.
type FunctionFlags uint8

const (
	FunctionFlagAuxiliary     FunctionFlags = 0x01
	FunctionFlagMultiviewer   FunctionFlags = 0x02
	FunctionFlagSuperSourceArt FunctionFlags = 0x04
	FunctionFlagSuperSourceBox FunctionFlags = 0x08
	FunctionFlagKeySources    FunctionFlags = 0x10
)

// Has reports whether f contains every bit in mask.
func (f FunctionFlags) Has(mask FunctionFlags) bool { return f&mask == mask }

// MixEffectFlags is the bitset of MEs (ME1..ME8) a source is available on.
type MixEffectFlags uint8

const (
	MixEffectFlagME1 MixEffectFlags = 0x01
	MixEffectFlagME2 MixEffectFlags = 0x02
	MixEffectFlagME3 MixEffectFlags = 0x04
	MixEffectFlagME4 MixEffectFlags = 0x08
	MixEffectFlagME5 MixEffectFlags = 0x10
	MixEffectFlagME6 MixEffectFlags = 0x20
	MixEffectFlagME7 MixEffectFlags = 0x40
	MixEffectFlagME8 MixEffectFlags = 0x80
)

// Has reports whether f contains every bit in mask.
func (f MixEffectFlags) Has(mask MixEffectFlags) bool { return f&mask == mask }

// Source is the `InPr` record describing one routable input.
type Source struct {
	ID                 uint16
	Name               string
	ShortName          string
	AvailableInputs    InputFlags
	ActiveInput        Input
	Type               SourceType
	AvailableFunctions FunctionFlags
	AvailableOnME      MixEffectFlags
}

func (Source) isCommand() {}

func decodeSource(body []byte) (Command, error) {
	const size = 2 + 20 + 4 + 2 + 2 + 2 + 1 + 1 + 1 + 1
	if len(body) < size {
		return nil, truncatedf("InPr", size, len(body))
	}

	name, err := readFixedString(body[2:22])
	if err != nil {
		return nil, err
	}
	shortName, err := readFixedString(body[22:26])
	if err != nil {
		return nil, err
	}
	// body[26:28] skip.

	return Source{
		ID:                 u16(body[0:2]),
		Name:               name,
		ShortName:          shortName,
		AvailableInputs:    InputFlags(u16(body[28:30])),
		ActiveInput:        Input(u16(body[30:32])),
		Type:               SourceType(body[32]),
		// body[33] skip.
		AvailableFunctions: FunctionFlags(body[34]),
		AvailableOnME:      MixEffectFlags(body[35]),
	}, nil
}
