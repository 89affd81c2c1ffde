package command

// ProgramInput is the `PrgI` record: the program bus source for one ME.
type ProgramInput struct {
	ME       uint8
	SourceID uint16
}

func (ProgramInput) isCommand() {}

// PreviewInput is the `PrvI` record: the preview bus source for one ME.
type PreviewInput struct {
	ME       uint8
	SourceID uint16
}

func (PreviewInput) isCommand() {}

// AuxSource is the `AuxS` record: the source routed to one aux bus.
type AuxSource struct {
	ME       uint8
	SourceID uint16
}

func (AuxSource) isCommand() {}

func decodeMEAndSource(tag string, body []byte) (me uint8, sourceID uint16, err error) {
	if len(body) < 4 {
		return 0, 0, truncatedf(tag, 4, len(body))
	}
	return body[0], u16(body[2:4]), nil
}

func decodeProgramInput(body []byte) (Command, error) {
	me, source, err := decodeMEAndSource("PrgI", body)
	if err != nil {
		return nil, err
	}
	return ProgramInput{ME: me, SourceID: source}, nil
}

func decodePreviewInput(body []byte) (Command, error) {
	me, source, err := decodeMEAndSource("PrvI", body)
	if err != nil {
		return nil, err
	}
	return PreviewInput{ME: me, SourceID: source}, nil
}

func decodeAuxSource(body []byte) (Command, error) {
	me, source, err := decodeMEAndSource("AuxS", body)
	if err != nil {
		return nil, err
	}
	return AuxSource{ME: me, SourceID: source}, nil
}

// TransitionPosition is the `TrPs` record: the in-progress transition's
// position on one ME.
type TransitionPosition struct {
	ME         uint8
	FrameCount uint8
	Position   uint16
}

func (TransitionPosition) isCommand() {}

func decodeTransitionPosition(body []byte) (Command, error) {
	if len(body) < 6 {
		return nil, truncatedf("TrPs", 6, len(body))
	}
	return TransitionPosition{
		ME:         body[0],
		FrameCount: body[2],
		Position:   u16(body[4:6]),
	}, nil
}

// FrameTime is the `Time` record: the switcher's internal clock.
type FrameTime struct {
	Hours   uint8
	Minutes uint8
	Seconds uint8
	Frame   uint8
}

func (FrameTime) isCommand() {}

func decodeFrameTime(body []byte) (Command, error) {
	if len(body) < 4 {
		return nil, truncatedf("Time", 4, len(body))
	}
	return FrameTime{Hours: body[0], Minutes: body[1], Seconds: body[2], Frame: body[3]}, nil
}
