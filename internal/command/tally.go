package command

// TallyInput is one element of TallyInputs, reporting program/preview
// status by input bus position.
type TallyInput struct {
	Program bool
	Preview bool
}

// TallyInputs is the `TlIn` record: a flat list of tally flags ordered by
// bus position.
type TallyInputs struct {
	Inputs []TallyInput
}

func (TallyInputs) isCommand() {}

func decodeTallyInputs(body []byte) (Command, error) {
	if len(body) < 2 {
		return nil, truncatedf("TlIn", 2, len(body))
	}
	count := int(u16(body[0:2]))
	if len(body) < 2+count {
		return nil, truncatedf("TlIn", 2+count, len(body))
	}

	inputs := make([]TallyInput, count)
	for i := 0; i < count; i++ {
		flags := body[2+i]
		inputs[i] = TallyInput{
			Program: flags&0x01 != 0,
			Preview: flags&0x02 != 0,
		}
	}
	return TallyInputs{Inputs: inputs}, nil
}

// TallySource is one element of TallySources, reporting tally by source ID
// rather than bus position.
type TallySource struct {
	SourceID uint16
	Program  bool
	Preview  bool
}

// TallySources is the `TlSr` record.
type TallySources struct {
	Sources []TallySource
}

func (TallySources) isCommand() {}

func decodeTallySources(body []byte) (Command, error) {
	if len(body) < 2 {
		return nil, truncatedf("TlSr", 2, len(body))
	}
	count := int(u16(body[0:2]))
	const entrySize = 3
	need := 2 + count*entrySize
	if len(body) < need {
		return nil, truncatedf("TlSr", need, len(body))
	}

	sources := make([]TallySource, count)
	for i := 0; i < count; i++ {
		off := 2 + i*entrySize
		flags := body[off+2]
		sources[i] = TallySource{
			SourceID: u16(body[off : off+2]),
			Program:  flags&0x01 != 0,
			Preview:  flags&0x02 != 0,
		}
	}
	return TallySources{Sources: sources}, nil
}

// PowerState is the `Powr` record: the switcher's power-supply status.
type PowerState struct {
	Primary   bool
	Secondary bool
}

func (PowerState) isCommand() {}

func decodePowerState(body []byte) (Command, error) {
	if len(body) < 1 {
		return nil, truncatedf("Powr", 1, len(body))
	}
	flags := body[0]
	return PowerState{
		Primary:   flags&0x01 != 0,
		Secondary: flags&0x02 != 0,
	}, nil
}
