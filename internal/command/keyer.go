package command

// KeyerOnAir is the `KeOn` record: whether a keyer is currently visible in
// program.
type KeyerOnAir struct {
	ME    uint8
	Keyer uint8
	OnAir bool
}

func (KeyerOnAir) isCommand() {}

func decodeKeyerOnAir(body []byte) (Command, error) {
	if len(body) < 3 {
		return nil, truncatedf("KeOn", 3, len(body))
	}
	return KeyerOnAir{ME: body[0], Keyer: body[1], OnAir: boolFromByte(body[2])}, nil
}

// KeyerBaseProperties is the `KeBP` record: a keyer's type and mask/fill/
// key routing.
type KeyerBaseProperties struct {
	ME         uint8
	Keyer      uint8
	Type       uint8
	Flying     bool
	Fill       uint16
	Key        uint16
	Mask       bool
	MaskTop    float64
	MaskBottom float64
	MaskLeft   float64
	MaskRight  float64
}

func (KeyerBaseProperties) isCommand() {}

func decodeKeyerBaseProperties(body []byte) (Command, error) {
	const size = 1 + 1 + 1 + 2 + 1 + 2 + 2 + 1 + 1 + 2 + 2 + 2 + 2
	if len(body) < size {
		return nil, truncatedf("KeBP", size, len(body))
	}
	// body[3:5] skip.
	return KeyerBaseProperties{
		ME:         body[0],
		Keyer:      body[1],
		Type:       body[2],
		Flying:     boolFromByte(body[5]),
		Fill:       u16(body[6:8]),
		Key:        u16(body[8:10]),
		Mask:       boolFromByteGT0(body[10]),
		// body[11] skip.
		MaskTop:    fraction(i16(body[12:14])),
		MaskBottom: fraction(i16(body[14:16])),
		MaskLeft:   fraction(i16(body[16:18])),
		MaskRight:  fraction(i16(body[18:20])),
	}, nil
}
