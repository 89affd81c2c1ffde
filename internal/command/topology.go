package command

// Topology is the `_top` record describing how many of each resource the
// switcher exposes. Field order follows current firmware (16 bytes); older
// firmware emits a shorter body with a different layout, so fields beyond
// the received length decode to zero rather than erroring, and the raw
// bytes are kept alongside the parsed fields for later recalibration. See
// the open question on `_top` layout drift.
type Topology struct {
	MECount              int
	SourceCount          int
	DSKCount             int
	AuxCount             int
	MixMinusOutputCount  int
	MediaPlayerCount     int
	MultiviewerCount     int
	RS485Count           int
	HyperdeckCount       int
	DVECount             int
	StingerCount         int
	SuperSourceCount     int
	TalkbackCount        int
	SDICount             int
	ScalersAvailable     int
	Raw                  []byte
}

func (Topology) isCommand() {}

func byteAt(b []byte, i int) byte {
	if i < len(b) {
		return b[i]
	}
	return 0
}

func decodeTopology(body []byte) (Command, error) {
	return Topology{
		MECount:             int(byteAt(body, 0)),
		SourceCount:         int(byteAt(body, 1)),
		DSKCount:            int(byteAt(body, 2)),
		AuxCount:            int(byteAt(body, 3)),
		MixMinusOutputCount: int(byteAt(body, 4)),
		MediaPlayerCount:    int(byteAt(body, 5)),
		MultiviewerCount:    int(byteAt(body, 6)),
		RS485Count:          int(byteAt(body, 7)),
		HyperdeckCount:      int(byteAt(body, 8)),
		DVECount:            int(byteAt(body, 9)),
		StingerCount:        int(byteAt(body, 10)),
		SuperSourceCount:    int(byteAt(body, 11)),
		// body[12] reserved.
		TalkbackCount:    int(byteAt(body, 13)),
		SDICount:         int(byteAt(body, 14)),
		ScalersAvailable: int(byteAt(body, 15)),
		Raw:              append([]byte(nil), body...),
	}, nil
}
