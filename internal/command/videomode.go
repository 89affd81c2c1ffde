package command

import "fmt"

// VideoMode is the `VidM` record: the switcher's current video standard.
// It is its own Command: the wire record is a single byte with no other
// fields to wrap it in.
type VideoMode uint8

const (
	VideoModeNTSC            VideoMode = 0
	VideoModePAL             VideoMode = 1
	VideoModeNTSCWidescreen  VideoMode = 2
	VideoModePALWidescreen   VideoMode = 3
	VideoMode720p50          VideoMode = 4
	VideoMode720p59_94       VideoMode = 5
	VideoMode1080i50         VideoMode = 6
	VideoMode1080i59_94      VideoMode = 7
	VideoMode1080p23_98      VideoMode = 8
	VideoMode1080p24         VideoMode = 9
	VideoMode1080p25         VideoMode = 10
	VideoMode1080p29_97      VideoMode = 11
	VideoMode1080p50         VideoMode = 12
	VideoMode1080p59_94      VideoMode = 13
	VideoMode4K23_98         VideoMode = 14
	VideoMode4K24            VideoMode = 15
	VideoMode4K25            VideoMode = 16
	VideoMode4K29_97         VideoMode = 17
	VideoMode4K50            VideoMode = 18
	VideoMode4K59_94         VideoMode = 19
	VideoMode8K23_98         VideoMode = 20
	VideoMode8K24            VideoMode = 21
	VideoMode8K25            VideoMode = 22
	VideoMode8K29_97         VideoMode = 23
	VideoMode8K50            VideoMode = 24
	VideoMode8K59_94         VideoMode = 25
	VideoMode1080p30         VideoMode = 26
	VideoMode1080p60         VideoMode = 27
	VideoMode720p60          VideoMode = 28
	VideoMode1080i60         VideoMode = 29
)

func (VideoMode) isCommand() {}

var videoModeNames = map[VideoMode]string{
	VideoModeNTSC:           "NTSC",
	VideoModePAL:            "PAL",
	VideoModeNTSCWidescreen: "NTSC widescreen",
	VideoModePALWidescreen:  "PAL widescreen",
	VideoMode720p50:         "720p50",
	VideoMode720p59_94:      "720p59.94",
	VideoMode1080i50:        "1080i50",
	VideoMode1080i59_94:     "1080i59.94",
	VideoMode1080p23_98:     "1080p23.98",
	VideoMode1080p24:        "1080p24",
	VideoMode1080p25:        "1080p25",
	VideoMode1080p29_97:     "1080p29.97",
	VideoMode1080p50:        "1080p50",
	VideoMode1080p59_94:     "1080p59.94",
	VideoMode4K23_98:        "4K23.98",
	VideoMode4K24:           "4K24",
	VideoMode4K25:           "4K25",
	VideoMode4K29_97:        "4K29.97",
	VideoMode4K50:           "4K50",
	VideoMode4K59_94:        "4K59.94",
	VideoMode8K23_98:        "8K23.98",
	VideoMode8K24:           "8K24",
	VideoMode8K25:           "8K25",
	VideoMode8K29_97:        "8K29.97",
	VideoMode8K50:           "8K50",
	VideoMode8K59_94:        "8K59.94",
	VideoMode1080p30:        "1080p30",
	VideoMode1080p60:        "1080p60",
	VideoMode720p60:         "720p60",
	VideoMode1080i60:        "1080i60",
}

func (m VideoMode) String() string {
	if name, ok := videoModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(m))
}

func decodeVideoMode(body []byte) (Command, error) {
	if len(body) < 1 {
		return nil, truncatedf("VidM", 1, len(body))
	}
	return VideoMode(body[0]), nil
}
