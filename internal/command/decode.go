package command

type decodeFunc func(body []byte) (Command, error)

var decoders = map[[4]byte]decodeFunc{
	tag("_ver"): decodeVersion,
	tag("_pin"): decodeProduct,
	tag("_top"): decodeTopology,
	tag("InPr"): decodeSource,
	tag("PrgI"): decodeProgramInput,
	tag("PrvI"): decodePreviewInput,
	tag("AuxS"): decodeAuxSource,
	tag("TrPs"): decodeTransitionPosition,
	tag("Time"): decodeFrameTime,
	tag("TlIn"): decodeTallyInputs,
	tag("TlSr"): decodeTallySources,
	tag("Powr"): decodePowerState,
	tag("TrSS"): decodeTransitionStyleSelection,
	tag("MvIn"): decodeMultiViewInput,
	tag("TCCc"): decodeTimeCodeState,
	tag("VidM"): decodeVideoMode,
	tag("_MeC"): decodeMeConfig,
	tag("_mpl"): decodeMediaPlayerConfig,
	tag("_VMC"): decodeVideoModeConfig,
	tag("VuMC"): decodeMultiViewVU,
	tag("SaMw"): decodeMultiViewSafeArea,
	tag("MvPr"): decodeMultiViewLayout,
	tag("TrPr"): decodeTransitionPreview,
	tag("TMxP"): decodeTransitionMix,
	tag("TDpP"): decodeTransitionDip,
	tag("TWpP"): decodeTransitionWipe,
	tag("TDvP"): decodeTransitionDVE,
	tag("TStP"): decodeTransitionStinger,
	tag("KeOn"): decodeKeyerOnAir,
	tag("KeBP"): decodeKeyerBaseProperties,
}

func tag(s string) [4]byte {
	var t [4]byte
	copy(t[:], s)
	return t
}

// Decode dispatches on tag and decodes body into the matching Command
// variant. An unrecognized tag yields *UnknownCommandError; the caller
// (the payload splitter) continues with the next record regardless.
func Decode(rawTag [4]byte, body []byte) (Command, error) {
	fn, ok := decoders[rawTag]
	if !ok {
		return nil, &UnknownCommandError{Tag: rawTag}
	}
	return fn(body)
}
