package codec

// Command discriminants for the remedybg debugger protocol. These
// values are part of the external wire contract and must match the
// corpus bit-exact; renumbering any of them breaks interoperability
// with the debugger process.
const (
	CmdStartDebugging              uint16 = 301
	CmdAttachToProcessByPid        uint16 = 304
	CmdStepIntoByLine              uint16 = 307
	CmdContinueExecution           uint16 = 312
	CmdGetBreakpoints              uint16 = 600
	CmdAddBreakpointAtFilenameLine uint16 = 604
	CmdGetBreakpoint               uint16 = 612
)

// RemedybgEventKind discriminates a RemedybgEvent variant. Event and
// command discriminants occupy separate namespaces (each travels in
// its own kind of envelope), so a value like 600 appearing in both
// CmdGetBreakpoints and EventBreakpointHit is not a collision.
type RemedybgEventKind uint16

const (
	EventExitProcess           RemedybgEventKind = 100
	EventSourceLocationChanged RemedybgEventKind = 200
	EventBreakpointHit         RemedybgEventKind = 600
	EventBreakpointRemoved     RemedybgEventKind = 604
	EventOutputDebugString     RemedybgEventKind = 800
)

// RemedybgEvent is a tagged union of the debugger event messages this
// client understands. Only the fields relevant to Kind are
// meaningful.
type RemedybgEvent struct {
	Kind         RemedybgEventKind
	BreakpointID uint32 // BreakpointHit, BreakpointRemoved
	Message      string // OutputDebugString
}

// EncodeRemedybgEvent serializes e as [u16 discriminant][payload].
func EncodeRemedybgEvent(e RemedybgEvent) []byte {
	enc := NewEncoder()
	enc.WriteU16(uint16(e.Kind))
	switch e.Kind {
	case EventBreakpointHit, EventBreakpointRemoved:
		enc.WriteU32(e.BreakpointID)
	case EventOutputDebugString:
		enc.WriteString(e.Message)
	}
	return enc.Bytes()
}

// DecodeRemedybgEvent deserializes a RemedybgEvent. An unknown
// discriminant, or a breakpoint event whose ID is 0, is reported as
// ErrInvalidData.
func DecodeRemedybgEvent(buf []byte) (RemedybgEvent, error) {
	dec := NewDecoder(buf)
	raw, err := dec.ReadU16()
	if err != nil {
		return RemedybgEvent{}, err
	}
	kind := RemedybgEventKind(raw)

	switch kind {
	case EventBreakpointHit, EventBreakpointRemoved:
		id, err := dec.ReadID()
		if err != nil {
			return RemedybgEvent{}, err
		}
		return RemedybgEvent{Kind: kind, BreakpointID: id}, nil
	case EventOutputDebugString:
		msg, err := dec.ReadString()
		if err != nil {
			return RemedybgEvent{}, err
		}
		return RemedybgEvent{Kind: kind, Message: msg}, nil
	case EventExitProcess, EventSourceLocationChanged:
		return RemedybgEvent{Kind: kind}, nil
	default:
		return RemedybgEvent{}, ErrInvalidData
	}
}
