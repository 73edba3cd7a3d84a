package trace

// Kind represents the type of event
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindAlloc
	KindWrite
	KindRead
	KindFree
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindAlloc:
		return "alloc"
	case KindWrite:
		return "write"
	case KindRead:
		return "read"
	case KindFree:
		return "free"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// NoIndex marks an event on a single value rather than a sequence element.
const NoIndex = -1

// Event represents a single traced state transition
type Event struct {
	Demo  string `json:"demo"`
	Kind  Kind   `json:"kind"`
	Label string `json:"label,omitempty"`
	Index int    `json:"index"`
	Value string `json:"value,omitempty"` // Allocation size for alloc, formatted value for read/write
}
