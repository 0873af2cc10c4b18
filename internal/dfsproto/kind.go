package dfsproto

// Kind is the wire discriminant carried in the "type" field.
type Kind string

const (
	KindCreate Kind = "Create"
	KindGet    Kind = "Get"
	KindList   Kind = "List"
	KindDelete Kind = "Delete"
)

// Kinds lists every variant in protocol order.
func Kinds() []Kind {
	return []Kind{KindCreate, KindGet, KindList, KindDelete}
}

// Valid reports whether k is one of the four protocol variants.
func (k Kind) Valid() bool {
	switch k {
	case KindCreate, KindGet, KindList, KindDelete:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }
