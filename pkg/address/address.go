package address

// Kind identifies which form a Value holds.
type Kind uint8

const (
	// KindNone is the zero Value: the field was not provided.
	KindNone Kind = iota
	// KindString is a pre-formatted address string passed through as-is.
	KindString
	// KindObject is a single name/address pair.
	KindObject
	// KindList is an ordered sequence of strings and/or name/address pairs.
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	default:
		return "none"
	}
}

// Address is the object form of a mailbox.
// An empty Name means the mailbox has no display name.
type Address struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
}

// Entry is a single element of a list Value: either a raw string or an Address.
type Entry struct {
	addr   Address
	raw    string
	object bool
}

// Raw creates a list entry from a pre-formatted address string.
func Raw(s string) Entry {
	return Entry{raw: s}
}

// Named creates a list entry from a display name and an email address.
func Named(name, addr string) Entry {
	return Entry{addr: Address{Name: name, Address: addr}, object: true}
}

// Bare creates a list entry from an email address without a display name.
func Bare(addr string) Entry {
	return Named("", addr)
}

// IsObject reports whether the entry holds an Address rather than a raw string.
func (e Entry) IsObject() bool {
	return e.object
}

// Address returns the object form of the entry. Only meaningful when IsObject is true.
func (e Entry) Address() Address {
	return e.addr
}

// Raw returns the raw string form of the entry. Only meaningful when IsObject is false.
func (e Entry) Raw() string {
	return e.raw
}

// Value holds an address field in any of the accepted forms.
// The zero Value has KindNone.
type Value struct {
	raw  string
	addr Address
	list []Entry
	kind Kind
}

// String creates a Value from a pre-formatted address string.
func String(s string) Value {
	return Value{kind: KindString, raw: s}
}

// Object creates a Value from a single Address.
func Object(a Address) Value {
	return Value{kind: KindObject, addr: a}
}

// List creates a Value from an ordered sequence of entries.
// The entries slice is copied.
func List(entries ...Entry) Value {
	list := make([]Entry, len(entries))
	copy(list, entries)
	return Value{kind: KindList, list: list}
}

// Strings creates a list Value from raw address strings.
func Strings(addrs ...string) Value {
	list := make([]Entry, len(addrs))
	for i, a := range addrs {
		list[i] = Raw(a)
	}
	return Value{kind: KindList, list: list}
}

// Objects creates a list Value from Address objects.
func Objects(addrs ...Address) Value {
	list := make([]Entry, len(addrs))
	for i, a := range addrs {
		list[i] = Entry{addr: a, object: true}
	}
	return Value{kind: KindList, list: list}
}

// Kind returns the form held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsZero reports whether the value was never set.
func (v Value) IsZero() bool {
	return v.kind == KindNone
}

// Entries returns the rendered entries that carry a usable address, in input order.
// A string Value yields itself unless it is empty.
func (v Value) Entries() []string {
	switch v.kind {
	case KindString:
		if v.raw == "" {
			return nil
		}
		return []string{v.raw}
	case KindObject:
		if s, ok := Format(v.addr); ok {
			return []string{s}
		}
		return nil
	case KindList:
		out := make([]string, 0, len(v.list))
		for _, e := range v.list {
			if s, ok := e.render(); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func (e Entry) render() (string, bool) {
	if e.object {
		return Format(e.addr)
	}
	return e.raw, e.raw != ""
}
