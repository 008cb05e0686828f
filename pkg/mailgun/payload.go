package mailgun

// Field is a single Mailgun API parameter.
type Field struct {
	Value any
	Key   string
}

// Payload is the ordered parameter set sent to the Mailgun Messages API.
//
// Values are strings for address, subject and body fields, []Attachment for
// the attachment field, and whatever the caller supplied for reserved-prefix
// keys (o:, h:, v:).
type Payload struct {
	fields []Field
}

func (p *Payload) add(key string, value any) {
	p.fields = append(p.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (p *Payload) Get(key string) (any, bool) {
	for _, f := range p.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (p *Payload) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of fields.
func (p *Payload) Len() int {
	return len(p.fields)
}

// Keys returns the field names in payload order.
func (p *Payload) Keys() []string {
	keys := make([]string, len(p.fields))
	for i, f := range p.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the fields in payload order.
func (p *Payload) Fields() []Field {
	out := make([]Field, len(p.fields))
	copy(out, p.fields)
	return out
}

// Map returns the payload as a plain map. Useful for comparisons and logging.
func (p *Payload) Map() map[string]any {
	m := make(map[string]any, len(p.fields))
	for _, f := range p.fields {
		m[f.Key] = f.Value
	}
	return m
}

// Attachments returns the mapped attachment list, or nil when the payload has none.
func (p *Payload) Attachments() []Attachment {
	v, _ := p.Get(FieldAttachment)
	list, _ := v.([]Attachment)
	return list
}
