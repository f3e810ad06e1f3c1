package collect

// InputType distinguishes the kinds of change events a form emits.
type InputType string

const (
	InputText     InputType = "text"
	InputCheckbox InputType = "checkbox"
)

// Event is a single field change from the interaction surface.
type Event struct {
	Name    string
	Type    InputType
	Value   string
	Checked bool
}

// Text returns a text change event.
func Text(name, value string) Event {
	return Event{Name: name, Type: InputText, Value: value}
}

// Checkbox returns a checkbox change event.
func Checkbox(name string, checked bool) Event {
	return Event{Name: name, Type: InputCheckbox, Checked: checked}
}

// Live holds the values of a reactive form, updated on every change. It is
// owned by one editing session and is not safe for concurrent use.
type Live struct {
	values map[string]any
}

// NewLive returns a Live source with initial values.
func NewLive(initial map[string]any) *Live {
	l := &Live{values: make(map[string]any, len(initial))}
	for k, val := range initial {
		l.values[k] = val
	}
	return l
}

// Change applies ev. Checkbox events store the checked state; every other
// event stores the text value.
func (l *Live) Change(ev Event) {
	if ev.Type == InputCheckbox {
		l.Set(ev.Name, ev.Checked)
		return
	}
	l.Set(ev.Name, ev.Value)
}

// Set stores a raw value for field.
func (l *Live) Set(field string, value any) {
	if l.values == nil {
		l.values = make(map[string]any)
	}
	l.values[field] = value
}

// Lookup implements Source.
func (l *Live) Lookup(field string) (any, bool) {
	val, ok := l.values[field]
	return val, ok
}

// Reset discards every value.
func (l *Live) Reset() {
	l.values = nil
}
