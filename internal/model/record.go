package model

// Record is one CSV row bound to the names of a header template. Columns keeps
// template order for the names that received a value; a name whose position
// was past the end of the source row is absent, which is distinct from a
// present but empty value.
type Record struct {
	Columns []string
	values  map[string]string
}

// NewRecord builds a Record from name/value pairs. Panics on an odd count.
func NewRecord(pairs ...string) Record {
	if len(pairs)%2 != 0 {
		panic("model.NewRecord: odd number of arguments")
	}
	var r Record
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Set assigns a value. A repeated name keeps its first position and takes the
// latest value.
func (r *Record) Set(name, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[name]; !ok {
		r.Columns = append(r.Columns, name)
	}
	r.values[name] = value
}

// Get returns the value for name and whether the column is present.
func (r Record) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Value returns the value for name, or "" when absent.
func (r Record) Value(name string) string {
	return r.values[name]
}

// Len returns the number of present columns.
func (r Record) Len() int { return len(r.Columns) }
