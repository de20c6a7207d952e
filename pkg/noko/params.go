package noko

// Params is the wire-ready parameter set produced by a schema's Normalize.
// Keys are the exact field names Noko expects; nil-valued fields have
// already been dropped, because the API distinguishes an omitted field
// from an explicit null.
type Params map[string]any

// set stores a value unless it is nil.
func (p Params) set(key string, v any) {
	if v == nil {
		return
	}
	p[key] = v
}

// setString stores a string unless it is empty.
func (p Params) setString(key, v string) {
	if v != "" {
		p[key] = v
	}
}

// setInt stores an int unless it is zero.
func (p Params) setInt(key string, v int) {
	if v != 0 {
		p[key] = v
	}
}

// setFloat stores an optional numeric field when present.
func (p Params) setFloat(key string, v *float64) {
	if v != nil {
		p[key] = *v
	}
}
