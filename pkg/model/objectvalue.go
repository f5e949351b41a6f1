package model

// ObjectValue is a mutable document value tree: a map-typed Value whose
// fields are read, written and deleted by FieldPath.
//
// Every map level is an insertion-ordered array of entries with unique
// keys; key lookup is a linear scan, so the cost of a path operation is
// bounded by nesting depth times the branching factor along the path.
//
// An ObjectValue owns its tree outright. Set clones incoming values and
// Get clones outgoing ones, so no subtree is ever shared between two
// trees. Not safe for concurrent mutation; see the package documentation.
type ObjectValue struct {
	value Value
}

// NewObjectValue returns an empty document value tree.
func NewObjectValue() *ObjectValue {
	return &ObjectValue{value: Map()}
}

// NewObjectValueFromMap builds a tree around a deep copy of the given
// map-typed value. Panics when the value is not map-typed: handing a
// scalar to the document root is a programming error, not a data
// condition.
func NewObjectValueFromMap(v Value) *ObjectValue {
	if !v.IsMap() {
		panic("model: object value root must be map-typed, got " + v.Kind().String())
	}
	return &ObjectValue{value: v.Clone()}
}

// Value returns a deep copy of the whole tree as a map-typed Value.
func (o *ObjectValue) Value() Value {
	return o.value.Clone()
}

// Get returns the value at the given path, or ok=false when the path
// does not resolve. The empty path resolves to the whole tree. The
// returned value is a deep copy; mutating it does not affect the tree.
//
// A path fails to resolve when any step runs through a non-map value or
// references a missing key. That is an ordinary absence, not an error.
func (o *ObjectValue) Get(path FieldPath) (Value, bool) {
	nested := o.value
	for _, segment := range path {
		if !nested.IsMap() {
			return Value{}, false
		}
		i := findField(nested.fields, segment)
		if i < 0 {
			return Value{}, false
		}
		nested = nested.fields[i].Value
	}
	return nested.Clone(), true
}

// Set writes a deep copy of value at the given path, creating
// intermediate maps as needed. A non-map value found on the way down is
// discarded and replaced by an empty map, so setting a deeper path
// through a scalar silently converts that field into an object.
//
// Panics on an empty path.
func (o *ObjectValue) Set(path FieldPath, value Value) {
	if path.Empty() {
		panic("model: cannot set field for empty path on object value")
	}

	parent := &o.value
	for _, segment := range path.PopLast() {
		i := findField(parent.fields, segment)
		if i >= 0 {
			if !parent.fields[i].Value.IsMap() {
				parent.fields[i].Value = Map()
			}
			parent = &parent.fields[i].Value
		} else {
			parent.fields = append(parent.fields, Entry{Key: segment, Value: Map()})
			parent = &parent.fields[len(parent.fields)-1].Value
		}
	}

	last := path.LastSegment()
	if i := findField(parent.fields, last); i >= 0 {
		parent.fields[i].Value = value.Clone()
	} else {
		parent.fields = append(parent.fields, Entry{Key: last, Value: value.Clone()})
	}
}

// Delete removes the entry at the given path. When the path does not
// resolve (a missing key, or a non-map value partway down) Delete is a
// no-op. Intermediate maps emptied by the removal are kept: a field
// holding an empty object stays distinct from an absent field.
//
// Panics on an empty path.
func (o *ObjectValue) Delete(path FieldPath) {
	if path.Empty() {
		panic("model: cannot delete field for empty path on object value")
	}

	parent := &o.value
	for _, segment := range path.PopLast() {
		i := findField(parent.fields, segment)
		if i < 0 || !parent.fields[i].Value.IsMap() {
			return
		}
		parent = &parent.fields[i].Value
	}

	if i := findField(parent.fields, path.LastSegment()); i >= 0 {
		parent.fields = append(parent.fields[:i], parent.fields[i+1:]...)
	}
}

// SetAll applies a sparse patch: for every path in the mask, the field is
// overwritten with the corresponding value from data when present there,
// and deleted otherwise. Fields outside the mask are untouched no matter
// what data holds for them.
func (o *ObjectValue) SetAll(mask FieldMask, data *ObjectValue) {
	for _, path := range mask.Paths() {
		if value, ok := data.Get(path); ok {
			o.Set(path, value)
		} else {
			o.Delete(path)
		}
	}
}

// FieldMask derives the mask implied by the tree's current contents: one
// path per non-map leaf, plus the path of every empty nested map, which
// preserves the presence of explicitly empty objects.
func (o *ObjectValue) FieldMask() FieldMask {
	return NewFieldMask(extractFieldPaths(o.value.fields)...)
}

func extractFieldPaths(fields []Entry) []FieldPath {
	var paths []FieldPath
	for _, f := range fields {
		current := NewFieldPath(f.Key)
		if f.Value.IsMap() {
			nested := extractFieldPaths(f.Value.fields)
			if len(nested) == 0 {
				paths = append(paths, current)
			} else {
				for _, np := range nested {
					paths = append(paths, current.Concat(np))
				}
			}
		} else {
			paths = append(paths, current)
		}
	}
	return paths
}

// Equal reports content equality of two trees, ignoring entry order.
func (o *ObjectValue) Equal(other *ObjectValue) bool {
	return Equal(o.value, other.value)
}

// String returns the canonical form of the whole tree.
func (o *ObjectValue) String() string {
	return o.value.String()
}
