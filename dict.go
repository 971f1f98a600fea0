package pdf

// A Dictionary is a PDF dictionary: Name keys mapped to objects.
// Entries keep the order in which their keys were first set, and that is
// the order they are written in. The zero value is an empty dictionary
// ready to use.
type Dictionary struct {
	keys []Name
	m    map[Name]Object
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{}
}

// Set sets the value for key and returns d, so that calls can be chained.
// Replacing an existing key keeps its position.
func (d *Dictionary) Set(key Name, value Object) *Dictionary {
	if d.m == nil {
		d.m = make(map[Name]Object)
	}
	if _, ok := d.m[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.m[key] = value
	return d
}

// Get returns the value for key and whether it is present.
func (d *Dictionary) Get(key Name) (Object, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.m[key]
	return v, ok
}

// Delete removes key from d.
func (d *Dictionary) Delete(key Name) {
	if d == nil {
		return
	}
	if _, ok := d.m[key]; !ok {
		return
	}
	delete(d.m, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries in d.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys of d in write order.
func (d *Dictionary) Keys() []Name {
	if d == nil {
		return nil
	}
	return append([]Name(nil), d.keys...)
}

func (d *Dictionary) clone() *Dictionary {
	c := &Dictionary{keys: append([]Name(nil), d.keys...), m: make(map[Name]Object, len(d.m))}
	for k, v := range d.m {
		c.m[k] = v
	}
	return c
}
