package pdf

import (
	"fmt"
	"sync"
)

// A Document is a set of indirect objects plus the trailer that points
// into them. Objects are written in the order they were defined.
//
// Add, Reserve, Define, SetRoot and SetInfo may be called from several
// goroutines at once.
type Document struct {
	reg *Registry
	cfg Config

	mu       sync.Mutex
	objects  []indirect
	defined  map[uint32]bool
	reserved map[uint32]bool
	trailer  *Dictionary
}

// An indirect is an object together with its identity in a document.
type indirect struct {
	ref Reference
	obj Object
}

// NewDocument returns an empty document drawing object numbers from reg.
// A nil reg gives the document a registry of its own. The zero Config
// means DefaultConfig, and an empty Version means the default version.
func NewDocument(reg *Registry, cfg Config) *Document {
	if reg == nil {
		reg = NewRegistry()
	}
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	if cfg.Version == "" {
		cfg.Version = DefaultConfig().Version
	}
	return &Document{
		reg:      reg,
		cfg:      cfg,
		defined:  make(map[uint32]bool),
		reserved: make(map[uint32]bool),
		trailer:  NewDictionary(),
	}
}

// Add makes x an indirect object of d and returns a reference to it.
func (d *Document) Add(x Object) (Reference, error) {
	ref, err := d.Reserve()
	if err != nil {
		return Reference{}, err
	}
	return ref, d.Define(ref, x)
}

// Reserve assigns an object number without an object, so that objects
// referring to each other can be built. The reference must be passed to
// Define before the document is written if anything refers to it.
func (d *Document) Reserve() (Reference, error) {
	n, err := d.reg.Next()
	if err != nil {
		return Reference{}, fmt.Errorf("reserve object: %w", err)
	}
	d.mu.Lock()
	d.reserved[n] = true
	d.mu.Unlock()
	return Reference{Number: n}, nil
}

// Define supplies the object for a reference returned by Reserve.
func (d *Document) Define(ref Reference, x Object) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ref.Generation != 0 || !d.reserved[ref.Number] {
		if d.defined[ref.Number] {
			return fmt.Errorf("%w: %v is already defined", ErrInvalidDefinition, ref)
		}
		return fmt.Errorf("%w: %v was not reserved in this document", ErrInvalidDefinition, ref)
	}
	delete(d.reserved, ref.Number)
	d.defined[ref.Number] = true
	d.objects = append(d.objects, indirect{ref, x})
	return nil
}

// SetRoot sets the trailer's /Root entry, the document catalog.
func (d *Document) SetRoot(ref Reference) {
	d.mu.Lock()
	d.trailer.Set("Root", ref)
	d.mu.Unlock()
}

// SetInfo sets the trailer's /Info entry, the document information
// dictionary.
func (d *Document) SetInfo(ref Reference) {
	d.mu.Lock()
	d.trailer.Set("Info", ref)
	d.mu.Unlock()
}

// Trailer returns the trailer dictionary for entries other than /Root and
// /Info. /Size and /ID are set when the document is written and replace
// any value stored here. The dictionary must not be changed while the
// document is being written.
func (d *Document) Trailer() *Dictionary {
	return d.trailer
}

// Len returns the number of defined objects.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.objects)
}

// snapshot returns the objects and the trailer as of now.
func (d *Document) snapshot() ([]indirect, map[uint32]bool, *Dictionary) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defined := make(map[uint32]bool, len(d.defined))
	for n := range d.defined {
		defined[n] = true
	}
	return append([]indirect(nil), d.objects...), defined, d.trailer.clone()
}

// A checker walks the object graph before anything is written.
type checker struct {
	defined map[uint32]bool
	seen    map[any]bool
}

func checkGraph(objects []indirect, defined map[uint32]bool, trailer *Dictionary) error {
	c := &checker{defined: defined, seen: make(map[any]bool)}
	for _, o := range objects {
		if err := c.check(o.obj, 0, true); err != nil {
			return fmt.Errorf("object %v: %w", o.ref, err)
		}
	}
	if err := c.check(trailer, 0, false); err != nil {
		return fmt.Errorf("trailer: %w", err)
	}
	return nil
}

func (c *checker) check(x Object, depth int, top bool) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrInvalidGraph, maxDepth)
	}
	switch x := x.(type) {
	case Reference:
		if x.Generation != 0 || !c.defined[x.Number] {
			return fmt.Errorf("%w: %v", ErrDanglingReference, x)
		}
	case Array:
		for _, elem := range x {
			if err := c.check(elem, depth+1, false); err != nil {
				return err
			}
		}
	case *Dictionary:
		if x == nil {
			return nil
		}
		if c.seen[x] {
			return fmt.Errorf("%w: dictionary has more than one parent", ErrInvalidGraph)
		}
		c.seen[x] = true
		for _, k := range x.keys {
			if err := c.check(x.m[k], depth+1, false); err != nil {
				return err
			}
		}
	case *Stream:
		if !top {
			return fmt.Errorf("%w: stream is not an indirect object", ErrInvalidGraph)
		}
		if x == nil {
			return fmt.Errorf("%w: nil stream", ErrInvalidGraph)
		}
		if c.seen[x] {
			return fmt.Errorf("%w: stream has more than one parent", ErrInvalidGraph)
		}
		c.seen[x] = true
		return c.check(x.dict, depth, false)
	}
	return nil
}
