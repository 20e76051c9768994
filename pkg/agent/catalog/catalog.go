package catalog

import "fmt"

// SectionID identifies one step of a guided interview.
type SectionID string

// Descriptor is the static metadata for one section.
type Descriptor struct {
	ID             SectionID
	Title          string
	RequiredFields []string
	Next           SectionID // empty for the terminal section
	RemoteID       int       // numeric section id in the remote store
}

// Catalog is the immutable, ordered list of sections for one agent. It is
// built once at startup and shared read-only by every conversation.
type Catalog struct {
	order []SectionID
	byID  map[SectionID]Descriptor
}

// New validates the descriptors and builds a catalog. The descriptors must
// form a single forward chain: each section's Next points to the following
// one in the slice and only the last section has an empty Next. A broken
// chain or an unmapped remote id is a configuration error, not something a
// running conversation can recover from.
func New(descriptors []Descriptor) (*Catalog, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("catalog: no sections defined")
	}

	c := &Catalog{
		order: make([]SectionID, 0, len(descriptors)),
		byID:  make(map[SectionID]Descriptor, len(descriptors)),
	}

	remoteIDs := make(map[int]SectionID, len(descriptors))
	for i, d := range descriptors {
		if d.ID == "" {
			return nil, fmt.Errorf("catalog: section %d has an empty id", i)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate section id %q", d.ID)
		}

		last := i == len(descriptors)-1
		if last && d.Next != "" {
			return nil, fmt.Errorf("catalog: terminal section %q must not have a next section", d.ID)
		}
		if !last && d.Next != descriptors[i+1].ID {
			return nil, fmt.Errorf("catalog: section %q links to %q, expected %q", d.ID, d.Next, descriptors[i+1].ID)
		}

		if d.RemoteID != 0 {
			if prev, dup := remoteIDs[d.RemoteID]; dup {
				return nil, fmt.Errorf("catalog: sections %q and %q share remote id %d", prev, d.ID, d.RemoteID)
			}
			remoteIDs[d.RemoteID] = d.ID
		}

		c.order = append(c.order, d.ID)
		c.byID[d.ID] = d
	}

	return c, nil
}

// MustNew builds a catalog or panics. Agent catalogs are static data, so a
// failure here is a programming error caught at startup.
func MustNew(descriptors []Descriptor) *Catalog {
	c, err := New(descriptors)
	if err != nil {
		panic(err)
	}
	return c
}

// Order returns the section ids in interview order.
func (c *Catalog) Order() []SectionID {
	out := make([]SectionID, len(c.order))
	copy(out, c.order)
	return out
}

// Descriptor looks up the metadata for a section.
func (c *Catalog) Descriptor(id SectionID) (Descriptor, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Contains reports whether id is part of this catalog.
func (c *Catalog) Contains(id SectionID) bool {
	_, ok := c.byID[id]
	return ok
}

// First returns the first section in the catalog.
func (c *Catalog) First() SectionID {
	return c.order[0]
}

// Len returns the number of sections.
func (c *Catalog) Len() int {
	return len(c.order)
}

// NextUnfinished scans the catalog in order and returns the first section not
// present in the done set. The second return value is false when every
// section is done. The function is pure: both the navigator and the progress
// endpoints call it without side effects.
func (c *Catalog) NextUnfinished(done map[SectionID]bool) (SectionID, bool) {
	for _, id := range c.order {
		if !done[id] {
			return id, true
		}
	}
	return "", false
}
