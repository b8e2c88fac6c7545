package domain

// Document is the configuration persisted between the discovery and tagging
// jobs. On the wire it is a flat JSON object: "default_tags" plus one
// object per category mapping resource id to its tag overrides.
type Document struct {
	DefaultTags Tags
	Resources   map[Category]map[string]Tags
}

func NewDocument(defaults Tags) *Document {
	if defaults == nil {
		defaults = Tags{}
	}
	return &Document{
		DefaultTags: defaults,
		Resources:   make(map[Category]map[string]Tags),
	}
}

// Set records tags for a resource, replacing any previous entry.
func (d *Document) Set(category Category, resourceID string, tags Tags) {
	if d.Resources == nil {
		d.Resources = make(map[Category]map[string]Tags)
	}
	byID, ok := d.Resources[category]
	if !ok {
		byID = make(map[string]Tags)
		d.Resources[category] = byID
	}
	byID[resourceID] = tags
}

// Categories returns the categories present in the document, sorted.
func (d *Document) Categories() []Category {
	out := make([]Category, 0, len(d.Resources))
	for c := range d.Resources {
		out = append(out, c)
	}
	SortCategories(out)
	return out
}

func (d *Document) Count() int {
	n := 0
	for _, byID := range d.Resources {
		n += len(byID)
	}
	return n
}
