package models

// FileHeader is the parsed header block of one source file: the file
// path plus the open set of key/value fields the file declares. Key
// sets may differ between dataset vintages; absent keys are simply
// missing from Fields.
type FileHeader struct {
	Path   string
	Fields map[string]string
	// keys in file order, for stable column ordering
	Keys []string
}

// Field returns a header value and whether the file declared it.
func (h FileHeader) Field(key string) (string, bool) {
	v, ok := h.Fields[key]
	return v, ok
}

// HeaderTable holds one FileHeader per source file, in discovery
// order. Columns are the union of header keys across all files.
type HeaderTable struct {
	Files      []FileHeader
	turbineKey string
}

// NewHeaderTable builds a header table keyed on the given turbine
// identifier field.
func NewHeaderTable(files []FileHeader, turbineKey string) *HeaderTable {
	return &HeaderTable{Files: files, turbineKey: turbineKey}
}

// Columns returns the union of header keys across all files, ordered
// by first appearance.
func (t *HeaderTable) Columns() []string {
	seen := make(map[string]bool)
	var cols []string
	for _, f := range t.Files {
		for _, k := range f.Keys {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	return cols
}

// Turbines returns the distinct turbine identifiers in discovery
// order.
func (t *HeaderTable) Turbines() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, f := range t.Files {
		id, ok := f.Field(t.turbineKey)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// FilesFor returns the paths of the files belonging to a turbine, in
// discovery order.
func (t *HeaderTable) FilesFor(turbine string) []string {
	var paths []string
	for _, f := range t.Files {
		if id, ok := f.Field(t.turbineKey); ok && id == turbine {
			paths = append(paths, f.Path)
		}
	}
	return paths
}
