package dupfinder

// Row is a single (duplicate name, path) pair of a report
type Row struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Group is a duplicate name with every path it was found at
type Group struct {
	Name  string   `json:"name" yaml:"name"`
	Paths []string `json:"paths" yaml:"paths"`
}

// HasDuplicates reports whether any name was seen more than once
func (r *Result) HasDuplicates() bool {
	return len(r.Duplicates) > 0
}

// Rows flattens the duplicates into report rows grouped by name.
// Each duplicate name contributes its path list exactly once.
func (r *Result) Rows() []Row {
	var rows []Row
	for _, name := range r.Duplicates {
		for _, path := range r.Index[name] {
			rows = append(rows, Row{Name: name, Path: path})
		}
	}
	return rows
}

// Groups returns the duplicates as name/paths pairs in first-seen order
func (r *Result) Groups() []Group {
	groups := make([]Group, 0, len(r.Duplicates))
	for _, name := range r.Duplicates {
		groups = append(groups, Group{Name: name, Paths: r.Index[name]})
	}
	return groups
}

// DuplicatePaths counts every path that belongs to a duplicate name
func (r *Result) DuplicatePaths() int {
	total := 0
	for _, name := range r.Duplicates {
		total += len(r.Index[name])
	}
	return total
}
