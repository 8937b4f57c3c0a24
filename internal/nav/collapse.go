package nav

// CurrentPage locates the entry for the page being rendered by following the
// active chain. It returns nil when the page is not reachable from entries.
func CurrentPage(entries []*Entry) *Entry {
	for _, e := range entries {
		if !e.Active {
			continue
		}
		if e.Current {
			return e
		}
		return CurrentPage(e.Children)
	}
	return nil
}

// CollapseToPage returns an independent copy of entry keeping only the
// children on the page's active path. Entries off the active path keep their
// titles and urls but lose all children. The input tree is not modified.
func CollapseToPage(entry *Entry) *Entry {
	clone := *entry
	if !entry.Active {
		clone.Children = []*Entry{}
		return &clone
	}
	clone.Children = make([]*Entry, 0, len(entry.Children))
	for _, c := range entry.Children {
		clone.Children = append(clone.Children, CollapseToPage(c))
	}
	return &clone
}
