package registration

import "strings"

// TagList backs the selectable chip lists (conditions, allergies,
// medications). Entries come from the common lists or free-text custom input;
// duplicate adds are silently ignored.
type TagList struct {
	items []string
}

// Add appends a trimmed tag unless it is empty or already present.
func (l *TagList) Add(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, t := range l.items {
		if t == tag {
			return
		}
	}
	l.items = append(l.items, tag)
}

// Remove deletes a tag if present.
func (l *TagList) Remove(tag string) {
	for i, t := range l.items {
		if t == tag {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether the tag is selected.
func (l *TagList) Contains(tag string) bool {
	for _, t := range l.items {
		if t == tag {
			return true
		}
	}
	return false
}

// Items returns a copy of the selected tags in insertion order.
func (l *TagList) Items() []string {
	if len(l.items) == 0 {
		return nil
	}
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Reset clears the list.
func (l *TagList) Reset() {
	l.items = nil
}
