// Package notify delivers configuration changes to the components that care
// about them.
//
// A reload is turned into a list of per-setting changes with Diff, and each
// change is sent to observers subscribed to that setting or to one of its
// parent sections.
package notify

import (
	"reflect"
	"sort"
	"sync"
)

// ChangeType represents the type of configuration change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeDelete indicates a value was removed.
	ChangeDelete
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change represents one changed setting.
type Change struct {
	// Path is the dot-separated setting, e.g. "ui.gutterWidth".
	Path string

	Type     ChangeType
	OldValue any
	NewValue any
}

// Observer is called when configuration changes occur.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

type entry struct {
	id       uint64
	path     string
	observer Observer
}

// Notifier manages subscriptions. Delivery is synchronous and in
// subscription order.
type Notifier struct {
	mu      sync.RWMutex
	entries []entry
	nextID  uint64
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers an observer for every change.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	return n.SubscribePath("", observer)
}

// SubscribePath registers an observer for path and everything below it.
// Subscribing to "editor" receives changes to "editor.scrollMargin".
func (n *Notifier) SubscribePath(path string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.entries = append(n.entries, entry{id: id, path: path, observer: observer})

	return &Subscription{id: id, notifier: n}
}

// Notify sends change to all matching observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	var observers []Observer
	for _, e := range n.entries {
		if e.path == change.Path || isParentPath(e.path, change.Path) {
			observers = append(observers, e.observer)
		}
	}
	n.mu.RUnlock()

	// Call observers outside the lock
	for _, obs := range observers {
		obs(change)
	}
}

// NotifyAll sends each change in order.
func (n *Notifier) NotifyAll(changes []Change) {
	for _, c := range changes {
		n.Notify(c)
	}
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, e := range n.entries {
		if e.id == id {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return
		}
	}
}

// isParentPath checks if parent is a parent path of child.
// e.g., "editor" is parent of "editor.pollInterval".
func isParentPath(parent, child string) bool {
	if parent == "" {
		return true
	}
	return len(child) > len(parent) && child[:len(parent)] == parent && child[len(parent)] == '.'
}

// Diff compares two nested settings maps and returns the changed leaves,
// sorted by path.
func Diff(oldData, newData map[string]any) []Change {
	var changes []Change
	diff("", oldData, newData, &changes)
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes
}

func diff(prefix string, oldData, newData map[string]any, out *[]Change) {
	for k, nv := range newData {
		path := join(prefix, k)
		ov, existed := oldData[k]

		nm, nIsMap := nv.(map[string]any)
		om, oIsMap := ov.(map[string]any)
		switch {
		case nIsMap && (oIsMap || !existed):
			diff(path, om, nm, out)
		case !existed:
			*out = append(*out, Change{Path: path, Type: ChangeSet, NewValue: nv})
		case !reflect.DeepEqual(ov, nv):
			*out = append(*out, Change{Path: path, Type: ChangeSet, OldValue: ov, NewValue: nv})
		}
	}

	for k, ov := range oldData {
		if _, ok := newData[k]; ok {
			continue
		}
		path := join(prefix, k)
		if om, ok := ov.(map[string]any); ok {
			diff(path, om, nil, out)
			continue
		}
		*out = append(*out, Change{Path: path, Type: ChangeDelete, OldValue: ov})
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
