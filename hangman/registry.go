/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

import "strings"

// Capacity is the number of connections a room holds.
const Capacity = 2

type member struct {
	connID string
	name   string
}

// Registry maps live connection identifiers to display names in arrival order.
type Registry struct {
	members []member
}

// Join registers connID under name. Rules are checked in order: empty name,
// room full, invalid characters, duplicate name.
func (r *Registry) Join(connID, name string) error {
	if name == "" {
		return ErrNameEmpty
	}

	if len(r.members) >= Capacity {
		return ErrRoomFull
	}

	if err := CheckName(name); err != nil {
		return err
	}

	for _, m := range r.members {
		if strings.ToLower(m.name) == strings.ToLower(name) {
			return &NameTakenError{Name: m.name}
		}
	}

	r.members = append(r.members, member{connID: connID, name: name})

	return nil
}

// Leave removes connID and returns its display name. ok is false when the
// connection was never registered.
func (r *Registry) Leave(connID string) (name string, ok bool) {
	for i, m := range r.members {
		if m.connID == connID {
			r.members = append(r.members[:i], r.members[i+1:]...)

			return m.name, true
		}
	}

	return "", false
}

// Name looks up the display name registered for connID.
func (r *Registry) Name(connID string) (string, bool) {
	for _, m := range r.members {
		if m.connID == connID {
			return m.name, true
		}
	}

	return "", false
}

// Len is the room occupancy.
func (r *Registry) Len() int {
	return len(r.members)
}

// ConnIDs returns connection identifiers in arrival order.
func (r *Registry) ConnIDs() []string {
	ids := make([]string, 0, len(r.members))
	for _, m := range r.members {
		ids = append(ids, m.connID)
	}

	return ids
}
