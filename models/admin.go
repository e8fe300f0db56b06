package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AdminRole names the slot an allow-listed id was configured in.
type AdminRole string

const (
	RoleManicure AdminRole = "manicure"
	RoleOther    AdminRole = "other"
	RoleAll      AdminRole = "all"
)

// AdminConfig is the stored allow-list, one id per role, as strings.
type AdminConfig struct {
	AdminManicure string `json:"ADMIN_MANICURE"`
	AdminOther    string `json:"ADMIN_OTHER"`
	AdminAll      string `json:"ADMIN_ALL"`
}

// ConfigError reports an allow-list entry that is not a user id.
type ConfigError struct {
	Role  AdminRole
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("admin config: %s admin id %q is not numeric: %v", e.Role, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// AdminSet is the validated allow-list.
type AdminSet struct {
	roles map[int64]AdminRole
}

// Parse validates every entry of c and builds the allow-list.
// Any empty or non-numeric entry fails the whole config.
func (c AdminConfig) Parse() (AdminSet, error) {
	set := AdminSet{roles: make(map[int64]AdminRole, 3)}
	entries := []struct {
		role  AdminRole
		value string
	}{
		{RoleManicure, c.AdminManicure},
		{RoleOther, c.AdminOther},
		{RoleAll, c.AdminAll},
	}
	for _, e := range entries {
		id, err := strconv.ParseInt(strings.TrimSpace(e.value), 10, 64)
		if err != nil {
			return AdminSet{}, &ConfigError{Role: e.role, Value: e.value, Err: err}
		}
		if _, dup := set.roles[id]; !dup {
			set.roles[id] = e.role
		}
	}
	return set, nil
}

// Contains reports whether id is allow-listed.
func (s AdminSet) Contains(id int64) bool {
	_, ok := s.roles[id]
	return ok
}

// Role returns the first role id was configured for.
func (s AdminSet) Role(id int64) (AdminRole, bool) {
	role, ok := s.roles[id]
	return role, ok
}

// Len is the number of distinct admin ids.
func (s AdminSet) Len() int {
	return len(s.roles)
}

// AdminEntry is one raw allow-list slot.
type AdminEntry struct {
	Role AdminRole
	ID   string
}

// Entries lists the configured slots in role order, skipping blank ones.
func (c AdminConfig) Entries() []AdminEntry {
	var out []AdminEntry
	for _, e := range []AdminEntry{
		{RoleManicure, c.AdminManicure},
		{RoleOther, c.AdminOther},
		{RoleAll, c.AdminAll},
	} {
		if strings.TrimSpace(e.ID) != "" {
			e.ID = strings.TrimSpace(e.ID)
			out = append(out, e)
		}
	}
	return out
}
