package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidPermission is returned when a requested permission is not part of the catalog.
var ErrInvalidPermission = errors.New("invalid permission")

// InvalidPermissionError names the permission a catalog rejected.
type InvalidPermissionError struct {
	Name string
}

func (e *InvalidPermissionError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidPermission, e.Name)
}

func (e *InvalidPermissionError) Unwrap() error {
	return ErrInvalidPermission
}

// Catalog maps permission groups to the names a subuser may be granted.
type Catalog map[string][]string

// DefaultCatalog lists every permission a server owner can delegate.
var DefaultCatalog = Catalog{
	"websocket":  {"websocket.connect"},
	"control":    {"control.console", "control.start", "control.stop", "control.restart"},
	"user":       {"user.create", "user.read", "user.update", "user.delete"},
	"file":       {"file.create", "file.read", "file.read-content", "file.update", "file.delete", "file.archive", "file.sftp"},
	"backup":     {"backup.create", "backup.read", "backup.delete", "backup.download", "backup.restore"},
	"allocation": {"allocation.read", "allocation.create", "allocation.update", "allocation.delete"},
	"startup":    {"startup.read", "startup.update", "startup.docker-image"},
	"database":   {"database.create", "database.read", "database.update", "database.delete", "database.view_password"},
	"schedule":   {"schedule.create", "schedule.read", "schedule.update", "schedule.delete"},
	"settings":   {"settings.rename", "settings.reinstall"},
	"activity":   {"activity.read"},
}

// Contains reports whether name is a known permission.
func (c Catalog) Contains(name string) bool {
	group, _, ok := strings.Cut(name, ".")
	if !ok {
		return false
	}
	for _, p := range c[group] {
		if p == name {
			return true
		}
	}
	return false
}

// Names returns every permission in the catalog, sorted.
func (c Catalog) Names() []string {
	var names []string
	for _, group := range c {
		names = append(names, group...)
	}
	sort.Strings(names)
	return names
}

// Validate checks every name against the catalog and reports the first unknown one.
func (c Catalog) Validate(names []string) error {
	for _, name := range names {
		if !c.Contains(name) {
			return &InvalidPermissionError{Name: name}
		}
	}
	return nil
}

// NormalizePermissions trims names and drops blanks and duplicates while
// keeping the caller's order.
func NormalizePermissions(names []string) []string {
	if len(names) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
