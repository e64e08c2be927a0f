package models

import (
	"fmt"
	"strings"
)

// Role is the normalized principal role supplied by the identity boundary.
type Role string

const (
	RoleGuest     Role = "guest"
	RoleAttendee  Role = "attendee"
	RoleVendor    Role = "vendor"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// ParseRole normalizes a raw role string to one of the five known roles.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleGuest:
		return RoleGuest, nil
	case RoleAttendee:
		return RoleAttendee, nil
	case RoleVendor:
		return RoleVendor, nil
	case RoleOrganizer:
		return RoleOrganizer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// RoleContext is the capacity under which a check-in happens. The same
// principal may hold both an attendee and a vendor relationship to one event.
type RoleContext string

const (
	ContextAttendee RoleContext = "attendee"
	ContextVendor   RoleContext = "vendor"
)

// ParseRoleContext accepts only the two valid check-in contexts.
func ParseRoleContext(raw string) (RoleContext, error) {
	switch RoleContext(raw) {
	case ContextAttendee:
		return ContextAttendee, nil
	case ContextVendor:
		return ContextVendor, nil
	default:
		return "", fmt.Errorf("unknown role context %q", raw)
	}
}
