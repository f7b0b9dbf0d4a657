package gamepad

import "strings"

// ControllerType classifies a device by vendor family.
type ControllerType string

const (
	TypePlaystation ControllerType = "playstation"
	TypeLogitech    ControllerType = "logitech"
	TypeXbox        ControllerType = "xbox"
	TypeN64         ControllerType = "n64" // generic USB joystick 79-6
	TypeUnknown     ControllerType = "unknown"
)

// ResolveControllerType classifies a hardware identity string. Matching is
// case-insensitive and ignores runs of whitespace; the first matching
// family wins.
func ResolveControllerType(id string) ControllerType {
	id = strings.Join(strings.Fields(strings.ToLower(id)), " ")

	switch {
	case strings.Contains(id, "playstation"):
		return TypePlaystation
	case strings.Contains(id, "logitech"), strings.Contains(id, "wireless gamepad"):
		return TypeLogitech
	case strings.Contains(id, "xbox"), strings.Contains(id, "360"):
		return TypeXbox
	case strings.Contains(id, "79-6-generic") && strings.Contains(id, "joystick"):
		return TypeN64
	}
	return TypeUnknown
}
