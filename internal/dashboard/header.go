package dashboard

import (
	"strings"

	"github.com/alexanderramin/timereview/internal/domain"
)

// Identity is what the header shows for the signed-in admin.
type Identity struct {
	Name       string
	AvatarPath string
}

// FallbackIdentity is used until the profile loads or when it fails.
func FallbackIdentity() Identity {
	return Identity{AvatarPath: domain.DefaultAvatarPath}
}

// ResolveIdentity maps a profile fetch to the header identity. Any failure
// yields the fallback. A profile without a picture keeps the default avatar.
func ResolveIdentity(r Result[*domain.AdminProfile]) Identity {
	if r.Err != nil || r.Value == nil {
		return FallbackIdentity()
	}
	id := Identity{
		Name:       strings.TrimSpace(r.Value.Name),
		AvatarPath: r.Value.ProfilePicPath,
	}
	if id.AvatarPath == "" {
		id.AvatarPath = domain.DefaultAvatarPath
	}
	return id
}

// Label is the header text: the name, or "admin" when unknown.
func (i Identity) Label() string {
	if i.Name == "" {
		return "admin"
	}
	return i.Name
}
