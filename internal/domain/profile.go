package domain

// DefaultAvatarPath is shown when the admin identity cannot be loaded.
const DefaultAvatarPath = "/dynamic-samples-images/profile.svg"

type AdminProfile struct {
	Name           string `json:"name"`
	ProfilePicPath string `json:"profile_pic_path"`
}
