package constvars

const (
	ImageProfilePicturePrefix = "profile_photo"
)

// ImageAllowedProfilePictureFormats are the extensions accepted for photo
// uploads, dot included.
var ImageAllowedProfilePictureFormats = []string{".jpg", ".jpeg", ".png"}
