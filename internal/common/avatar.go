package common

import "hash/fnv"

// Fixed palette for newly registered accounts.
var avatarColors = []string{
	"#0088cc", "#8e44ad", "#e74c3c", "#27ae60", "#f39c12", "#16a085",
}

// PickAvatarColor assigns a palette color deterministically from the
// username so repeated registrations of the same name look the same.
func PickAvatarColor(username string) string {
	h := fnv.New32a()
	h.Write([]byte(username))
	return avatarColors[h.Sum32()%uint32(len(avatarColors))]
}
