package reconcile

import (
	"fmt"
	"net/url"
	"unicode/utf16"
)

const avatarBase = "https://api.dicebear.com/7.x/avataaars/svg"

// StringToColor hashes s into an RGB hex color. The hash runs over UTF-16
// code units with the shift truncated to 32 bits while the running sum is
// not, which keeps colors identical to the ones the web client computes.
func StringToColor(s string) string {
	var hash int64
	for _, c := range utf16.Encode([]rune(s)) {
		shifted := int64(toInt32(hash) << 5)
		hash = int64(c) + shifted - hash
	}
	return fmt.Sprintf("#%06X", uint32(toInt32(hash))&0xFFFFFF)
}

func toInt32(v int64) int32 {
	return int32(uint32(v))
}

// AvatarURL returns the generated avatar for a display name.
func AvatarURL(name string) string {
	return avatarBase + "?seed=" + url.QueryEscape(name) + "&backgroundColor=b6e3f4"
}
