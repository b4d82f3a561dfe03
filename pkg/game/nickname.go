package game

import "regexp"

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// Nickname strips unsupported characters and truncates long names. An empty
// result is returned as-is so callers can choose a fallback.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > 10 {
		nick = nick[:10]
	}

	return nick
}
