package render

// Icon paths are drawn on a 24x24 grid.
var iconPaths = map[string]string{
	"commits":       "M12 7a5 5 0 0 1 4.9 4H22a1 1 0 1 1 0 2h-5.1a5 5 0 0 1-9.8 0H2a1 1 0 1 1 0-2h5.1A5 5 0 0 1 12 7Zm0 2a3 3 0 1 0 0 6 3 3 0 0 0 0-6Z",
	"prs":           "M6 3a3 3 0 0 1 1 5.83v6.34A3 3 0 1 1 5 15.17V8.83A3 3 0 0 1 6 3Zm0 14a1 1 0 1 0 0 2 1 1 0 0 0 0-2Zm0-12a1 1 0 1 0 0 2 1 1 0 0 0 0-2Zm7.3-1.7a1 1 0 0 1 1.4 1.4L14.4 5H16a3 3 0 0 1 3 3v7.17A3 3 0 1 1 17 15.17V8a1 1 0 0 0-1-1h-1.6l.3.3a1 1 0 0 1-1.4 1.4l-2-2a1 1 0 0 1 0-1.4l2-2ZM18 17a1 1 0 1 0 0 2 1 1 0 0 0 0-2Z",
	"issues":        "M12 2a10 10 0 1 1 0 20 10 10 0 0 1 0-20Zm0 2a8 8 0 1 0 0 16 8 8 0 0 0 0-16Zm0 6a2 2 0 1 1 0 4 2 2 0 0 1 0-4Z",
	"stars":         "M12 2.5a1 1 0 0 1 .9.56l2.6 5.27 5.82.85a1 1 0 0 1 .55 1.7l-4.21 4.1 1 5.8a1 1 0 0 1-1.46 1.05L12 19.1l-5.2 2.73a1 1 0 0 1-1.46-1.05l1-5.8-4.2-4.1a1 1 0 0 1 .55-1.7l5.82-.85 2.6-5.27A1 1 0 0 1 12 2.5Z",
	"forks":         "M6 3a3 3 0 0 1 1 5.83V10a1 1 0 0 0 1 1h8a1 1 0 0 0 1-1V8.83a3 3 0 1 1 2 0V10a3 3 0 0 1-3 3h-3v2.17a3 3 0 1 1-2 0V13H8a3 3 0 0 1-3-3V8.83A3 3 0 0 1 6 3Zm6 14a1 1 0 1 0 0 2 1 1 0 0 0 0-2ZM6 5a1 1 0 1 0 0 2 1 1 0 0 0 0-2Zm12 0a1 1 0 1 0 0 2 1 1 0 0 0 0-2Z",
	"reviews":       "M12 5c4.6 0 8.3 2.9 9.9 6.6a1 1 0 0 1 0 .8C20.3 16.1 16.6 19 12 19s-8.3-2.9-9.9-6.6a1 1 0 0 1 0-.8C3.7 7.9 7.4 5 12 5Zm0 2c-3.4 0-6.3 2-7.9 5 1.6 3 4.5 5 7.9 5s6.3-2 7.9-5c-1.6-3-4.5-5-7.9-5Zm0 2a3 3 0 1 1 0 6 3 3 0 0 1 0-6Z",
	"merged":        "M7 3a3 3 0 0 1 1.2 5.75A6 6 0 0 0 14 13h1.17a3 3 0 1 1 0 2H14a8 8 0 0 1-6-2.7v2.87a3 3 0 1 1-2 0V8.83A3 3 0 0 1 7 3Zm0 14a1 1 0 1 0 0 2 1 1 0 0 0 0-2Zm11-3a1 1 0 1 0 0 2 1 1 0 0 0 0-2ZM7 5a1 1 0 1 0 0 2 1 1 0 0 0 0-2Z",
	"discussions":   "M4 3h12a2 2 0 0 1 2 2v7a2 2 0 0 1-2 2H9l-4 3.5V14H4a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2Zm0 2v7h3v1.1L8.3 12H16V5H4Zm16 3a2 2 0 0 1 2 2v6a2 2 0 0 1-2 2h-1v3l-3.5-3H11a2 2 0 0 1-2-2h7a3 3 0 0 0 3-3V8h1Z",
	"streak":        "M13.5 1.5c.3 2.7-.7 4.5-2.2 6.2C9.8 9.4 8 11 8 14a4 4 0 0 0 8 0c0-1.2-.4-2.3-1-3.2 2 .9 3.5 3 3.5 5.7A6.5 6.5 0 0 1 12 23a6.5 6.5 0 0 1-6.5-6.5c0-4.3 2.7-6.6 4.6-8.6 1.4-1.5 2.6-3.1 3.4-6.4Z",
	"contributions": "M3 3h4v4H3V3Zm7 0h4v4h-4V3Zm7 0h4v4h-4V3ZM3 10h4v4H3v-4Zm7 0h4v4h-4v-4Zm7 0h4v4h-4v-4ZM3 17h4v4H3v-4Zm7 0h4v4h-4v-4Zm7 0h4v4h-4v-4Z",
}

// fallbackIcon is a filled circle used for names missing from the table
const fallbackIcon = "M12 4a8 8 0 1 1 0 16 8 8 0 0 1 0-16Z"

// IconPath returns the path data for name, or a generic dot when unknown
func IconPath(name string) string {
	if path, ok := iconPaths[name]; ok {
		return path
	}
	return fallbackIcon
}
