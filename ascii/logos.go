// Package ascii provides ASCII art logos for the operating system families
// sysinfo can detect. Logos are plain text; the display package colors them.
package ascii

import "nanofetch/sysinfo"

// GetLogo returns the ASCII art logo for an OS family.
//
// Parameters:
//   - family: One of sysinfo.FamilyLinux, sysinfo.FamilyBSD or anything else
//   - compact: Return the small seven-line logo regardless of family
//
// Returns:
//   - A slice of strings, where each string represents one line of ASCII art
func GetLogo(family string, compact bool) []string {
	if compact {
		return getCompactLogo()
	}
	switch family {
	case sysinfo.FamilyLinux:
		return getLinuxLogo()
	case sysinfo.FamilyBSD:
		return getBSDLogo()
	default:
		return getGenericLogo()
	}
}

// getLinuxLogo returns Tux.
func getLinuxLogo() []string {
	return []string{
		`        .--.       `,
		`       |o_o |      `,
		`       |:_/ |      `,
		`      //   \ \     `,
		`     (|     | )    `,
		`    /'\_   _/'\    `,
		`    \___)=(___/    `,
	}
}

// getBSDLogo returns the BSD daemon's head.
func getBSDLogo() []string {
	return []string{
		`   ,        ,      `,
		`  /(        )\     `,
		`  \ \___   / |     `,
		`  /- _  '-/  '     `,
		` (/\/ \ \   /\     `,
		` / /   | '    \    `,
		` O O   ) /    |    `,
		` '-^--''<     '    `,
		`(_.)  _  )   /     `,
		` '.___/'    /      `,
	}
}

// getGenericLogo is used when the family is unknown.
func getGenericLogo() []string {
	return []string{
		` ___________ `,
		`|  _______  |`,
		`| |       | |`,
		`| |  >_   | |`,
		`| |_______| |`,
		`|___________|`,
		`   _|___|_   `,
	}
}

// getCompactLogo returns a small block-character snowflake.
func getCompactLogo() []string {
	return []string{
		`  ▗▄   ▗▄ ▄▖ `,
		` ▄▄🬸█▄▄▄🬸█▛ ▃`,
		`   ▟▛    ▜▃▟🬕`,
		`🬋🬋🬫█      █🬛🬋🬋`,
		` 🬷▛🮃▙    ▟▛  `,
		` 🮃 ▟█🬴▀▀▀█🬴▀▀ `,
		`  ▝▀ ▀▘   ▀▘ `,
	}
}
