// Package styles renders the styled output of the tabdock CLI.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconInfo     = "\uf05a" // info
	IconTrash    = "\uf1f8" // trash
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconLogs     = "\uf0f6" // file-text
	IconLayout   = "\uf0db" // columns
	IconClock    = "\uf017" // clock
)
