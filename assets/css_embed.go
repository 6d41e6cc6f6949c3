package assets

import _ "embed"

// DefaultStylesheetName is the name floating windows and hosts register the
// bundled stylesheet under.
const DefaultStylesheetName = "tabdock.css"

// DefaultStylesheet is the bundled stylesheet for tab panes, drop zones and
// the drop hint path.
//
//go:embed css/tabdock.css
var DefaultStylesheet string
