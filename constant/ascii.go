package constant

import _ "embed"

// Banner is printed above the root command help.
//
//go:embed ascii.txt
var Banner string
