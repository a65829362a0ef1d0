package stdlib

import _ "embed"

//go:generate cp ../../PRIMER.md .

//go:embed PRIMER.md
var Primer string
