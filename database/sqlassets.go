package sqlassets

import _ "embed"

//go:embed schema/workers.sql
var WorkersSQL string

//go:embed schema/workplaces.sql
var WorkplacesSQL string
