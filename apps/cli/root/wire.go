package root

import (
	"github.com/staffline/workforce/apps/cli/cmd/migrate"
	"github.com/staffline/workforce/apps/cli/cmd/seed"
)

func init() {
	Root().AddCommand(migrate.Command())
	Root().AddCommand(seed.Command())
}
