package cli

import (
	"slices"

	"github.com/urfave/cli/v3"
)

// joinFlags combines the flags of each configuration group
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	return slices.Concat(flags...)
}
