package cli

import (
	"context"
	"io"
)

func RunWithWriters(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	return newApp(stdout, stderr).Run(ctx, args)
}
