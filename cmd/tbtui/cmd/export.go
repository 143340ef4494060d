package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tberrors "github.com/Fjolfrin/tbtui/internal/errors"
	"github.com/Fjolfrin/tbtui/internal/export"
	"github.com/Fjolfrin/tbtui/internal/logging"
)

func newExportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "export",
		Short: "Write every plot to an HTML page",
		Long: `Write one interactive line chart per run and metric to a single
self-contained HTML page, with the first minimum and maximum marked.

Examples:
  tbtui export --out runs.html
  tbtui export --path ./experiments --out experiments.html --title "sweep 3"`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}
	c.Flags().String("out", "tbtui.html", "Output HTML file")
	c.Flags().String("title", "", "Page title (default: the history root)")
	c.Flags().String("height", export.DefaultOptions().Height, "CSS height of each chart")
	return c
}

func runExport(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	title, _ := cmd.Flags().GetString("title")
	height, _ := cmd.Flags().GetString("height")

	ctx, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := export.DefaultOptions()
	opts.Title = "tbtui: " + ctx.Config.Path
	if title != "" {
		opts.Title = title
	}
	opts.Height = height

	f, err := appFs.Create(out)
	if err != nil {
		return tberrors.WithSuggestion(tberrors.ErrExport,
			fmt.Sprintf("cannot create %s", out),
			"Check that the directory exists and is writable.").
			WithCause(err)
	}
	if err := export.Write(f, ctx.Runs, opts); err != nil {
		_ = f.Close()
		return tberrors.Wrap(err, tberrors.ErrExport, "export failed").WithDetails("file", out)
	}
	if err := f.Close(); err != nil {
		return tberrors.Wrap(err, tberrors.ErrExport, "export failed").WithDetails("file", out)
	}

	logging.Info("exported charts", "file", out, "runs", len(ctx.Runs))
	cmd.Printf("Wrote %s\n", out)
	return nil
}
