package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/quaverlabs/brainzgap"
	"github.com/quaverlabs/brainzgap/internal/cmd/output"
	"github.com/quaverlabs/brainzgap/internal/report"
	"github.com/quaverlabs/brainzgap/pkg/constants"
	"github.com/quaverlabs/brainzgap/pkg/scan"
)

// NewScanCommand creates the scan command: full run from category
// enumeration to the written report.
func (a *App) NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a category and write the missing-identifier worklist",
		Long: `Scan enumerates the category members, resolves each member's Wikidata
item, and checks it for the MusicBrainz artist property. Members whose
item lacks the property (or who have no item at all) land in a
self-contained HTML worklist written to the working directory.

Progress is reported on stderr; a summary and a preview of the first
few artists are printed to stdout after the report is written.`,
		RunE: a.runScan,
	}

	cmd.Flags().StringP("category", "c", "", "category to scan, without namespace prefix (default "+constants.DefaultCategory+")")
	cmd.Flags().StringP("language", "l", "", "Wikipedia language edition (default "+constants.DefaultLanguage+")")
	cmd.Flags().String("property", "", "Wikidata property to check for (default "+constants.MusicBrainzArtistProperty+")")
	cmd.Flags().Duration("pause", 0, "minimum interval between upstream lookups; 0 disables pacing")
	cmd.Flags().String("output", "", "report file path (default <category>"+constants.ReportFileSuffix+")")
	cmd.Flags().Bool("markdown", false, "also write a Markdown worklist beside the HTML report")

	return cmd
}

// runScan executes the scan command.
func (a *App) runScan(cmd *cobra.Command, _ []string) error {
	a.applyScanFlags(cmd)

	scanner, err := a.Scanner(brainzgap.WithProgress(progressPrinter()))
	if err != nil {
		return err
	}

	result, err := scanner.Scan(cmd.Context())
	if err != nil {
		return err
	}

	htmlPath := a.config.OutputPath
	if htmlPath == "" {
		htmlPath = report.Filename(result.Category)
	}

	page, err := report.HTML(result)
	if err != nil {
		return err
	}
	if err := report.WriteFile(htmlPath, page); err != nil {
		return err
	}
	a.logger.Info().Str("path", htmlPath).Int("artists", len(result.Artists)).Msg("Report written")

	if a.config.Markdown {
		worklist, err := report.Markdown(result)
		if err != nil {
			return err
		}
		mdPath := report.MarkdownFilename(result.Category)
		if err := report.WriteFile(mdPath, worklist); err != nil {
			return err
		}
		a.logger.Info().Str("path", mdPath).Msg("Markdown worklist written")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Summary())

	preview := result.Artists
	if len(preview) > constants.PreviewCount {
		preview = preview[:constants.PreviewCount]
	}
	if len(preview) == 0 {
		return nil
	}
	return output.FormatArtists(out, preview, output.DetectFormat(a.config.Format))
}

// applyScanFlags folds the scan command's flags into the config.
// Only flags the user actually set override file and env values.
func (a *App) applyScanFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("category") {
		a.config.Category = mustGetString(cmd, "category")
	}
	if flags.Changed("language") {
		a.config.Language = mustGetString(cmd, "language")
	}
	if flags.Changed("property") {
		a.config.Property = mustGetString(cmd, "property")
	}
	if flags.Changed("pause") {
		pause, err := flags.GetDuration("pause")
		if err != nil {
			panic("programming error: failed to get flag pause: " + err.Error())
		}
		a.config.Pause = pause
	}
	if flags.Changed("output") {
		a.config.OutputPath = mustGetString(cmd, "output")
	}
	if flags.Changed("markdown") {
		markdown, err := flags.GetBool("markdown")
		if err != nil {
			panic("programming error: failed to get flag markdown: " + err.Error())
		}
		a.config.Markdown = markdown
	}
}

// NewMembersCommand creates the members command: category enumeration
// only, without the Wikidata stage.
func (a *App) NewMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "List the article members of a category",
		Long: `Members enumerates the main-namespace members of the category and
prints their titles and page IDs without checking Wikidata. Useful for
sizing a scan before running it.`,
		RunE: a.runMembers,
	}

	cmd.Flags().StringP("category", "c", "", "category to list, without namespace prefix (default "+constants.DefaultCategory+")")
	cmd.Flags().StringP("language", "l", "", "Wikipedia language edition (default "+constants.DefaultLanguage+")")

	return cmd
}

// runMembers executes the members command.
func (a *App) runMembers(cmd *cobra.Command, _ []string) error {
	a.applyScanFlags(cmd)

	scanner, err := a.Scanner()
	if err != nil {
		return err
	}

	members, err := scanner.Members(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d members in %s\n", len(members), a.config.Category)
	return output.FormatMembers(cmd.OutOrStdout(), members, output.DetectFormat(a.config.Format))
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "brainzgap version %s\n", a.version)
			fmt.Fprintf(out, "commit: %s\n", a.commit)
			fmt.Fprintf(out, "built: %s\n", a.date)
			fmt.Fprintf(out, "built by: %s\n", a.builtBy)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// progressPrinter returns a callback that reports pipeline progress on
// stderr in "done/total (pp.p%)" form.
func progressPrinter() scan.ProgressFunc {
	return func(done, total int) {
		if total == 0 {
			return
		}
		fmt.Fprintf(os.Stderr, "%d/%d (%.1f%%)\n", done, total, float64(done)/float64(total)*100)
	}
}
