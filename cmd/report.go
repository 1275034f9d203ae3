package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
	dupfinder "github.com/syntoxine/doubloon/internal/dup-finder"
	"github.com/syntoxine/doubloon/internal/export"
	"github.com/syntoxine/doubloon/internal/logger"
	tablerender "github.com/syntoxine/doubloon/internal/table-render"
	treerender "github.com/syntoxine/doubloon/internal/tree-render"
)

// Report formats
const (
	OutputTable = "table"
	OutputPlain = "plain"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// NoDuplicatesMessage is printed when a scan finds no shared names
const NoDuplicatesMessage = "No duplicates found!"

func validateOutput(output string) error {
	switch output {
	case OutputTable, OutputPlain, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected table, plain, json or yaml)", output)
	}
}

// useColor reports whether styled output should reach out
func (a *app) useColor(out io.Writer) bool {
	return !a.flags.noColor && tablerender.ShouldUseColor(out)
}

// renderer returns a lipgloss renderer bound to out, stripped of color when needed
func (a *app) renderer(out io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	if !a.useColor(out) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func (a *app) printReport(out io.Writer, res *dupfinder.Result) error {
	switch a.flags.output {
	case OutputJSON:
		return outputJSON(out, res)
	case OutputYAML:
		return outputYAML(out, res)
	}

	if !res.HasDuplicates() {
		fmt.Fprintln(out, NoDuplicatesMessage)
	} else if a.flags.output == OutputPlain || a.flags.noColor {
		printStandardTable(out, res)
	} else {
		fmt.Fprintln(out, tablerender.RenderDuplicates(res.Rows(), a.renderer(out)))
	}

	if a.flags.summary {
		a.printSummary(out, res)
	}
	return nil
}

func (a *app) exportReport(out io.Writer, res *dupfinder.Result) error {
	wd, err := a.getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	path, written, err := export.Write(a.fsys, wd, res)
	if err != nil {
		return err
	}
	if !written {
		fmt.Fprintln(out, NoDuplicatesMessage)
	} else {
		a.log.Info("Exported duplicates", "file", path, "rows", len(res.Rows()))
	}

	if a.flags.summary {
		a.printSummary(out, res)
	}
	return nil
}

func (a *app) showTree(out io.Writer, root string, exclude []string) error {
	node, warnings, err := treerender.Build(a.fsys, root, exclude)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		logger.WarnStyled(a.log, "could not read entry, showing what is available", "path", warning.Path, "error", warning.Err)
	}

	fmt.Fprintln(out, treerender.Render(node, a.renderer(out), a.useColor(out)))
	return nil
}

// outputJSON prints the duplicate groups as JSON
func outputJSON(out io.Writer, res *dupfinder.Result) error {
	jsonData, err := json.MarshalIndent(res.Groups(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling to JSON: %w", err)
	}

	fmt.Fprintln(out, string(jsonData))
	return nil
}

// outputYAML prints the duplicate groups as YAML
func outputYAML(out io.Writer, res *dupfinder.Result) error {
	yamlData, err := yaml.Marshal(res.Groups())
	if err != nil {
		return fmt.Errorf("marshaling to YAML: %w", err)
	}

	fmt.Fprint(out, string(yamlData))
	return nil
}

// printStandardTable prints the duplicates as a plain text table without any styling
func printStandardTable(out io.Writer, res *dupfinder.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(out, tablerender.DuplicatesTitle)
	fmt.Fprintln(out)
	fmt.Fprintln(w, "Name\tPath")
	fmt.Fprintln(w, "----\t----")

	for _, row := range res.Rows() {
		fmt.Fprintf(w, "%s\t%s\n", row.Name, row.Path)
	}

	w.Flush()
}

// printSummary prints scan statistics with the key/value table renderer
func (a *app) printSummary(out io.Writer, res *dupfinder.Result) {
	data := map[string]interface{}{
		"files scanned":   res.FilesScanned,
		"duplicate names": len(res.Duplicates),
		"duplicate paths": res.DuplicatePaths(),
		"skipped entries": len(res.Skipped),
	}

	rows := tablerender.FormatKeyValueDataWithColor(data, tablerender.DefaultColorScheme(), a.useColor(out))

	style := tablerender.DefaultTableStyle(a.v.GetInt("maxTableWidth"))
	style.Title = "SUMMARY"

	fmt.Fprintln(out, tablerender.RenderTable([]string{"METRIC", "VALUE"}, rows, style))
}
