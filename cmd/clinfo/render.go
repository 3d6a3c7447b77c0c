package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type renderer struct {
	w      io.Writer
	format string
	fail   func(a ...interface{}) string
	title  func(a ...interface{}) string
}

// newRenderer writes to w in format. With colorize false every highlight
// is a no-op, whatever the terminal supports.
func newRenderer(w io.Writer, format string, colorize bool) *renderer {
	failColor := color.New(color.FgRed)
	titleColor := color.New(color.FgCyan, color.Bold)
	if colorize {
		failColor.EnableColor()
		titleColor.EnableColor()
	} else {
		failColor.DisableColor()
		titleColor.DisableColor()
	}
	return &renderer{
		w:      w,
		format: format,
		fail:   failColor.SprintFunc(),
		title:  titleColor.SprintFunc(),
	}
}

func (r *renderer) writeJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.w, "%s\n", out)
	return err
}

func (r *renderer) table(header []string, rows [][]string) {
	t := tablewriter.NewWriter(r.w)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.AppendBulk(rows)
	t.Render()
}

func (r *renderer) cell(p Param) string {
	if p.Failed() {
		return r.fail(p.Error)
	}
	return p.Value
}

func (r *renderer) paramRows(params []Param) [][]string {
	rows := make([][]string, len(params))
	for i, p := range params {
		rows[i] = []string{p.Name, r.cell(p)}
	}
	return rows
}

func (r *renderer) platforms(reports []PlatformReport) error {
	if r.format == formatJSON {
		return r.writeJSON(reports)
	}
	if len(reports) == 0 {
		_, err := fmt.Fprintln(r.w, "no OpenCL platforms found")
		return err
	}
	for _, p := range reports {
		fmt.Fprintln(r.w, r.title(fmt.Sprintf("Platform #%d", p.Index)))
		r.table([]string{"Parameter", "Value"}, r.paramRows(p.Params))

		rows := make([][]string, len(p.Devices))
		for i, d := range p.Devices {
			rows[i] = []string{strconv.Itoa(d.Index), d.Name, d.Vendor}
		}
		r.table([]string{"Device", "Name", "Vendor"}, rows)
	}
	return nil
}

func (r *renderer) kernels(reports []KernelReport) error {
	if r.format == formatJSON {
		return r.writeJSON(reports)
	}
	for _, k := range reports {
		fmt.Fprintln(r.w, r.title("Kernel "+k.Name))
		r.table([]string{"Parameter", "Value"}, r.paramRows(k.Info))

		var rows [][]string
		for _, arg := range k.Args {
			for _, p := range arg.Params {
				rows = append(rows, []string{strconv.FormatUint(uint64(arg.Index), 10), p.Name, r.cell(p)})
			}
		}
		if len(rows) > 0 {
			r.table([]string{"Arg", "Parameter", "Value"}, rows)
		}

		r.table([]string{"Work group", "Value"}, r.paramRows(k.WorkGroup))
	}
	return nil
}

func (r *renderer) buildLog(e *BuildError) {
	fmt.Fprintln(r.w, r.fail(e.Error()))
	if e.Log != "" {
		fmt.Fprintln(r.w, e.Log)
	}
}
