package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/slideshow/photo"
)

// Sheet names.
const (
	SheetSummary = "Summary"
	SheetSizes   = "Sizes"
	SheetScores  = "Scores"
	SheetSlides  = "Slides"
	SheetLoss    = "Loss"
)

// chart placement
const (
	chartWidth  = 720
	chartHeight = 320
)

// Workbook renders d into a new workbook. The caller owns the file and
// must Close it.
func Workbook(d Data) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("report: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("report: header style: %w", err)
	}

	w := writer{f: f, header: header}
	w.summary(d)
	w.sizes(d)
	w.scores(d)
	w.slides(d)
	w.loss(d)
	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("report: %w", w.err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

// WriteFile computes the report of slides and saves it at path.
func WriteFile(path string, slides []photo.Photo) error {
	f, err := Workbook(Compute(slides))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// Write computes the report of slides and streams the workbook to out.
func Write(out io.Writer, slides []photo.Photo) error {
	f, err := Workbook(Compute(slides))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}

// writer keeps the first error so the sheet builders read linearly.
type writer struct {
	f      *excelize.File
	header int
	err    error
}

func (w *writer) sheet(name string, headers ...string) {
	if w.err != nil {
		return
	}
	if name != SheetSummary {
		if _, w.err = w.f.NewSheet(name); w.err != nil {
			return
		}
	}
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	w.row(name, 1, row...)
	if w.err != nil || len(headers) == 0 {
		return
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	w.err = w.f.SetCellStyle(name, "A1", last, w.header)
	if w.err == nil {
		col, _ := excelize.ColumnNumberToName(len(headers))
		w.err = w.f.SetColWidth(name, "A", col, 14)
	}
}

func (w *writer) row(sheet string, n int, values ...any) {
	if w.err != nil {
		return
	}
	cell, _ := excelize.CoordinatesToCellName(1, n)
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

// chart adds a chart at anchor whose series are the given columns of rows
// 2..last, with column A as categories.
func (w *writer) chart(sheet, anchor, title, xTitle, yTitle string, kind excelize.ChartType, last int, cols ...string) {
	if w.err != nil || last < 2 {
		return
	}
	series := make([]excelize.ChartSeries, len(cols))
	for i, c := range cols {
		series[i] = excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, c),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, c, c, last),
		}
	}
	w.err = w.f.AddChart(sheet, anchor, &excelize.Chart{
		Type:      kind,
		Series:    series,
		Title:     []excelize.RichTextRun{{Text: title}},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: xTitle}}},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: yTitle}}},
		Dimension: excelize.ChartDimension{Width: chartWidth, Height: chartHeight},
	})
}

func (w *writer) summary(d Data) {
	w.sheet(SheetSummary, "Metric", "Value")
	w.row(SheetSummary, 2, "slides", d.Slides)
	w.row(SheetSummary, 3, "score", d.Score)
	w.row(SheetSummary, 4, "max score", d.MaxScore)
	w.row(SheetSummary, 5, "lost score", d.MaxScore-d.Score)
	if d.MaxScore > 0 {
		w.row(SheetSummary, 6, "ratio", float64(d.Score)/float64(d.MaxScore))
	}
}

func (w *writer) sizes(d Data) {
	w.sheet(SheetSizes, "tags", "horizontal", "combined")
	for i, b := range d.Sizes {
		w.row(SheetSizes, i+2, b.Tags, b.Horizontal, b.Combined)
	}
	w.chart(SheetSizes, "E2", "Slide size distribution", "number of tags", "number of slides",
		excelize.Col, len(d.Sizes)+1, "B", "C")
}

func (w *writer) scores(d Data) {
	w.sheet(SheetScores, "slide", "score", "max score")
	for i, j := range d.Junctions {
		w.row(SheetScores, i+2, j.Slide, j.Score, j.MaxScore)
	}
	w.chart(SheetScores, "E2", "Score", "slide", "score",
		excelize.Line, len(d.Junctions)+1, "B", "C")
}

func (w *writer) slides(d Data) {
	w.sheet(SheetSlides, "slide", "horizontal", "combined")
	for i, c := range d.Counts {
		w.row(SheetSlides, i+2, i, c.Horizontal, c.Combined)
	}
	w.chart(SheetSlides, "E2", "Number of slides", "slide", "number of slides",
		excelize.Line, len(d.Counts)+1, "B", "C")
}

func (w *writer) loss(d Data) {
	w.sheet(SheetLoss, "slide", "horizontal", "combined", "total")
	for i, l := range d.Loss {
		w.row(SheetLoss, i+2, i, l.Horizontal, l.Combined, l.Total())
	}
	w.chart(SheetLoss, "F2", "Loss", "slide", "loss",
		excelize.Line, len(d.Loss)+1, "B", "C", "D")
}
