package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"journey-report-service/internal/model"
)

const (
	lastCol      = 9
	firstBlank   = 1
	lastBlank    = 5
	businessCol  = 6
	totalDistCol = 9

	timeLayout   = "15:04:05"
	periodLayout = "02 January 2006"
)

var columns = []string{
	"Start Time",
	"Start ODO",
	"Start Location",
	"End Time",
	"End ODO",
	"End Location",
	"Business",
	"Driving",
	"Stopped",
	"Driver",
}

var totalLabels = []string{"Business", "Driving", "Stopped", "Total distance"}

var columnWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "A", 12},
	{"B", "B", 10},
	{"C", "C", 35},
	{"D", "D", 12},
	{"E", "E", 10},
	{"F", "F", 35},
	{"G", "I", 10},
	{"J", "J", 20},
}

type workbook struct {
	file   *excelize.File
	styles styles
	sheets int
}

func newWorkbook() (*workbook, error) {
	file := excelize.NewFile()
	st, err := newStyles(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("register styles: %w", err)
	}
	return &workbook{file: file, styles: st}, nil
}

func (w *workbook) addSheet(name string) error {
	defer func() { w.sheets++ }()
	if w.sheets == 0 {
		return w.file.SetSheetName(w.file.GetSheetName(0), name)
	}
	_, err := w.file.NewSheet(name)
	return err
}

func (w *workbook) writeMonth(month MonthGroup) error {
	name := month.Label()
	if err := w.addSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	sw := &sheetWriter{file: w.file, sheet: name, styles: w.styles, row: 1}
	for _, vehicle := range month.Vehicles {
		sw.writeVehicle(vehicle)
	}
	sw.writeTotalRow("Month Total", month.Totals)
	sw.setColumnWidths()

	if sw.err != nil {
		return fmt.Errorf("write sheet %q: %w", name, sw.err)
	}
	return nil
}

func (w *workbook) bytes() ([]byte, error) {
	w.file.SetActiveSheet(0)
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *workbook) close() error {
	return w.file.Close()
}

// sheetWriter keeps the current row and the first error; calls after an
// error are no-ops.
type sheetWriter struct {
	file   *excelize.File
	sheet  string
	styles styles
	row    int
	err    error
}

func (s *sheetWriter) writeVehicle(vehicle VehicleGroup) {
	s.mergedRow(fmt.Sprintf("Tracker Name: %s", vehicle.Registration))
	s.row++
	s.mergedRow("")
	s.row += 2

	for _, day := range vehicle.Days {
		s.writeDay(day)
	}

	s.writeTotalRow("Total", vehicle.Totals)
}

func (s *sheetWriter) writeDay(day DayGroup) {
	label := day.Date.Format(periodLayout)
	s.mergedRow(fmt.Sprintf("Period: %s 00:00 -> %s 23:59", label, label))
	s.row += 2

	s.writeRow(stringsToCells(columns), s.styles.header)
	s.row++

	for _, journey := range day.Journeys {
		s.writeRow(journeyCells(journey), s.styles.text)
		s.row++
	}

	s.setValue(0, "Sub Total", s.styles.subtotal)
	s.styleRange(firstBlank, lastBlank, s.styles.subtotal)
	s.writeSums(sumColumns(day.Totals), s.styles.subtotalNumber)
	s.styleRange(totalDistCol, totalDistCol, s.styles.subtotal)
	s.row += 2

	s.setValue(0, "Total", s.styles.title)
	s.styleRange(firstBlank, lastBlank, s.styles.title)
	for i, label := range totalLabels {
		s.setValue(businessCol+i, label, s.styles.header)
	}
	s.row++

	s.setValue(0, len(day.Journeys), s.styles.total)
	s.styleRange(firstBlank, lastBlank, s.styles.total)
	s.writeSums(sumColumns(day.Totals), s.styles.total)
	s.setValue(totalDistCol, day.Totals.Business, s.styles.total)
	s.row += 2
}

func (s *sheetWriter) writeTotalRow(label string, totals Totals) {
	s.setValue(0, label, s.styles.total)
	s.styleRange(firstBlank, lastBlank, s.styles.total)
	s.writeSums(sumColumns(totals), s.styles.total)
	s.styleRange(totalDistCol, totalDistCol, s.styles.total)
	s.row += 2
}

func (s *sheetWriter) writeSums(values [3]float64, style int) {
	for i, v := range values {
		s.setValue(businessCol+i, v, style)
	}
}

func (s *sheetWriter) mergedRow(text string) {
	if s.err != nil {
		return
	}
	first, last := cellName(0, s.row), cellName(lastCol, s.row)
	if s.err = s.file.MergeCell(s.sheet, first, last); s.err != nil {
		return
	}
	if s.err = s.file.SetCellValue(s.sheet, first, text); s.err != nil {
		return
	}
	s.err = s.file.SetCellStyle(s.sheet, first, last, s.styles.title)
}

func (s *sheetWriter) writeRow(values []interface{}, style int) {
	if s.err != nil {
		return
	}
	first := cellName(0, s.row)
	if s.err = s.file.SetSheetRow(s.sheet, first, &values); s.err != nil {
		return
	}
	s.err = s.file.SetCellStyle(s.sheet, first, cellName(len(values)-1, s.row), style)
}

func (s *sheetWriter) setValue(col int, value interface{}, style int) {
	if s.err != nil {
		return
	}
	cell := cellName(col, s.row)
	if s.err = s.file.SetCellValue(s.sheet, cell, value); s.err != nil {
		return
	}
	s.err = s.file.SetCellStyle(s.sheet, cell, cell, style)
}

func (s *sheetWriter) styleRange(from, to, style int) {
	if s.err != nil {
		return
	}
	s.err = s.file.SetCellStyle(s.sheet, cellName(from, s.row), cellName(to, s.row), style)
}

func (s *sheetWriter) setColumnWidths() {
	for _, cw := range columnWidths {
		if s.err != nil {
			return
		}
		s.err = s.file.SetColWidth(s.sheet, cw.from, cw.to, cw.width)
	}
}

func sumColumns(t Totals) [3]float64 {
	return [3]float64{t.Business, t.Driving, t.Stopped}
}

func journeyCells(j model.JourneyRecord) []interface{} {
	return []interface{}{
		formatClock(j.IgnitionStartTime),
		derefString(j.OdoStartReading),
		j.StartLocation,
		formatClock(j.IgnitionEndTime),
		derefString(j.OdoEndReading),
		j.EndLocation,
		formatNumber(j.DistanceTravelled),
		formatNumber(j.DrivingDuration),
		formatNumber(j.StopDuration),
		j.Name,
	}
}

func stringsToCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// cellName converts a zero-based column and a one-based row.
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
