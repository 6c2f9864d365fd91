package export

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/khorevkp/KK-Tools/internal/fileutils"
)

// DefaultMaxColumnWidth caps the auto-sized column width.
const DefaultMaxColumnWidth = 25

const (
	numberFormat = "#,##0.00"
	dateFormat   = "dd/mm/yyyy"
)

// WriteXLSX writes a table to a spreadsheet: auto-filter on the header row,
// numeric columns formatted to two decimals, date columns as dd/mm/yyyy and
// column widths auto-sized up to maxWidth. rows must be a slice of structs
// carrying csv tags; the tags become the header row.
func WriteXLSX[TRow any](rows []TRow, xlsxFile, sheetName string, maxWidth float64) error {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxColumnWidth
	}
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(xlsxFile)); err != nil {
		return err
	}

	rowType := reflect.TypeOf((*TRow)(nil)).Elem()
	if rowType.Kind() != reflect.Struct {
		return fmt.Errorf("rows must be structs, got %s", rowType.Kind())
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close spreadsheet")
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headers := columnHeaders(rowType)
	widths := make([]float64, len(headers))
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		widths[col] = float64(len(header)) + 1
	}

	for i := range rows {
		value := reflect.ValueOf(rows[i])
		for col := 0; col < rowType.NumField(); col++ {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			field := value.Field(col)
			var display string
			if field.Type() == decimalType {
				// Written as raw numeric text so the stored value stays
				// exact beyond float64 precision.
				d := field.Interface().(decimal.Decimal)
				if err := f.SetCellDefault(sheetName, cell, d.String()); err != nil {
					return err
				}
				display = d.StringFixed(2)
			} else {
				cellValue, text := cellContent(field)
				if err := f.SetCellValue(sheetName, cell, cellValue); err != nil {
					return err
				}
				display = text
			}
			if w := float64(len(display)) + 1; w > widths[col] {
				widths[col] = w
			}
		}
	}

	numStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(numberFormat)})
	if err != nil {
		return err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(dateFormat)})
	if err != nil {
		return err
	}

	for col := 0; col < rowType.NumField(); col++ {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if widths[col] > maxWidth {
			widths[col] = maxWidth
		}
		if err := f.SetColWidth(sheetName, name, name, widths[col]); err != nil {
			return err
		}
		switch {
		case isNumericField(rowType.Field(col).Type):
			err = f.SetColStyle(sheetName, name, numStyle)
		case isDateField(rowType.Field(col).Type):
			err = f.SetColStyle(sheetName, name, dateStyle)
		}
		if err != nil {
			return err
		}
	}

	lastCell, _ := excelize.CoordinatesToCellName(len(headers), len(rows)+1)
	if err := f.AutoFilter(sheetName, "A1:"+lastCell, nil); err != nil {
		return err
	}

	if err := f.SaveAs(xlsxFile); err != nil {
		return fmt.Errorf("error saving spreadsheet: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  xlsxFile,
		"sheet": sheetName,
		"count": len(rows),
	}).Info("Wrote table to spreadsheet")
	return nil
}

func columnHeaders(rowType reflect.Type) []string {
	headers := make([]string, rowType.NumField())
	for i := 0; i < rowType.NumField(); i++ {
		field := rowType.Field(i)
		header := field.Tag.Get("csv")
		if header == "" || header == "-" {
			header = field.Name
		}
		headers[i] = strings.Split(header, ",")[0]
	}
	return headers
}

var decimalType = reflect.TypeOf(decimal.Decimal{})
var timeType = reflect.TypeOf(time.Time{})

func isNumericField(t reflect.Type) bool {
	if t == decimalType {
		return true
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isDateField(t reflect.Type) bool {
	return t == timeType
}

// cellContent converts a non-decimal struct field into a spreadsheet value
// and its display text used for width sizing.
func cellContent(v reflect.Value) (interface{}, string) {
	if v.Type() == timeType {
		t := v.Interface().(time.Time)
		return t, t.Format("02/01/2006")
	}
	value := v.Interface()
	return value, fmt.Sprintf("%v", value)
}

func strPtr(s string) *string {
	return &s
}
