package main

import (
	"log"

	"github.com/xuri/excelize/v2"
)

// the sheet excelize creates for a new workbook
var defaultSheetName = "Sheet1"

// write each line into successive rows of the first column and save the workbook, replacing
// anything already at the path
func writeSpreadsheet(lines []string, sheetName string, path string) error {

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheetName); err != nil {
			return &PersistenceError{Path: path, Err: err}
		}
	}

	for ix, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, ix+1)
		if err != nil {
			return &PersistenceError{Path: path, Err: err}
		}
		if err = f.SetCellStr(sheetName, cell, line); err != nil {
			return &PersistenceError{Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	log.Printf("INFO: wrote %d rows to %s", len(lines), path)
	return nil
}

//
// end of file
//
