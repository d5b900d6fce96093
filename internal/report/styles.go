package report

import "github.com/xuri/excelize/v2"

const (
	grayFill   = "#D9D9D9"
	headerFill = "#DCE6F1"
	totalFill  = "#FF0000"
	totalFont  = "#FFFFFF"

	// built-in "0.00"
	twoDecimals = 2
)

type styles struct {
	title          int
	header         int
	text           int
	subtotal       int
	subtotalNumber int
	total          int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#000000", Style: 1},
		{Type: "top", Color: "#000000", Style: 1},
		{Type: "right", Color: "#000000", Style: 1},
		{Type: "bottom", Color: "#000000", Style: 1},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func newStyles(file *excelize.File) (styles, error) {
	var firstErr error
	add := func(style *excelize.Style) int {
		if firstErr != nil {
			return 0
		}
		id, err := file.NewStyle(style)
		if err != nil {
			firstErr = err
		}
		return id
	}

	s := styles{
		title: add(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "left"},
			Fill:      solidFill(grayFill),
		}),
		header: add(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Fill:      solidFill(headerFill),
			Border:    thinBorder(),
		}),
		text: add(&excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			Border:    thinBorder(),
		}),
		subtotal: add(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "right"},
			Border:    thinBorder(),
		}),
		subtotalNumber: add(&excelize.Style{
			NumFmt:    twoDecimals,
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "right"},
			Border:    thinBorder(),
		}),
		total: add(&excelize.Style{
			NumFmt:    twoDecimals,
			Font:      &excelize.Font{Bold: true, Color: totalFont},
			Alignment: &excelize.Alignment{Horizontal: "right"},
			Fill:      solidFill(totalFill),
			Border:    thinBorder(),
		}),
	}
	if firstErr != nil {
		return styles{}, firstErr
	}
	return s, nil
}
