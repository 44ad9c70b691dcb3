package export

import (
	"bytes"
	"encoding/xml"
)

// buildSpreadsheet menghasilkan SpreadsheetML 2003 (XML) yang dibuka Excel
// dan LibreOffice. Format dipilih karena bisa ditulis deterministik tanpa
// kompresi zip; lihat DESIGN.md.
func buildSpreadsheet(sheetName string, header []string, rows [][]string) ([]byte, error) {
	var out bytes.Buffer
	out.WriteString(`<?xml version="1.0"?>` + "\n")
	out.WriteString(`<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet"` +
		` xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">` + "\n")
	out.WriteString(`<Worksheet ss:Name="` + xmlEscape(sheetName) + `">` + "\n<Table>\n")

	writeRow := func(cells []string) {
		out.WriteString("<Row>")
		for _, cell := range cells {
			out.WriteString(`<Cell><Data ss:Type="String">`)
			out.WriteString(xmlEscape(cell))
			out.WriteString(`</Data></Cell>`)
		}
		out.WriteString("</Row>\n")
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}

	out.WriteString("</Table>\n</Worksheet>\n</Workbook>\n")
	return out.Bytes(), nil
}

func xmlEscape(v string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(v))
	return buf.String()
}
