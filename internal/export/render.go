package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	summarySheet  = "Summary"
	messagesSheet = "Messages"
	notAvailable  = "N/A"
)

// ParseFormat maps a query value to a Format. An empty value means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Filename returns lead_conversation_<leadId>_<YYYY-MM-DD>.<ext>.
func Filename(data Data, format Format, now time.Time) string {
	return fmt.Sprintf("lead_conversation_%s_%s.%s", data.LeadID, now.UTC().Format("2006-01-02"), format)
}

// Render encodes data in the requested format.
func Render(data Data, format Format, now time.Time) (File, error) {
	var (
		body        []byte
		contentType string
		err         error
	)

	switch format {
	case FormatJSON:
		body, err = ToJSON(data)
		contentType = contentTypeJSON
	case FormatCSV:
		body = []byte(ToCSV(data))
		contentType = contentTypeCSV
	case FormatXLSX:
		body, err = ToXLSX(data)
		contentType = contentTypeXLSX
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return File{}, err
	}

	return File{
		Name:        Filename(data, format, now),
		ContentType: contentType,
		Body:        body,
	}, nil
}

// ToJSON pretty prints data with a two-space indent.
func ToJSON(data Data) ([]byte, error) {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return body, nil
}

// ToCSV renders the key/value summary, a blank line and one row per message.
// Every field is quoted.
func ToCSV(data Data) string {
	rows := summaryRows(data)
	rows = append(rows, nil, messageHeader())
	rows = append(rows, messageRows(data)...)

	lines := make([]string, len(rows))
	for i, row := range rows {
		fields := make([]string, len(row))
		for j, field := range row {
			fields[j] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		lines[i] = strings.Join(fields, ",")
	}
	return strings.Join(lines, "\n")
}

// ToXLSX writes the summary and the messages to separate sheets.
func ToXLSX(data Data) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	if _, err := f.NewSheet(messagesSheet); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	if err := writeRows(f, summarySheet, summaryRows(data)); err != nil {
		return nil, err
	}
	rows := append([][]string{messageHeader()}, messageRows(data)...)
	if err := writeRows(f, messagesSheet, rows); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(summarySheet, "A", "A", 24)
	_ = f.SetColWidth(summarySheet, "B", "B", 60)
	_ = f.SetColWidth(messagesSheet, "A", "B", 28)
	_ = f.SetColWidth(messagesSheet, "C", "C", 80)
	_ = f.SetColWidth(messagesSheet, "D", "D", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRenderFailed, err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("%w: %w", ErrRenderFailed, err)
		}
	}
	return nil
}

func summaryRows(data Data) [][]string {
	meta := data.ExtractedMetadata
	return [][]string{
		{"Field", "Value"},
		{"Lead ID", data.LeadID},
		{"Lead Name", data.LeadInfo.Name},
		{"Phone", orNA(data.LeadInfo.Phone)},
		{"Email", orNA(data.LeadInfo.Email)},
		{"Classification", data.Classification},
		{"Classification Details", data.ClassificationDetails},
		{"Duration (seconds)", strconv.Itoa(data.Analytics.Duration)},
		{"Message Count", strconv.Itoa(data.Analytics.MessageCount)},
		{"Started At", data.Analytics.StartedAt},
		{"Ended At", data.Analytics.EndedAt},
		{"Location", orNA(meta[MetaLocation])},
		{"Property Type", orNA(meta[MetaPropertyType])},
		{"Budget", orNA(meta[MetaBudget])},
		{"Timeline", orNA(meta[MetaTimeline])},
		{"Purpose", orNA(meta[MetaPurpose])},
	}
}

func messageHeader() []string {
	return []string{"Message ID", "Sender", "Content", "Timestamp"}
}

func messageRows(data Data) [][]string {
	rows := make([][]string, len(data.Messages))
	for i, m := range data.Messages {
		rows[i] = []string{m.ID, m.Sender, m.Content, m.Timestamp}
	}
	return rows
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
