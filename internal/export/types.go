package export

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Metadata keys filled by ExtractMetadata.
const (
	MetaLocation     = "location"
	MetaPropertyType = "propertyType"
	MetaBudget       = "budget"
	MetaTimeline     = "timeline"
	MetaPurpose      = "purpose"
)

// Data is the self-contained record of one lead conversation.
type Data struct {
	LeadID                string            `json:"leadId"`
	LeadInfo              LeadInfo          `json:"leadInfo"`
	Messages              []Message         `json:"messages"`
	Classification        string            `json:"classification"`
	ClassificationDetails string            `json:"classificationDetails"`
	ExtractedMetadata     map[string]string `json:"extractedMetadata"`
	Analytics             Analytics         `json:"analytics"`
}

type LeadInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type Analytics struct {
	Duration     int    `json:"duration"`
	MessageCount int    `json:"messageCount"`
	StartedAt    string `json:"startedAt"`
	EndedAt      string `json:"endedAt"`
}

// File is a rendered export ready for download.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}
