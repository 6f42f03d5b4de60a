package export

import (
	"regexp"
	"strings"

	"lead-qualification-assistant/internal/model"
)

var (
	locationRe     = regexp.MustCompile(`\b(mumbai|pune|bangalore|delhi|hyderabad|chennai|kolkata|ahmedabad|kalyani nagar|baner|kharadi|whitefield|koramangala|gurgaon|noida)\b`)
	propertyTypeRe = regexp.MustCompile(`\b(1bhk|2bhk|3bhk|4bhk|flat|apartment|house|villa|plot|office|shop)\b`)
	budgetRe       = regexp.MustCompile(`₹?\s*(\d+(?:\.\d+)?)\s*(lakhs?|crores?|l|cr)\b`)
	timelineRe     = regexp.MustCompile(`\b(\d+)\s*(month|months|week|weeks|year|years)\b`)
)

var budgetUnits = map[string]string{
	"lakh":   "LAKH",
	"lakhs":  "LAKH",
	"crore":  "CRORE",
	"crores": "CRORE",
	"l":      "L",
	"cr":     "CR",
}

// ExtractMetadata scans the transcript for lead attributes. Non-empty values
// in provided win over extracted ones and unknown keys pass through unchanged.
func ExtractMetadata(messages []model.Message, provided map[string]string) map[string]string {
	out := make(map[string]string, len(provided)+5)
	for k, v := range provided {
		out[k] = v
	}

	contents := make([]string, len(messages))
	for i, m := range messages {
		contents[i] = strings.ToLower(m.Content)
	}
	all := strings.Join(contents, " ")

	if out[MetaLocation] == "" {
		if m := locationRe.FindString(all); m != "" {
			out[MetaLocation] = strings.ToUpper(m[:1]) + m[1:]
		}
	}

	if out[MetaPropertyType] == "" {
		if m := propertyTypeRe.FindString(all); m != "" {
			out[MetaPropertyType] = strings.ToUpper(m)
		}
	}

	if out[MetaBudget] == "" {
		if m := budgetRe.FindStringSubmatch(all); m != nil {
			out[MetaBudget] = "₹" + m[1] + budgetUnits[m[2]]
		}
	}

	if out[MetaTimeline] == "" {
		if m := timelineRe.FindStringSubmatch(all); m != nil {
			out[MetaTimeline] = m[1] + " " + m[2]
		}
	}

	if out[MetaPurpose] == "" {
		switch {
		case strings.Contains(all, "investment"):
			out[MetaPurpose] = "Investment"
		case strings.Contains(all, "personal"), strings.Contains(all, "family"):
			out[MetaPurpose] = "Personal use"
		case strings.Contains(all, "rental"), strings.Contains(all, "rent"):
			out[MetaPurpose] = "Rental"
		}
	}

	for _, k := range []string{MetaLocation, MetaPropertyType, MetaBudget, MetaTimeline, MetaPurpose} {
		if out[k] == "" {
			delete(out, k)
		}
	}

	return out
}
