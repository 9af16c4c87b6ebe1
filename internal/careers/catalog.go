package careers

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strings"
)

//go:embed data/career_catalog.csv
var catalogCSV []byte

const catalogColumns = 11

// LoadEmbeddedCatalog parses the built-in career catalog.
// Row order in the CSV defines catalog order and therefore ranking tie-breaks.
func LoadEmbeddedCatalog() ([]Career, error) {
	return ParseCatalog(catalogCSV)
}

// ParseCatalog parses a career catalog in the seed CSV format:
// career_id,career_name,bucket,riasec_profile,primary_subjects,tags,
// min_qualification,top_courses,base_paragraph,microprojects,why_fit.
// Multi-valued columns are pipe-separated.
func ParseCatalog(raw []byte) ([]Career, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = catalogColumns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse career catalog: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyCatalog
	}

	careers := make([]Career, 0, len(records)-1)
	for i, rec := range records[1:] { // skip header
		career := Career{
			ID:               strings.TrimSpace(rec[0]),
			Name:             strings.TrimSpace(rec[1]),
			Bucket:           strings.TrimSpace(rec[2]),
			RiasecProfile:    strings.ToUpper(strings.TrimSpace(rec[3])),
			PrimarySubjects:  splitList(rec[4]),
			Tags:             splitList(rec[5]),
			MinQualification: strings.TrimSpace(rec[6]),
			TopCourses:       splitList(rec[7]),
			BaseParagraph:    strings.TrimSpace(rec[8]),
			Microprojects:    splitList(rec[9]),
			WhyFit:           strings.TrimSpace(rec[10]),
			Position:         i,
		}
		if career.ID == "" || career.Name == "" || career.Bucket == "" {
			return nil, fmt.Errorf("career catalog row %d: missing id, name or bucket", i+2)
		}
		careers = append(careers, career)
	}
	return careers, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
