package careers

// Career is an immutable catalog record describing one recommendable career.
// The catalog is loaded once at startup and shared read-only across requests.
type Career struct {
	ID               string
	Name             string
	Bucket           string
	RiasecProfile    string
	PrimarySubjects  []string
	Tags             []string
	MinQualification string
	TopCourses       []string
	BaseParagraph    string
	Microprojects    []string
	WhyFit           string
	// Position is the catalog load order; it is the tie-break key for
	// ranking, so it must be stable across process restarts.
	Position int
}

// HasTag reports whether the career carries the given tag.
func (c Career) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
