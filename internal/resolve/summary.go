package resolve

// Summary counts outcomes by status.
type Summary struct {
	Total           int `json:"total"`
	Found           int `json:"found"`
	WithFile        int `json:"with_file"`
	VersionMismatch int `json:"version_mismatch"`
	NotFound        int `json:"not_found"`
	Errors          int `json:"errors"`
}

// Summarize counts outcomes. Found includes the ones counted in WithFile.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status {
		case StatusFound:
			s.Found++
			if o.File != nil {
				s.WithFile++
			}
		case StatusVersionMismatch:
			s.VersionMismatch++
		case StatusNotFound:
			s.NotFound++
		case StatusError:
			s.Errors++
		}
	}
	return s
}
