package models

// Subject describes a course in the catalog. Teachers is the canonical
// many-to-many shape; prerequisite codes are informational and unvalidated.
type Subject struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Credits       int      `json:"credits"`
	Department    string   `json:"department"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites"`
	Teachers      []string `json:"teachers"`
}
