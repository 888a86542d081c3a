package models

// Department groups administrative classes and subjects. References from
// other entities are by name string, mirroring the source data set.
type Department struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
