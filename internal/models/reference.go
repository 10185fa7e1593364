package models

type ReferenceData struct {
	Departments []Department `json:"departments"`
}

type Department struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
