// File: models/record.go
package models

import "time"

// RecordStatus is the diagnostic classification of a liver record.
type RecordStatus string

const (
	StatusUnevaluated RecordStatus = "unevaluated"
	StatusPositive    RecordStatus = "positive"
	StatusNegative    RecordStatus = "negative"
)

// Valid reports whether s is one of the three known statuses.
func (s RecordStatus) Valid() bool {
	switch s {
	case StatusUnevaluated, StatusPositive, StatusNegative:
		return true
	}
	return false
}

// Gender codes as stored on a record: 1 = male, 2 = female.
const (
	GenderMale   = 1
	GenderFemale = 2
)

// LiverRecord is a single patient liver-function assessment.
type LiverRecord struct {
	ID       string       `bson:"id" json:"id"`         // Unique ID, assigned on creation
	Title    string       `bson:"title" json:"title"`   // Display title for the assessment
	AuthorID string       `bson:"aid" json:"aid"`       // Owner account; immutable after creation
	Status   RecordStatus `bson:"status" json:"status"` // unevaluated | positive | negative

	Age    float64 `bson:"age" json:"age"`
	Gender float64 `bson:"gender" json:"gender"` // 1 or 2

	// Lab measurements.
	TotalBilirubin            float64 `bson:"totalBilirubin" json:"totalBilirubin"`
	DirectBilirubin           float64 `bson:"directBilirubin" json:"directBilirubin"`
	AlkalinePhosphotase       float64 `bson:"alkalinePhosphotase" json:"alkalinePhosphotase"`
	AlamineAminotransferase   float64 `bson:"alamineAminotransferase" json:"alamineAminotransferase"`
	AspartateAminotransferase float64 `bson:"aspartateAminotransferase" json:"aspartateAminotransferase"`
	TotalProtiens             float64 `bson:"totalProtiens" json:"totalProtiens"`
	Albumin                   float64 `bson:"albumin" json:"albumin"`
	AlbuminAndGlobulinRatio   float64 `bson:"albuminAndGlobulinRatio" json:"albuminAndGlobulinRatio"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Features returns the clinical values in the order the classifier expects.
func (r *LiverRecord) Features() []float64 {
	return []float64{
		r.Age,
		r.Gender,
		r.TotalBilirubin,
		r.DirectBilirubin,
		r.AlkalinePhosphotase,
		r.AlamineAminotransferase,
		r.AspartateAminotransferase,
		r.TotalProtiens,
		r.Albumin,
		r.AlbuminAndGlobulinRatio,
	}
}
