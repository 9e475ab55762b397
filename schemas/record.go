// File: schemas/record.go
package schemas

import (
	"strings"

	"github.com/funabab/ilivercare-app/apperr"
	"github.com/funabab/ilivercare-app/models"
)

// ClinicalValues holds the ten numeric features shared by every record
// payload, in their wire representation.
type ClinicalValues struct {
	Age                       Number `json:"age" validate:"required,number"`
	Gender                    Number `json:"gender" validate:"required,number"`
	TotalBilirubin            Number `json:"totalBilirubin" validate:"required,number"`
	DirectBilirubin           Number `json:"directBilirubin" validate:"required,number"`
	AlkalinePhosphotase       Number `json:"alkalinePhosphotase" validate:"required,number"`
	AlamineAminotransferase   Number `json:"alamineAminotransferase" validate:"required,number"`
	AspartateAminotransferase Number `json:"aspartateAminotransferase" validate:"required,number"`
	TotalProtiens             Number `json:"totalProtiens" validate:"required,number"`
	Albumin                   Number `json:"albumin" validate:"required,number"`
	AlbuminAndGlobulinRatio   Number `json:"albuminAndGlobulinRatio" validate:"required,number"`
}

// Features returns the values in the order the classifier expects:
// age, gender, total bilirubin, direct bilirubin, alkaline phosphotase,
// alamine aminotransferase, aspartate aminotransferase, total protiens,
// albumin, albumin/globulin ratio.
func (c *ClinicalValues) Features() []float64 {
	return []float64{
		c.Age.Float64(),
		c.Gender.Float64(),
		c.TotalBilirubin.Float64(),
		c.DirectBilirubin.Float64(),
		c.AlkalinePhosphotase.Float64(),
		c.AlamineAminotransferase.Float64(),
		c.AspartateAminotransferase.Float64(),
		c.TotalProtiens.Float64(),
		c.Albumin.Float64(),
		c.AlbuminAndGlobulinRatio.Float64(),
	}
}

func (c *ClinicalValues) apply(r *models.LiverRecord) {
	r.Age = c.Age.Float64()
	r.Gender = c.Gender.Float64()
	r.TotalBilirubin = c.TotalBilirubin.Float64()
	r.DirectBilirubin = c.DirectBilirubin.Float64()
	r.AlkalinePhosphotase = c.AlkalinePhosphotase.Float64()
	r.AlamineAminotransferase = c.AlamineAminotransferase.Float64()
	r.AspartateAminotransferase = c.AspartateAminotransferase.Float64()
	r.TotalProtiens = c.TotalProtiens.Float64()
	r.Albumin = c.Albumin.Float64()
	r.AlbuminAndGlobulinRatio = c.AlbuminAndGlobulinRatio.Float64()
}

var clinicalMessages = messages{
	"age": {
		"required": "Age is required",
		"number":   "Enter a valid number for age",
	},
	"gender": {
		"required": "Gender is required",
		"number":   "Please select a valid gender value",
	},
	"totalBilirubin":            numberMessages("Total Bilirubin"),
	"directBilirubin":           numberMessages("Direct Bilirubin"),
	"alkalinePhosphotase":       numberMessages("Alkaline Phosphotase"),
	"alamineAminotransferase":   numberMessages("Alamine Aminotransferase"),
	"aspartateAminotransferase": numberMessages("Aspartate Aminotransferase"),
	"totalProtiens":             numberMessages("Total Protiens"),
	"albumin":                   numberMessages("Albumin"),
	"albuminAndGlobulinRatio": {
		"required": "Enter a valid number for Albumin and Globulin Ratio",
		"number":   "Enter a valid number for Albumin and Globulin Ratio",
	},
}

func withClinicalMessages(extra messages) messages {
	merged := make(messages, len(clinicalMessages)+len(extra))
	for k, v := range clinicalMessages {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// refineGender enforces gender in {1, 2} once the value coerced to a number.
func refineGender(fields []apperr.FieldError, gender Number) []apperr.FieldError {
	if hasFieldError(fields, "gender") {
		return fields
	}
	if g := gender.Float64(); g != models.GenderMale && g != models.GenderFemale {
		fields = append(fields, apperr.FieldError{
			Field:   "gender",
			Message: "Please select a valid gender value",
		})
	}
	return fields
}

// CreateLiverRecord is the payload for creating a record.
type CreateLiverRecord struct {
	Title    string              `json:"title" validate:"required"`
	AuthorID string              `json:"aid" validate:"required"`
	Status   models.RecordStatus `json:"status" validate:"required,oneof=unevaluated positive negative"`
	ClinicalValues
}

var createRecordMessages = withClinicalMessages(messages{
	"title":  {"required": "Title is required"},
	"aid":    {"required": "Author id is required"},
	"status": {"required": "Status is required", "oneof": "Invalid status value"},
})

// Validate normalizes the payload and returns an invalid-argument error
// enumerating every offending field, or nil.
func (s *CreateLiverRecord) Validate() error {
	s.Title = strings.TrimSpace(s.Title)
	s.AuthorID = strings.TrimSpace(s.AuthorID)

	fields := check(s, createRecordMessages)
	fields = refineGender(fields, s.Gender)
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

// Record builds the liver record described by the payload. Identity,
// ownership stamping and timestamps are the caller's concern.
func (s *CreateLiverRecord) Record() models.LiverRecord {
	r := models.LiverRecord{
		Title:    s.Title,
		AuthorID: s.AuthorID,
		Status:   s.Status,
	}
	s.apply(&r)
	return r
}

// UpdateLiverRecord is the payload for editing a record. Author and status
// are not user-editable after creation and so have no place here.
type UpdateLiverRecord struct {
	Title string `json:"title" validate:"required"`
	ClinicalValues
}

var updateRecordMessages = withClinicalMessages(messages{
	"title": {"required": "Title is required"},
})

func (s *UpdateLiverRecord) Validate() error {
	s.Title = strings.TrimSpace(s.Title)

	fields := check(s, updateRecordMessages)
	fields = refineGender(fields, s.Gender)
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

// Apply copies the editable fields onto r.
func (s *UpdateLiverRecord) Apply(r *models.LiverRecord) {
	r.Title = s.Title
	s.apply(r)
}

// PredictLiverRecord is the prediction callable's payload.
type PredictLiverRecord struct {
	RecordID string `json:"recordId" validate:"required"`
	ClinicalValues
}

var predictRecordMessages = withClinicalMessages(messages{
	"recordId": {"required": "Record id is required"},
})

func (s *PredictLiverRecord) Validate() error {
	fields := check(s, predictRecordMessages)
	fields = refineGender(fields, s.Gender)
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}
