package services

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/amirulhaziq/jobsheet-api/models"
	"github.com/amirulhaziq/jobsheet-api/utils"
)

// SaveJobsheetInput enumerates every editable form field. Identity, status
// and timestamps are not part of it. Save is a full replace of this field
// set: anything left out of the request clears the stored value.
type SaveJobsheetInput struct {
	JSNumber int64 `json:"js_number" binding:"required"`

	AccountNo       string `json:"account_no"`
	ClientName      string `json:"client_name"`
	Address         string `json:"address"`
	ContactPerson   string `json:"contact_person"`
	ContactNo       string `json:"contact_no"`
	IssueDate       string `json:"issue_date"`
	AppointmentDate string `json:"appointment_date"`
	PurchaseDate    string `json:"purchase_date"`
	Warranty        string `json:"warranty"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	SerialNo        string `json:"serial_no"`

	ServiceRequest string            `json:"service_request"`
	ServiceReport  string            `json:"service_report"`
	ServiceTypes   []string          `json:"service_types"`
	OtherDesc      string            `json:"other_desc"`
	PartsUsed      []models.PartLine `json:"parts_used"`

	ServiceCharge string `json:"service_charge"`
	GrandTotal    string `json:"grand_total"`
	PaymentTerms  string `json:"payment_terms"`

	JobCompleted      bool `json:"job_completed"`
	JobFollowUp       bool `json:"job_follow_up"`
	JobIssueQuotation bool `json:"job_issue_quotation"`
	JobUnitReturned   bool `json:"job_unit_returned"`

	VisitDate string `json:"visit_date"`
	TimeIn    string `json:"time_in"`
	TimeOut   string `json:"time_out"`

	Signature string `json:"signature"`
}

// GetJobsheet loads a jobsheet row by its number.
// Returns gorm.ErrRecordNotFound if no row carries that number.
func GetJobsheet(db *gorm.DB, jsNumber int64) (models.Jobsheet, error) {
	var jobsheet models.Jobsheet
	err := db.Where("js_number = ?", jsNumber).First(&jobsheet).Error
	return jobsheet, err
}

// ListJobsheets returns all jobsheets, most recent number first.
func ListJobsheets(db *gorm.DB) ([]models.Jobsheet, error) {
	var jobsheets []models.Jobsheet
	err := db.Order("js_number DESC").Find(&jobsheets).Error
	return jobsheets, err
}

// SaveJobsheet writes the full editable field set of an existing row.
// A save targeting a number with no row is a no-op, not an error.
func SaveJobsheet(db *gorm.DB, input SaveJobsheetInput) error {
	updates := map[string]interface{}{
		"account_no":       input.AccountNo,
		"client_name":      input.ClientName,
		"address":          input.Address,
		"contact_person":   input.ContactPerson,
		"contact_no":       input.ContactNo,
		"issue_date":       input.IssueDate,
		"appointment_date": input.AppointmentDate,
		"purchase_date":    input.PurchaseDate,
		"warranty":         input.Warranty,
		"brand":            input.Brand,
		"model":            input.Model,
		"serial_no":        input.SerialNo,

		"service_request": input.ServiceRequest,
		"service_report":  input.ServiceReport,
		"service_types":   utils.EncodeStringList(input.ServiceTypes),
		"other_desc":      input.OtherDesc,
		"parts_used":      utils.EncodePartList(input.PartsUsed),

		"service_charge": utils.ParseAmount(input.ServiceCharge),
		"grand_total":    utils.ParseAmount(input.GrandTotal),
		"payment_terms":  input.PaymentTerms,

		"job_completed":       input.JobCompleted,
		"job_follow_up":       input.JobFollowUp,
		"job_issue_quotation": input.JobIssueQuotation,
		"job_unit_returned":   input.JobUnitReturned,

		"visit_date": input.VisitDate,
		"time_in":    input.TimeIn,
		"time_out":   input.TimeOut,

		"signature": input.Signature,
	}

	return db.Model(&models.Jobsheet{}).
		Where("js_number = ?", input.JSNumber).
		Updates(updates).Error
}

// MarkPrinted sets the status to "printed". There is no precondition on the
// current status.
func MarkPrinted(db *gorm.DB, jsNumber int64) error {
	return db.Model(&models.Jobsheet{}).
		Where("js_number = ?", jsNumber).
		Update("status", models.StatusPrinted).Error
}

// SubmitJobsheet marks the row submitted, stamps the submission time and
// returns the updated row. Submitting an unknown number returns
// gorm.ErrRecordNotFound.
func SubmitJobsheet(db *gorm.DB, jsNumber int64) (models.Jobsheet, error) {
	jobsheet, err := GetJobsheet(db, jsNumber)
	if err != nil {
		return models.Jobsheet{}, err
	}

	now := time.Now()
	err = db.Model(&models.Jobsheet{}).
		Where("js_number = ?", jsNumber).
		Updates(map[string]interface{}{
			"status":       models.StatusSubmitted,
			"submitted_at": now,
		}).Error
	if err != nil {
		return models.Jobsheet{}, err
	}

	jobsheet.Status = models.StatusSubmitted
	jobsheet.SubmittedAt = &now
	return jobsheet, nil
}

// StringifyJobsheet flattens a row into a map where every value is a string:
// nil becomes the empty string, amounts keep two decimals, booleans render
// as "true"/"false", timestamps as RFC3339 UTC, and list fields keep their
// stored text encoding. This is the shape both the webhook receiver and the
// JSON fetch endpoint consume.
func StringifyJobsheet(jobsheet models.Jobsheet) map[string]string {
	payload := map[string]string{
		"js_number": strconv.FormatInt(jobsheet.JSNumber, 10),
		"status":    jobsheet.Status,

		"account_no":       jobsheet.AccountNo,
		"client_name":      jobsheet.ClientName,
		"address":          jobsheet.Address,
		"contact_person":   jobsheet.ContactPerson,
		"contact_no":       jobsheet.ContactNo,
		"issue_date":       jobsheet.IssueDate,
		"appointment_date": jobsheet.AppointmentDate,
		"purchase_date":    jobsheet.PurchaseDate,
		"warranty":         jobsheet.Warranty,
		"brand":            jobsheet.Brand,
		"model":            jobsheet.Model,
		"serial_no":        jobsheet.SerialNo,

		"service_request": jobsheet.ServiceRequest,
		"service_report":  jobsheet.ServiceReport,
		"service_types":   jobsheet.ServiceTypes,
		"other_desc":      jobsheet.OtherDesc,
		"parts_used":      jobsheet.PartsUsed,

		"service_charge": utils.FormatAmount(jobsheet.ServiceCharge),
		"grand_total":    utils.FormatAmount(jobsheet.GrandTotal),
		"payment_terms":  jobsheet.PaymentTerms,

		"job_completed":       strconv.FormatBool(jobsheet.JobCompleted),
		"job_follow_up":       strconv.FormatBool(jobsheet.JobFollowUp),
		"job_issue_quotation": strconv.FormatBool(jobsheet.JobIssueQuotation),
		"job_unit_returned":   strconv.FormatBool(jobsheet.JobUnitReturned),

		"visit_date": jobsheet.VisitDate,
		"time_in":    jobsheet.TimeIn,
		"time_out":   jobsheet.TimeOut,

		"signature": jobsheet.Signature,

		"created_at":   jobsheet.CreatedAt.UTC().Format(time.RFC3339),
		"submitted_at": "",
	}
	if jobsheet.SubmittedAt != nil {
		payload["submitted_at"] = jobsheet.SubmittedAt.UTC().Format(time.RFC3339)
	}
	return payload
}
