package models

import (
	"time"
)

// Jobsheet status values. Transitions are deliberately permissive: print and
// submit can be applied from any prior status, and re-submitting re-stamps
// the submission time.
const (
	StatusDraft     = "draft"
	StatusPrinted   = "printed"
	StatusSubmitted = "submitted"
)

// Jobsheet represents one service jobsheet. The schema is intentionally wide
// and flat: everything the paper form carries lives on this one row.
// Descriptive fields are free text and never validated as dates or numbers.
type Jobsheet struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	JSNumber int64  `gorm:"column:js_number;uniqueIndex;not null" json:"js_number"`
	Status   string `gorm:"column:status;not null;default:'draft'" json:"status"`

	AccountNo       string `gorm:"column:account_no" json:"account_no"`
	ClientName      string `gorm:"column:client_name" json:"client_name"`
	Address         string `gorm:"column:address;type:text" json:"address"`
	ContactPerson   string `gorm:"column:contact_person" json:"contact_person"`
	ContactNo       string `gorm:"column:contact_no" json:"contact_no"`
	IssueDate       string `gorm:"column:issue_date" json:"issue_date"`
	AppointmentDate string `gorm:"column:appointment_date" json:"appointment_date"`
	PurchaseDate    string `gorm:"column:purchase_date" json:"purchase_date"`
	Warranty        string `gorm:"column:warranty" json:"warranty"`
	Brand           string `gorm:"column:brand" json:"brand"`
	Model           string `gorm:"column:model" json:"model"`
	SerialNo        string `gorm:"column:serial_no" json:"serial_no"`

	ServiceRequest string `gorm:"column:service_request;type:text" json:"service_request"`
	ServiceReport  string `gorm:"column:service_report;type:text" json:"service_report"`
	ServiceTypes   string `gorm:"column:service_types;type:text" json:"service_types"` // serialized list
	OtherDesc      string `gorm:"column:other_desc" json:"other_desc"`
	PartsUsed      string `gorm:"column:parts_used;type:text" json:"parts_used"` // serialized list

	ServiceCharge *float64 `gorm:"column:service_charge;type:decimal(10,2)" json:"service_charge"`
	GrandTotal    *float64 `gorm:"column:grand_total;type:decimal(10,2)" json:"grand_total"`
	PaymentTerms  string   `gorm:"column:payment_terms" json:"payment_terms"`

	JobCompleted      bool `gorm:"column:job_completed" json:"job_completed"`
	JobFollowUp       bool `gorm:"column:job_follow_up" json:"job_follow_up"`
	JobIssueQuotation bool `gorm:"column:job_issue_quotation" json:"job_issue_quotation"`
	JobUnitReturned   bool `gorm:"column:job_unit_returned" json:"job_unit_returned"`

	VisitDate string `gorm:"column:visit_date" json:"visit_date"`
	TimeIn    string `gorm:"column:time_in" json:"time_in"`
	TimeOut   string `gorm:"column:time_out" json:"time_out"`

	Signature string `gorm:"column:signature;type:text" json:"signature"` // encoded image, e.g. a data URI

	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	SubmittedAt *time.Time `gorm:"column:submitted_at" json:"submitted_at"`
}

// TableName specifies the table name for the Jobsheet model
func (Jobsheet) TableName() string {
	return "jobsheets"
}

// PartLine is one row of the parts table on the form. Values are kept as
// free text; totals are computed client-side.
type PartLine struct {
	Description string `json:"description"`
	Qty         string `json:"qty"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// Counter is the single-row sequence source backing jobsheet numbers.
// It is seeded once at bootstrap and only ever incremented, so numbers
// are unique across every server process sharing the database.
type Counter struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	LastNumber int64 `gorm:"column:last_number;not null" json:"last_number"`
}

// TableName specifies the table name for the Counter model
func (Counter) TableName() string {
	return "js_counter"
}
