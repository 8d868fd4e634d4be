package entity

// Salary request statuses. Pending is the submitted state; Approved and
// Rejected are admin decisions. "Completed" exists only as a derived
// display status once an approved payment is confirmed received.
const (
	SalaryPending  = "Pending"
	SalaryApproved = "Approved"
	SalaryRejected = "Rejected"
)

// Receipt statuses.
const (
	ReceiptPending     = "Pending"
	ReceiptReceived    = "Received"
	ReceiptNotReceived = "Not Received"
)

type SalaryRequest struct {
	ID            uint64 `json:"id"`
	EmployeeID    uint64 `json:"employee_id"`
	RequestMonth  string `json:"request_month"`
	RequestDate   string `json:"request_date"`
	Status        string `json:"status"`
	ReceiptStatus string `json:"receipt_status"`
}

// AdminSalaryRow is a salary request joined with employee data plus the
// derived attention fields the admin dashboard sorts by.
type AdminSalaryRow struct {
	ID             uint64 `json:"id"`
	RequestDate    string `json:"request_date"`
	RequestMonth   string `json:"request_month"`
	Status         string `json:"status"`
	ReceiptStatus  string `json:"receipt_status"`
	EmployeeName   string `json:"employee_name"`
	EmployeeEmail  string `json:"employee_email"`
	Salary         int64  `json:"salary"`
	DisplayStatus  string `json:"display_status"`
	NeedsAttention bool   `json:"needs_attention"`
}

type SalaryRequestSubmission struct {
	EmployeeID   uint64 `json:"employee_id"`
	RequestMonth string `json:"request_month"`
}
