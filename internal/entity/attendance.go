package entity

// Attendance statuses as captured on check-in.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Derived final statuses.
const (
	FinalOnTime = "On-time"
	FinalLate   = "Late"
	FinalAbsent = "Absent"
)

type AttendanceRecord struct {
	ID               uint64 `json:"id"`
	EmployeeID       uint64 `json:"employee_id"`
	DateOfAttendance string `json:"date_of_attendance"`
	InTime           string `json:"in_time"`
	OutTime          string `json:"out_time"`
	Status           string `json:"status"`
	FinalStatus      string `json:"final_status"`
}

// AttendanceRow is a record joined with the employee name, the shape the
// records and report endpoints return.
type AttendanceRow struct {
	ID             uint64 `json:"id"`
	EmployeeName   string `json:"employee_name"`
	AttendanceDate string `json:"attendance_date"`
	InTime         string `json:"in_time"`
	OutTime        string `json:"out_time"`
	Status         string `json:"status"`
	FinalStatus    string `json:"final_status"`
}

type AttendanceStats struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
	Late    int64 `json:"late"`
}

type PostAttendanceRequest struct {
	EmployeeID       uint64 `json:"employee_id"`
	DateOfAttendance string `json:"date_of_attendance"`
	InTime           string `json:"in_time"`
	Status           string `json:"status"`
}

type ReportParams struct {
	StartDate  string
	EndDate    string
	EmployeeID *uint64
}
