package schema

import "time"

const (
	ConsentRecordsCollection = "consentRecords"
)

// ConsentRecord is an employee's opt-in flag for manager-facing
// aggregation, with the manager linkage used to resolve direct reports.
// Non-consenting or inactive employees are invisible to team rollups.
type ConsentRecord struct {
	EmployeeID string    `json:"employee_id" bson:"employee_id"`
	ManagerID  string    `json:"manager_id" bson:"manager_id"`
	Consented  bool      `json:"consented" bson:"consented"`
	Active     bool      `json:"active" bson:"active"`
	Timestamp  time.Time `json:"ts" bson:"ts"`
}
