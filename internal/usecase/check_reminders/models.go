package check_reminders

import "github.com/google/uuid"

// Request параметры проверки, TenantID == nil означает все барбершопы
type Request struct {
	TenantID *uuid.UUID
}

// Response итог проверки
type Response struct {
	Checked int `json:"checked"`
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}
