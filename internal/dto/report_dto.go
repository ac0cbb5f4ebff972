package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ReportPeriod is bound from the query string of the report endpoints.
// To is exclusive; empty To means "through today".
type ReportPeriod struct {
	From string `form:"from" validate:"required,datetime=2006-01-02"`
	To   string `form:"to"   validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// DepartmentIncomeRow is one department's billed total over the period.
type DepartmentIncomeRow struct {
	Department string          `json:"department"`
	Total      decimal.Decimal `json:"total"`
}

// IncomeExpenseReport is the period summary: income (by category and by
// department), expenses, and the resulting net.
type IncomeExpenseReport struct {
	From             string                     `json:"from"`
	To               string                     `json:"to"`
	TotalIncome      decimal.Decimal            `json:"total_income"`
	TotalExpense     decimal.Decimal            `json:"total_expense"`
	Net              decimal.Decimal            `json:"net"`
	IncomeByCategory map[string]decimal.Decimal `json:"income_by_category"`
	ByDepartment     []DepartmentIncomeRow      `json:"by_department"`
}

// NotificationResponse is one open stock alert.
type NotificationResponse struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	ItemName  string  `json:"item_name"`
	BatchID   *string `json:"batch_id"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"created_at"`
}
