package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateExpenseRequest struct {
	Category    string          `json:"category" validate:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount"   validate:"required"`
	Description string          `json:"description" validate:"max=500"`
	Date        string          `json:"date"     validate:"required,datetime=2006-01-02"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

type ExpenseFilter struct {
	Category string `form:"category"`
	From     string `form:"from"  validate:"omitempty,datetime=2006-01-02"`
	To       string `form:"to"    validate:"omitempty,datetime=2006-01-02"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

type ExpenseListResponse struct {
	Data  []ExpenseResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
