package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService aggregates the income and expense ledgers into period
// summaries, and surfaces open stock alerts.
type ReportService interface {
	IncomeExpense(ctx context.Context, period dto.ReportPeriod) (*dto.IncomeExpenseReport, error)
	ListNotifications(ctx context.Context) ([]dto.NotificationResponse, error)
	MarkNotificationSeen(ctx context.Context, id uuid.UUID) error
}

type reportService struct {
	income        repository.IncomeRepository
	expenses      repository.ExpenseRepository
	bills         repository.BillRepository
	notifications repository.NotificationRepository
}

func NewReportService(
	income repository.IncomeRepository,
	expenses repository.ExpenseRepository,
	bills repository.BillRepository,
	notifications repository.NotificationRepository,
) ReportService {
	return &reportService{
		income:        income,
		expenses:      expenses,
		bills:         bills,
		notifications: notifications,
	}
}

func (s *reportService) IncomeExpense(ctx context.Context, period dto.ReportPeriod) (*dto.IncomeExpenseReport, error) {
	from, err := time.Parse("2006-01-02", period.From)
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}
	// To is exclusive; default = tomorrow so "through today" is included.
	to := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	if period.To != "" {
		to, err = time.Parse("2006-01-02", period.To)
		if err != nil {
			return nil, fmt.Errorf("invalid to date: %w", err)
		}
	}

	totalIncome, err := s.income.SumByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.expenses.SumByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.income.SumByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byDept, err := s.bills.SumByDepartment(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &dto.IncomeExpenseReport{
		From:             from.Format("2006-01-02"),
		To:               to.Format("2006-01-02"),
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Net:              totalIncome.Sub(totalExpense),
		IncomeByCategory: byCategory,
	}
	// Stable department order regardless of map iteration.
	for _, dept := range model.AllDepartments() {
		total, ok := byDept[dept]
		if !ok {
			total = decimal.Zero
		}
		report.ByDepartment = append(report.ByDepartment, dto.DepartmentIncomeRow{
			Department: string(dept),
			Total:      total,
		})
	}
	return report, nil
}

func (s *reportService) ListNotifications(ctx context.Context) ([]dto.NotificationResponse, error) {
	notifications, err := s.notifications.ListUnseen(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		row := dto.NotificationResponse{
			ID:        n.ID.String(),
			Kind:      string(n.Kind),
			Message:   n.Message,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
		if n.Item != nil {
			row.ItemName = n.Item.Name
		}
		if n.BatchID != nil {
			id := n.BatchID.String()
			row.BatchID = &id
		}
		resp = append(resp, row)
	}
	return resp, nil
}

func (s *reportService) MarkNotificationSeen(ctx context.Context, id uuid.UUID) error {
	return s.notifications.MarkSeen(ctx, id)
}
