package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"markguard/internal/domain"
	"markguard/internal/port"
)

type metricsRepo struct {
	db *sqlx.DB
}

// NewMetricsRepo creates a new PostgreSQL-backed MetricsRepository.
func NewMetricsRepo(db *sqlx.DB) port.MetricsRepository {
	return &metricsRepo{db: db}
}

// whereBuilder accumulates WHERE conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

func (b *whereBuilder) add(cond string, val interface{}) {
	b.args = append(b.args, val)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

func (b *whereBuilder) addSet(column string, vals []interface{}) {
	ph := make([]string, len(vals))
	for i, v := range vals {
		b.args = append(b.args, v)
		ph[i] = fmt.Sprintf("$%d", len(b.args))
	}
	b.conds = append(b.conds, fmt.Sprintf("%s IN (%s)", column, strings.Join(ph, ", ")))
}

func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// buildCaseWhere translates a CaseQuery into a WHERE clause over cases c.
func buildCaseWhere(q *domain.CaseQuery) (string, []interface{}) {
	b := &whereBuilder{}
	if q.AssignedTo != nil {
		b.add("c.assigned_to = $%d", *q.AssignedTo)
	}
	if q.BrandID != nil {
		b.add("c.brand_id = $%d", *q.BrandID)
	}
	if len(q.Statuses) > 0 {
		vals := make([]interface{}, len(q.Statuses))
		for i, s := range q.Statuses {
			vals[i] = s
		}
		b.addSet("c.status", vals)
	}
	if q.Priority != nil {
		b.add("c.priority = $%d", *q.Priority)
	}
	if q.CreatedFrom != nil {
		b.add("c.created_at >= $%d", *q.CreatedFrom)
	}
	if q.CreatedTo != nil {
		b.add("c.created_at <= $%d", *q.CreatedTo)
	}
	return b.clause(), b.args
}

// buildPaymentWhere translates a PaymentQuery into a WHERE clause over
// payments p joined to cases c.
func buildPaymentWhere(q *domain.PaymentQuery) (string, []interface{}) {
	b := &whereBuilder{}
	if q.CaseAssignedTo != nil {
		b.add("c.assigned_to = $%d", *q.CaseAssignedTo)
	}
	if q.BrandID != nil {
		b.add("c.brand_id = $%d", *q.BrandID)
	}
	if len(q.Statuses) > 0 {
		vals := make([]interface{}, len(q.Statuses))
		for i, s := range q.Statuses {
			vals[i] = s
		}
		b.addSet("p.status", vals)
	}
	if q.CreatedFrom != nil {
		b.add("p.created_at >= $%d", *q.CreatedFrom)
	}
	if q.CreatedTo != nil {
		b.add("p.created_at <= $%d", *q.CreatedTo)
	}
	return b.clause(), b.args
}

// buildInteractionWhere translates an InteractionQuery into a WHERE
// clause over interactions i.
func buildInteractionWhere(q *domain.InteractionQuery) (string, []interface{}) {
	b := &whereBuilder{}
	if q.UserID != nil {
		b.add("i.user_id = $%d", *q.UserID)
	}
	if q.Kind != nil {
		b.add("i.kind = $%d", *q.Kind)
	}
	if q.FollowUpOn != nil {
		// Both sides reduce to a UTC calendar date so the match does not
		// depend on the database session's timezone.
		b.add("(i.follow_up_at AT TIME ZONE 'UTC')::date = ($%d::timestamptz AT TIME ZONE 'UTC')::date", *q.FollowUpOn)
	}
	if q.CreatedFrom != nil {
		b.add("i.created_at >= $%d", *q.CreatedFrom)
	}
	if q.CreatedTo != nil {
		b.add("i.created_at <= $%d", *q.CreatedTo)
	}
	return b.clause(), b.args
}

func (r *metricsRepo) CountCases(ctx context.Context, q *domain.CaseQuery) (int, error) {
	whereClause, args := buildCaseWhere(q)
	query := fmt.Sprintf("SELECT COUNT(*) FROM cases c %s", whereClause)

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("metricsRepo.CountCases: %w", err)
	}
	return count, nil
}

func (r *metricsRepo) CountPayments(ctx context.Context, q *domain.PaymentQuery) (int, error) {
	whereClause, args := buildPaymentWhere(q)
	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM payments p INNER JOIN cases c ON c.id = p.case_id %s", whereClause)

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("metricsRepo.CountPayments: %w", err)
	}
	return count, nil
}

func (r *metricsRepo) SumPayments(ctx context.Context, q *domain.PaymentQuery) (float64, error) {
	whereClause, args := buildPaymentWhere(q)
	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(p.amount), 0) FROM payments p INNER JOIN cases c ON c.id = p.case_id %s",
		whereClause)

	var sum float64
	if err := r.db.GetContext(ctx, &sum, query, args...); err != nil {
		return 0, fmt.Errorf("metricsRepo.SumPayments: %w", err)
	}
	return sum, nil
}

func (r *metricsRepo) AvgPaymentAmount(ctx context.Context, q *domain.PaymentQuery) (float64, error) {
	whereClause, args := buildPaymentWhere(q)
	query := fmt.Sprintf(
		"SELECT COALESCE(AVG(p.amount), 0) FROM payments p INNER JOIN cases c ON c.id = p.case_id %s",
		whereClause)

	var avg float64
	if err := r.db.GetContext(ctx, &avg, query, args...); err != nil {
		return 0, fmt.Errorf("metricsRepo.AvgPaymentAmount: %w", err)
	}
	return avg, nil
}

func (r *metricsRepo) CountInteractions(ctx context.Context, q *domain.InteractionQuery) (int, error) {
	whereClause, args := buildInteractionWhere(q)
	query := fmt.Sprintf("SELECT COUNT(*) FROM interactions i %s", whereClause)

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("metricsRepo.CountInteractions: %w", err)
	}
	return count, nil
}

func (r *metricsRepo) AvgResolutionDays(ctx context.Context, q *domain.CaseQuery) (float64, error) {
	whereClause, args := buildCaseWhere(q)
	conj := "WHERE"
	if whereClause != "" {
		conj = whereClause + " AND"
	}
	query := fmt.Sprintf(
		`SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (c.resolved_at - c.created_at)) / 86400.0), 0)
		FROM cases c %s c.status = 'resolved' AND c.resolved_at IS NOT NULL`, conj)

	var avg float64
	if err := r.db.GetContext(ctx, &avg, query, args...); err != nil {
		return 0, fmt.Errorf("metricsRepo.AvgResolutionDays: %w", err)
	}
	return avg, nil
}

func (r *metricsRepo) AvgDecisionDays(ctx context.Context, q *domain.CaseQuery) (float64, error) {
	whereClause, args := buildCaseWhere(q)
	conj := "WHERE"
	if whereClause != "" {
		conj = whereClause + " AND"
	}
	query := fmt.Sprintf(
		`SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (c.updated_at - c.created_at)) / 86400.0), 0)
		FROM cases c %s c.status IN ('approved', 'rejected')`, conj)

	var avg float64
	if err := r.db.GetContext(ctx, &avg, query, args...); err != nil {
		return 0, fmt.Errorf("metricsRepo.AvgDecisionDays: %w", err)
	}
	return avg, nil
}

func (r *metricsRepo) CasesByUser(ctx context.Context, q *domain.CaseQuery) ([]domain.UserCaseCount, error) {
	whereClause, args := buildCaseWhere(q)
	query := fmt.Sprintf(
		`SELECT u.id AS user_id, u.full_name, COUNT(*) AS count
		FROM cases c INNER JOIN users u ON u.id = c.assigned_to
		%s
		GROUP BY u.id, u.full_name
		ORDER BY count DESC`, whereClause)

	var rows []domain.UserCaseCount
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("metricsRepo.CasesByUser: %w", err)
	}
	return rows, nil
}

func (r *metricsRepo) CasesByBrand(ctx context.Context, q *domain.CaseQuery) ([]domain.BrandCaseCount, error) {
	whereClause, args := buildCaseWhere(q)
	conj := "WHERE"
	if whereClause != "" {
		conj = whereClause + " AND"
	}
	query := fmt.Sprintf(
		`SELECT b.id AS brand_id, b.name, COUNT(*) AS count
		FROM cases c INNER JOIN brands b ON b.id = c.brand_id
		%s c.brand_id IS NOT NULL
		GROUP BY b.id, b.name
		ORDER BY count DESC`, conj)

	var rows []domain.BrandCaseCount
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("metricsRepo.CasesByBrand: %w", err)
	}
	return rows, nil
}

func (r *metricsRepo) CasesByState(ctx context.Context, q *domain.CaseQuery) ([]domain.StateBreakdown, error) {
	whereClause, args := buildCaseWhere(q)
	conj := "WHERE"
	if whereClause != "" {
		conj = whereClause + " AND"
	}
	// Every case produces one notification; agreements and deactivations
	// follow from the status the case reached.
	query := fmt.Sprintf(
		`SELECT c.debtor_state AS state,
		COUNT(*) AS notifications,
		COUNT(CASE WHEN c.status = 'proposal_accepted' THEN 1 END) AS agreements,
		COUNT(CASE WHEN c.status = 'resolved' THEN 1 END) AS deactivations
		FROM cases c
		%s c.debtor_state != ''
		GROUP BY c.debtor_state
		ORDER BY notifications DESC`, conj)

	var rows []domain.StateBreakdown
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("metricsRepo.CasesByState: %w", err)
	}
	return rows, nil
}

func (r *metricsRepo) TopAnalysts(ctx context.Context, q *domain.CaseQuery, limit int) ([]domain.AnalystRanking, error) {
	whereClause, args := buildCaseWhere(q)
	conj := "WHERE"
	if whereClause != "" {
		conj = whereClause + " AND"
	}
	query := fmt.Sprintf(
		`SELECT u.id AS user_id, u.full_name,
		COUNT(*) AS case_count,
		COUNT(CASE WHEN c.status = 'resolved' THEN 1 END) AS resolved_count,
		COUNT(CASE WHEN c.status = 'resolved' THEN 1 END)::float * 100 / COUNT(*) AS success_rate,
		COALESCE(AVG(EXTRACT(EPOCH FROM (c.resolved_at - c.created_at)) / 86400.0), 0) AS avg_days
		FROM cases c INNER JOIN users u ON u.id = c.assigned_to
		%s u.is_client = FALSE
		GROUP BY u.id, u.full_name
		ORDER BY case_count DESC
		LIMIT %d`, conj, limit)

	var rows []domain.AnalystRanking
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("metricsRepo.TopAnalysts: %w", err)
	}
	return rows, nil
}
