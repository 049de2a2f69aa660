package port

import (
	"context"

	"markguard/internal/domain"
)

// MetricsRepository provides the aggregate queries consumed by the
// dashboard routines: counts, sums, averages, and group-bys over cases,
// payments, and interactions. Every method applies the given predicate
// in full; routine-specific scoping (assigned user, status sets, date
// windows) is expressed through the predicate itself.
type MetricsRepository interface {
	CountCases(ctx context.Context, q *domain.CaseQuery) (int, error)
	CountPayments(ctx context.Context, q *domain.PaymentQuery) (int, error)
	SumPayments(ctx context.Context, q *domain.PaymentQuery) (float64, error)
	AvgPaymentAmount(ctx context.Context, q *domain.PaymentQuery) (float64, error)
	CountInteractions(ctx context.Context, q *domain.InteractionQuery) (int, error)

	// AvgResolutionDays averages resolved_at - created_at over resolved
	// cases matching q. AvgDecisionDays averages updated_at - created_at
	// over approved/rejected cases, the closest recorded approval latency.
	AvgResolutionDays(ctx context.Context, q *domain.CaseQuery) (float64, error)
	AvgDecisionDays(ctx context.Context, q *domain.CaseQuery) (float64, error)

	CasesByUser(ctx context.Context, q *domain.CaseQuery) ([]domain.UserCaseCount, error)
	CasesByBrand(ctx context.Context, q *domain.CaseQuery) ([]domain.BrandCaseCount, error)
	CasesByState(ctx context.Context, q *domain.CaseQuery) ([]domain.StateBreakdown, error)
	TopAnalysts(ctx context.Context, q *domain.CaseQuery, limit int) ([]domain.AnalystRanking, error)
}
