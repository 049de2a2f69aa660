package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"markguard/internal/domain"
	"markguard/internal/port"
)

// MetricsService computes role-differentiated dashboard metrics over the
// shared case/payment/brand data. Every call is a stateless
// read-aggregate-return cycle; nothing is cached between calls.
type MetricsService interface {
	// ComputeMetrics infers the dashboard from the caller's role tuple:
	// admins get the system-wide view, internal staff get their
	// department's view scoped to their own cases, clients get their
	// profile's view. Exactly one branch is taken per call.
	ComputeMetrics(ctx context.Context, caller domain.Caller, filter domain.MetricsFilter) (*domain.MetricsBundle, error)

	// ComputeDashboard resolves an explicitly named dashboard, applying
	// the same routines keyed by type instead of inferred role. Unknown
	// types return domain.ErrInvalidDashboard.
	ComputeDashboard(ctx context.Context, dashboard domain.DashboardType, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error)
}

type metricsService struct {
	repo port.MetricsRepository
	now  func() time.Time
}

// NewMetricsService creates a new MetricsService implementation.
func NewMetricsService(repo port.MetricsRepository) MetricsService {
	return &metricsService{repo: repo, now: time.Now}
}

func (s *metricsService) ComputeMetrics(ctx context.Context, caller domain.Caller, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	filter = filter.Normalize()

	switch {
	case caller.IsAdmin:
		return s.adminMetrics(ctx, filter)
	case !caller.IsClient:
		return s.analystMetrics(ctx, caller.MainDepartment, caller.ID, filter)
	default:
		return s.clientMetrics(ctx, caller.ClientProfile, caller.ID, filter)
	}
}

// analystMetrics routes an internal staff member to their department's
// dashboard. Departments without a dedicated routine, and unknown
// department strings, fall back to the generic analyst dashboard.
func (s *metricsService) analystMetrics(ctx context.Context, dept domain.Department, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	switch dept {
	case domain.DeptAtendimento:
		return s.atendimentoMetrics(ctx, callerID, filter)
	case domain.DeptProspeccao:
		return s.prospeccaoMetrics(ctx, callerID, filter)
	case domain.DeptVerificacao:
		return s.verificacaoMetrics(ctx, callerID, filter)
	case domain.DeptAuditoria:
		return s.auditoriaMetrics(ctx, callerID, filter)
	case domain.DeptLogistica:
		return s.logisticaMetrics(ctx, callerID, filter)
	case domain.DeptIPTools:
		return s.ipToolsMetrics(ctx, callerID, filter)
	case domain.DeptFinanceiro:
		return s.financeiroInternoMetrics(ctx, callerID, filter)
	default:
		return s.genericAnalystMetrics(ctx, callerID, filter)
	}
}

// clientMetrics routes a client user to their profile's dashboard.
// Unset and unknown profiles resolve to the comum dashboard.
func (s *metricsService) clientMetrics(ctx context.Context, profile domain.ClientProfile, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	switch profile {
	case domain.ProfileGestor:
		return s.gestorMetrics(ctx, callerID, filter)
	case domain.ProfileAnalistaContrafacao:
		return s.contrafacaoMetrics(ctx, callerID, filter)
	case domain.ProfileFinanceiro:
		return s.financeiroMetrics(ctx, callerID, filter)
	default:
		return s.comumMetrics(ctx, callerID, filter)
	}
}

func (s *metricsService) ComputeDashboard(ctx context.Context, dashboard domain.DashboardType, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	filter = filter.Normalize()

	switch dashboard {
	case domain.DashboardAdmin:
		return s.adminMetrics(ctx, filter)
	case domain.DashboardAtendimento:
		return s.atendimentoMetrics(ctx, callerID, filter)
	case domain.DashboardProspeccao:
		return s.prospeccaoMetrics(ctx, callerID, filter)
	case domain.DashboardVerificacao:
		return s.verificacaoMetrics(ctx, callerID, filter)
	case domain.DashboardAuditoria:
		return s.auditoriaMetrics(ctx, callerID, filter)
	case domain.DashboardLogistica:
		return s.logisticaMetrics(ctx, callerID, filter)
	case domain.DashboardIPTools:
		return s.ipToolsMetrics(ctx, callerID, filter)
	case domain.DashboardFinanceiroInterno:
		return s.financeiroInternoMetrics(ctx, callerID, filter)
	case domain.DashboardAnalista:
		return s.genericAnalystMetrics(ctx, callerID, filter)
	case domain.DashboardGestor:
		return s.gestorMetrics(ctx, callerID, filter)
	case domain.DashboardAnalistaContrafacao:
		return s.contrafacaoMetrics(ctx, callerID, filter)
	case domain.DashboardFinanceiro:
		return s.financeiroMetrics(ctx, callerID, filter)
	case domain.DashboardComum:
		return s.comumMetrics(ctx, callerID, filter)
	default:
		return nil, domain.ErrInvalidDashboard
	}
}

// adminMetrics computes the system-wide dashboard, unscoped by user.
func (s *metricsService) adminMetrics(ctx context.Context, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, nil)
	pay := paymentQueryFrom(filter, nil)
	m := &domain.AdminMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.TotalCases, err = s.repo.CountCases(gCtx, base)
		return err
	})
	g.Go(func() (err error) {
		m.ActiveCases, err = s.countCasesIn(gCtx, base, domain.ActiveCaseStatuses...)
		return err
	})
	g.Go(func() (err error) {
		m.ResolvedCases, err = s.countCasesIn(gCtx, base, domain.CaseStatusResolved)
		return err
	})
	g.Go(func() (err error) {
		m.PendingNotifications, err = s.countCasesIn(gCtx, base, domain.CaseStatusAwaitingApproval)
		return err
	})
	g.Go(func() (err error) {
		m.TotalPayments, err = s.repo.SumPayments(gCtx, pay)
		return err
	})
	g.Go(func() (err error) {
		m.CasesByUser, err = s.repo.CasesByUser(gCtx, base)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.SuccessRate = pct(m.ResolvedCases, m.TotalCases)
	return &domain.MetricsBundle{Dashboard: domain.DashboardAdmin, Metrics: m}, nil
}

func (s *metricsService) atendimentoMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	today := s.now().UTC()
	m := &domain.AtendimentoMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		kind := domain.InteractionNotification
		m.NotificationsSent, err = s.repo.CountInteractions(gCtx, &domain.InteractionQuery{
			UserID:      &callerID,
			Kind:        &kind,
			CreatedFrom: filter.DateFrom,
			CreatedTo:   filter.DateTo,
		})
		return err
	})
	g.Go(func() (err error) {
		m.ActiveNegotiations, err = s.countCasesIn(gCtx, base, domain.CaseStatusInNegotiation)
		return err
	})
	g.Go(func() (err error) {
		m.TodayFollowUps, err = s.repo.CountInteractions(gCtx, &domain.InteractionQuery{
			UserID:     &callerID,
			FollowUpOn: &today,
		})
		return err
	})
	g.Go(func() (err error) {
		m.UrgentCases, err = s.repo.CountCases(gCtx, withPriority(base, domain.PriorityUrgent))
		return err
	})
	g.Go(func() (err error) {
		m.Negotiations, err = s.countCasesIn(gCtx, base,
			domain.CaseStatusInNegotiation, domain.CaseStatusProposalAccepted)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.MetricsBundle{Dashboard: domain.DashboardAtendimento, Metrics: m}, nil
}

func (s *metricsService) prospeccaoMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	m := &domain.ProspeccaoMetrics{}
	var resolved int

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.CasesDetected, err = s.repo.CountCases(gCtx, base)
		return err
	})
	g.Go(func() (err error) {
		m.CasesThisMonth, err = s.repo.CountCases(gCtx, s.monthQuery(base))
		return err
	})
	g.Go(func() (err error) {
		m.AwaitingVerification, err = s.countCasesIn(gCtx, base, domain.CaseStatusInAnalysis)
		return err
	})
	g.Go(func() (err error) {
		resolved, err = s.countCasesIn(gCtx, base, domain.CaseStatusResolved)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.ConversionRate = pct(resolved, m.CasesDetected)
	return &domain.MetricsBundle{Dashboard: domain.DashboardProspeccao, Metrics: m}, nil
}

func (s *metricsService) verificacaoMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	m := &domain.VerificacaoMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.PendingVerification, err = s.countCasesIn(gCtx, base, domain.CaseStatusInAnalysis)
		return err
	})
	g.Go(func() (err error) {
		m.VerifiedCases, err = s.countCasesIn(gCtx, base,
			domain.CaseStatusApproved, domain.CaseStatusRejected)
		return err
	})
	g.Go(func() (err error) {
		m.ConfirmedViolations, err = s.countCasesIn(gCtx, base, domain.CaseStatusApproved)
		return err
	})
	g.Go(func() (err error) {
		m.AvgVerificationDays, err = s.repo.AvgDecisionDays(gCtx, base)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.MetricsBundle{Dashboard: domain.DashboardVerificacao, Metrics: m}, nil
}

func (s *metricsService) auditoriaMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	m := &domain.AuditoriaMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.PendingAudit, err = s.countCasesIn(gCtx, base, domain.CaseStatusAwaitingApproval)
		return err
	})
	g.Go(func() (err error) {
		m.ApprovedCases, err = s.countCasesIn(gCtx, base, domain.CaseStatusApproved)
		return err
	})
	g.Go(func() (err error) {
		m.RejectedCases, err = s.countCasesIn(gCtx, base, domain.CaseStatusRejected)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.ComplianceRate = pct(m.ApprovedCases, m.ApprovedCases+m.RejectedCases)
	return &domain.MetricsBundle{Dashboard: domain.DashboardAuditoria, Metrics: m}, nil
}

func (s *metricsService) logisticaMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	m := &domain.LogisticaMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.ActiveOperations, err = s.countCasesIn(gCtx, base, domain.CaseStatusApproved)
		return err
	})
	g.Go(func() (err error) {
		m.CompletedOperations, err = s.countCasesIn(gCtx, base, domain.CaseStatusResolved)
		return err
	})
	g.Go(func() (err error) {
		m.UrgentCases, err = s.repo.CountCases(gCtx, withPriority(base, domain.PriorityUrgent))
		return err
	})
	g.Go(func() (err error) {
		m.AvgResolutionDays, err = s.repo.AvgResolutionDays(gCtx, base)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.MetricsBundle{Dashboard: domain.DashboardLogistica, Metrics: m}, nil
}

func (s *metricsService) ipToolsMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	m := &domain.IPToolsMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.ListingsFound, err = s.repo.CountCases(gCtx, base)
		return err
	})
	g.Go(func() (err error) {
		m.ConfirmedViolations, err = s.countCasesIn(gCtx, base, domain.CaseStatusApproved)
		return err
	})
	g.Go(func() (err error) {
		m.TakedownsCompleted, err = s.countCasesIn(gCtx, base, domain.CaseStatusResolved)
		return err
	})
	g.Go(func() (err error) {
		m.AvgVerificationDays, err = s.repo.AvgDecisionDays(gCtx, base)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.MetricsBundle{Dashboard: domain.DashboardIPTools, Metrics: m}, nil
}

func (s *metricsService) financeiroInternoMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	pay := paymentQueryFrom(filter, &callerID)
	m := &domain.FinanceiroInternoMetrics{}
	var paidCount, totalCount int

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.ConfirmedAmount, err = s.repo.SumPayments(gCtx, withPaymentStatuses(pay, domain.PaymentStatusConfirmed))
		return err
	})
	g.Go(func() (err error) {
		m.PendingAmount, err = s.repo.SumPayments(gCtx, withPaymentStatuses(pay, domain.PaymentStatusPending))
		return err
	})
	g.Go(func() (err error) {
		m.OverdueCount, err = s.repo.CountPayments(gCtx, withPaymentStatuses(pay, domain.PaymentStatusOverdue))
		return err
	})
	g.Go(func() (err error) {
		paidCount, err = s.repo.CountPayments(gCtx, withPaymentStatuses(pay, domain.PaymentStatusPaid))
		return err
	})
	g.Go(func() (err error) {
		totalCount, err = s.repo.CountPayments(gCtx, pay)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.CollectionRate = pct(paidCount, totalCount)
	return &domain.MetricsBundle{Dashboard: domain.DashboardFinanceiroInterno, Metrics: m}, nil
}

// genericAnalystMetrics is the fallback for departments without a
// dedicated dashboard.
func (s *metricsService) genericAnalystMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	m := &domain.AnalystMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.AssignedCases, err = s.repo.CountCases(gCtx, base)
		return err
	})
	g.Go(func() (err error) {
		m.ResolvedCases, err = s.countCasesIn(gCtx, base, domain.CaseStatusResolved)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.Productivity = pct(m.ResolvedCases, m.AssignedCases)
	return &domain.MetricsBundle{Dashboard: domain.DashboardAnalista, Metrics: m}, nil
}

func (s *metricsService) gestorMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	pay := paymentQueryFrom(filter, &callerID)
	// The analyst leaderboard ranks internal staff across the whole
	// filtered dataset, not the manager's own assignments.
	unscoped := caseQueryFrom(filter, nil)
	m := &domain.GestorMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.TotalCases, err = s.repo.CountCases(gCtx, base)
		return err
	})
	g.Go(func() (err error) {
		m.ActiveCases, err = s.countCasesIn(gCtx, base, domain.ActiveCaseStatuses...)
		return err
	})
	g.Go(func() (err error) {
		m.ResolvedCases, err = s.countCasesIn(gCtx, base, domain.CaseStatusResolved)
		return err
	})
	g.Go(func() (err error) {
		m.UrgentCases, err = s.repo.CountCases(gCtx, withPriority(base, domain.PriorityUrgent))
		return err
	})
	g.Go(func() (err error) {
		m.TotalIndemnification, err = s.repo.SumPayments(gCtx,
			withPaymentStatuses(pay, domain.PaymentStatusConfirmed, domain.PaymentStatusPaid))
		return err
	})
	g.Go(func() (err error) {
		m.AvgResolutionDays, err = s.repo.AvgResolutionDays(gCtx, base)
		return err
	})
	g.Go(func() (err error) {
		m.StateRanking, err = s.repo.CasesByState(gCtx, base)
		return err
	})
	g.Go(func() (err error) {
		m.TopAnalysts, err = s.repo.TopAnalysts(gCtx, unscoped, 5)
		return err
	})
	g.Go(func() (err error) {
		m.CasesByBrand, err = s.repo.CasesByBrand(gCtx, base)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.SuccessRate = pct(m.ResolvedCases, m.TotalCases)
	return &domain.MetricsBundle{Dashboard: domain.DashboardGestor, Metrics: m}, nil
}

func (s *metricsService) contrafacaoMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	m := &domain.ContrafacaoMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.ApprovedCases, err = s.countCasesIn(gCtx, base, domain.CaseStatusApproved)
		return err
	})
	g.Go(func() (err error) {
		m.RejectedCases, err = s.countCasesIn(gCtx, base, domain.CaseStatusRejected)
		return err
	})
	g.Go(func() (err error) {
		m.AwaitingApproval, err = s.countCasesIn(gCtx, base, domain.CaseStatusAwaitingApproval)
		return err
	})
	g.Go(func() (err error) {
		m.UrgentCases, err = s.repo.CountCases(gCtx, withPriority(base, domain.PriorityUrgent))
		return err
	})
	g.Go(func() (err error) {
		m.AvgApprovalDays, err = s.repo.AvgDecisionDays(gCtx, base)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.ApprovalRate = pct(m.ApprovedCases, m.ApprovedCases+m.RejectedCases)
	return &domain.MetricsBundle{Dashboard: domain.DashboardAnalistaContrafacao, Metrics: m}, nil
}

func (s *metricsService) financeiroMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	pay := paymentQueryFrom(filter, &callerID)
	m := &domain.FinanceiroMetrics{}
	var paidCount, totalCount int

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.TotalRevenue, err = s.repo.SumPayments(gCtx, withPaymentStatuses(pay, domain.PaymentStatusPaid))
		return err
	})
	g.Go(func() (err error) {
		m.PendingPayments, err = s.repo.SumPayments(gCtx, withPaymentStatuses(pay, domain.PaymentStatusPending))
		return err
	})
	g.Go(func() (err error) {
		m.OverduePayments, err = s.repo.SumPayments(gCtx, withPaymentStatuses(pay, domain.PaymentStatusOverdue))
		return err
	})
	g.Go(func() (err error) {
		m.CasesThisMonth, err = s.repo.CountCases(gCtx, s.monthQuery(base))
		return err
	})
	g.Go(func() (err error) {
		m.AvgTicket, err = s.repo.AvgPaymentAmount(gCtx, pay)
		return err
	})
	g.Go(func() (err error) {
		paidCount, err = s.repo.CountPayments(gCtx, withPaymentStatuses(pay, domain.PaymentStatusPaid))
		return err
	})
	g.Go(func() (err error) {
		totalCount, err = s.repo.CountPayments(gCtx, pay)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.CollectionRate = pct(paidCount, totalCount)
	return &domain.MetricsBundle{Dashboard: domain.DashboardFinanceiro, Metrics: m}, nil
}

func (s *metricsService) comumMetrics(ctx context.Context, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	base := caseQueryFrom(filter, &callerID)
	m := &domain.ComumMetrics{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.TotalCases, err = s.repo.CountCases(gCtx, base)
		return err
	})
	g.Go(func() (err error) {
		m.ActiveCases, err = s.countCasesIn(gCtx, base, domain.ActiveCaseStatuses...)
		return err
	})
	g.Go(func() (err error) {
		m.ResolvedCases, err = s.countCasesIn(gCtx, base, domain.CaseStatusResolved)
		return err
	})
	g.Go(func() (err error) {
		m.AwaitingApproval, err = s.countCasesIn(gCtx, base, domain.CaseStatusAwaitingApproval)
		return err
	})
	g.Go(func() (err error) {
		m.CasesThisMonth, err = s.repo.CountCases(gCtx, s.monthQuery(base))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.MetricsBundle{Dashboard: domain.DashboardComum, Metrics: m}, nil
}

// countCasesIn counts cases narrowed to the given statuses. When the
// shared filter already constrains status, the two sets intersect; an
// empty intersection short-circuits to zero without a query.
func (s *metricsService) countCasesIn(ctx context.Context, base *domain.CaseQuery, statuses ...domain.CaseStatus) (int, error) {
	q, ok := narrowStatuses(base, statuses)
	if !ok {
		return 0, nil
	}
	return s.repo.CountCases(ctx, q)
}

// monthQuery returns a copy of q windowed to the current calendar month.
// The month window is part of the metric's definition and overrides any
// request date range.
func (s *metricsService) monthQuery(q *domain.CaseQuery) *domain.CaseQuery {
	start := monthStart(s.now().UTC())
	c := *q
	c.CreatedFrom = &start
	c.CreatedTo = nil
	return &c
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// caseQueryFrom builds the base case predicate for a routine: the shared
// filter plus optional caller scoping.
func caseQueryFrom(f domain.MetricsFilter, assignedTo *uuid.UUID) *domain.CaseQuery {
	q := &domain.CaseQuery{
		AssignedTo:  assignedTo,
		BrandID:     f.BrandID,
		CreatedFrom: f.DateFrom,
		CreatedTo:   f.DateTo,
	}
	if f.Status != nil {
		q.Statuses = []domain.CaseStatus{*f.Status}
	}
	return q
}

// paymentQueryFrom builds the base payment predicate for a routine.
// The case-status filter does not apply to payment aggregates.
func paymentQueryFrom(f domain.MetricsFilter, assignedTo *uuid.UUID) *domain.PaymentQuery {
	return &domain.PaymentQuery{
		CaseAssignedTo: assignedTo,
		BrandID:        f.BrandID,
		CreatedFrom:    f.DateFrom,
		CreatedTo:      f.DateTo,
	}
}

func narrowStatuses(base *domain.CaseQuery, statuses []domain.CaseStatus) (*domain.CaseQuery, bool) {
	q := *base
	if len(base.Statuses) == 0 {
		q.Statuses = statuses
		return &q, true
	}

	allowed := make(map[domain.CaseStatus]bool, len(base.Statuses))
	for _, s := range base.Statuses {
		allowed[s] = true
	}
	var narrowed []domain.CaseStatus
	for _, s := range statuses {
		if allowed[s] {
			narrowed = append(narrowed, s)
		}
	}
	if len(narrowed) == 0 {
		return nil, false
	}
	q.Statuses = narrowed
	return &q, true
}

func withPriority(base *domain.CaseQuery, p domain.CasePriority) *domain.CaseQuery {
	q := *base
	q.Priority = &p
	return &q
}

func withPaymentStatuses(base *domain.PaymentQuery, statuses ...domain.PaymentStatus) *domain.PaymentQuery {
	q := *base
	q.Statuses = statuses
	return &q
}

// pct returns part/total as a percentage, defined as 0 when total is 0.
func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
