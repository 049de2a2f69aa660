package domain

import (
	"time"

	"github.com/google/uuid"
)

// Caller is the resolved identity of the user requesting metrics,
// supplied by the auth middleware before dispatch.
type Caller struct {
	ID             uuid.UUID
	IsAdmin        bool
	IsClient       bool
	MainDepartment Department
	ClientProfile  ClientProfile
}

// DashboardType names a metrics bundle shape. It is either inferred from
// the caller's role tuple or requested explicitly on the typed endpoint.
type DashboardType string

const (
	DashboardAdmin               DashboardType = "admin"
	DashboardAtendimento         DashboardType = "atendimento"
	DashboardProspeccao          DashboardType = "prospeccao"
	DashboardVerificacao         DashboardType = "verificacao"
	DashboardAuditoria           DashboardType = "auditoria"
	DashboardLogistica           DashboardType = "logistica"
	DashboardIPTools             DashboardType = "ip_tools"
	DashboardFinanceiroInterno   DashboardType = "financeiro_interno"
	DashboardAnalista            DashboardType = "analista"
	DashboardGestor              DashboardType = "gestor"
	DashboardAnalistaContrafacao DashboardType = "analista_contrafacao"
	DashboardFinanceiro          DashboardType = "financeiro"
	DashboardComum               DashboardType = "comum"
)

// MetricsFilter is the optional, partially-specified filter accepted by
// the dashboard endpoints before normalization.
type MetricsFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	BrandID  *uuid.UUID
	Status   *CaseStatus
}

// Normalize returns a copy with the documented partial-date-range
// behavior applied: a single-sided range is dropped entirely, matching
// the original system rather than treating it as open-ended.
func (f MetricsFilter) Normalize() MetricsFilter {
	if (f.DateFrom == nil) != (f.DateTo == nil) {
		f.DateFrom = nil
		f.DateTo = nil
	}
	return f
}

// CaseQuery is the normalized predicate applied to case aggregates.
type CaseQuery struct {
	AssignedTo  *uuid.UUID
	BrandID     *uuid.UUID
	Statuses    []CaseStatus
	Priority    *CasePriority
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// PaymentQuery is the normalized predicate applied to payment aggregates.
// Case-level fields scope through a join on the owning case.
type PaymentQuery struct {
	CaseAssignedTo *uuid.UUID
	BrandID        *uuid.UUID
	Statuses       []PaymentStatus
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
}

// InteractionQuery is the normalized predicate applied to interaction
// aggregates.
type InteractionQuery struct {
	UserID      *uuid.UUID
	Kind        *InteractionKind
	FollowUpOn  *time.Time
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserCaseCount is a per-user case count row.
type UserCaseCount struct {
	UserID   uuid.UUID `db:"user_id" json:"user_id"`
	FullName string    `db:"full_name" json:"full_name"`
	Count    int       `db:"count" json:"count"`
}

// BrandCaseCount is a per-brand case count row.
type BrandCaseCount struct {
	BrandID uuid.UUID `db:"brand_id" json:"brand_id"`
	Name    string    `db:"name" json:"name"`
	Count   int       `db:"count" json:"count"`
}

// StateBreakdown ranks notification, agreement, and deactivation volume
// by debtor state.
type StateBreakdown struct {
	State         string `db:"state" json:"state"`
	Notifications int    `db:"notifications" json:"notifications"`
	Agreements    int    `db:"agreements" json:"agreements"`
	Deactivations int    `db:"deactivations" json:"deactivations"`
}

// AnalystRanking is a leaderboard row for the manager dashboard.
type AnalystRanking struct {
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	FullName      string    `db:"full_name" json:"full_name"`
	CaseCount     int       `db:"case_count" json:"case_count"`
	ResolvedCount int       `db:"resolved_count" json:"resolved_count"`
	SuccessRate   float64   `db:"success_rate" json:"success_rate"`
	AvgDays       float64   `db:"avg_days" json:"avg_days"`
}

// MetricsBundle wraps one role-specific metrics payload. Exactly one
// shape is populated per call, identified by Dashboard.
type MetricsBundle struct {
	Dashboard DashboardType `json:"dashboard"`
	Metrics   interface{}   `json:"metrics"`
}

// AdminMetrics is the system-wide dashboard.
type AdminMetrics struct {
	TotalCases           int             `json:"total_cases"`
	ActiveCases          int             `json:"active_cases"`
	ResolvedCases        int             `json:"resolved_cases"`
	PendingNotifications int             `json:"pending_notifications"`
	TotalPayments        float64         `json:"total_payments"`
	SuccessRate          float64         `json:"success_rate"`
	CasesByUser          []UserCaseCount `json:"cases_by_user"`
}

// AtendimentoMetrics is the customer-service analyst dashboard.
type AtendimentoMetrics struct {
	NotificationsSent  int `json:"notifications_sent"`
	ActiveNegotiations int `json:"active_negotiations"`
	TodayFollowUps     int `json:"today_follow_ups"`
	UrgentCases        int `json:"urgent_cases"`
	Negotiations       int `json:"negotiations"`
}

// ProspeccaoMetrics is the prospecting analyst dashboard.
type ProspeccaoMetrics struct {
	CasesDetected        int     `json:"cases_detected"`
	CasesThisMonth       int     `json:"cases_this_month"`
	AwaitingVerification int     `json:"awaiting_verification"`
	ConversionRate       float64 `json:"conversion_rate"`
}

// VerificacaoMetrics is the verification analyst dashboard.
type VerificacaoMetrics struct {
	PendingVerification int     `json:"pending_verification"`
	VerifiedCases       int     `json:"verified_cases"`
	ConfirmedViolations int     `json:"confirmed_violations"`
	AvgVerificationDays float64 `json:"avg_verification_days"`
}

// AuditoriaMetrics is the audit analyst dashboard.
type AuditoriaMetrics struct {
	PendingAudit   int     `json:"pending_audit"`
	ApprovedCases  int     `json:"approved_cases"`
	RejectedCases  int     `json:"rejected_cases"`
	ComplianceRate float64 `json:"compliance_rate"`
}

// LogisticaMetrics is the logistics analyst dashboard.
type LogisticaMetrics struct {
	ActiveOperations    int     `json:"active_operations"`
	CompletedOperations int     `json:"completed_operations"`
	UrgentCases         int     `json:"urgent_cases"`
	AvgResolutionDays   float64 `json:"avg_resolution_days"`
}

// IPToolsMetrics is the IP-tools analyst dashboard.
type IPToolsMetrics struct {
	ListingsFound       int     `json:"listings_found"`
	ConfirmedViolations int     `json:"confirmed_violations"`
	TakedownsCompleted  int     `json:"takedowns_completed"`
	AvgVerificationDays float64 `json:"avg_verification_days"`
}

// FinanceiroInternoMetrics is the internal finance analyst dashboard.
type FinanceiroInternoMetrics struct {
	ConfirmedAmount float64 `json:"confirmed_amount"`
	PendingAmount   float64 `json:"pending_amount"`
	OverdueCount    int     `json:"overdue_count"`
	CollectionRate  float64 `json:"collection_rate"`
}

// AnalystMetrics is the generic fallback dashboard for internal staff
// without a dedicated department routine.
type AnalystMetrics struct {
	AssignedCases int     `json:"assigned_cases"`
	ResolvedCases int     `json:"resolved_cases"`
	Productivity  float64 `json:"productivity"`
}

// GestorMetrics is the client manager dashboard, the broadest client view.
type GestorMetrics struct {
	TotalCases           int              `json:"total_cases"`
	ActiveCases          int              `json:"active_cases"`
	ResolvedCases        int              `json:"resolved_cases"`
	UrgentCases          int              `json:"urgent_cases"`
	TotalIndemnification float64          `json:"total_indemnification"`
	SuccessRate          float64          `json:"success_rate"`
	AvgResolutionDays    float64          `json:"avg_resolution_days"`
	StateRanking         []StateBreakdown `json:"state_ranking"`
	TopAnalysts          []AnalystRanking `json:"top_analysts"`
	CasesByBrand         []BrandCaseCount `json:"cases_by_brand"`
}

// ContrafacaoMetrics is the client counterfeit-analyst dashboard.
type ContrafacaoMetrics struct {
	ApprovedCases    int     `json:"approved_cases"`
	RejectedCases    int     `json:"rejected_cases"`
	AwaitingApproval int     `json:"awaiting_approval"`
	UrgentCases      int     `json:"urgent_cases"`
	ApprovalRate     float64 `json:"approval_rate"`
	AvgApprovalDays  float64 `json:"avg_approval_days"`
}

// FinanceiroMetrics is the client finance dashboard.
type FinanceiroMetrics struct {
	TotalRevenue    float64 `json:"total_revenue"`
	PendingPayments float64 `json:"pending_payments"`
	OverduePayments float64 `json:"overdue_payments"`
	CasesThisMonth  int     `json:"cases_this_month"`
	AvgTicket       float64 `json:"avg_ticket"`
	CollectionRate  float64 `json:"collection_rate"`
}

// ComumMetrics is the generic client dashboard.
type ComumMetrics struct {
	TotalCases       int `json:"total_cases"`
	ActiveCases      int `json:"active_cases"`
	ResolvedCases    int `json:"resolved_cases"`
	AwaitingApproval int `json:"awaiting_approval"`
	CasesThisMonth   int `json:"cases_this_month"`
}
