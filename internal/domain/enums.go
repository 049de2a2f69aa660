package domain

// CaseStatus represents the lifecycle status of a case.
type CaseStatus string

const (
	CaseStatusNew              CaseStatus = "new"
	CaseStatusInAnalysis       CaseStatus = "in_analysis"
	CaseStatusAwaitingApproval CaseStatus = "awaiting_approval"
	CaseStatusInNegotiation    CaseStatus = "in_negotiation"
	CaseStatusProposalAccepted CaseStatus = "proposal_accepted"
	CaseStatusApproved         CaseStatus = "approved"
	CaseStatusRejected         CaseStatus = "rejected"
	CaseStatusResolved         CaseStatus = "resolved"
	CaseStatusCancelled        CaseStatus = "cancelled"
)

// ValidCaseStatuses is the closed set of accepted case statuses.
var ValidCaseStatuses = map[CaseStatus]bool{
	CaseStatusNew:              true,
	CaseStatusInAnalysis:       true,
	CaseStatusAwaitingApproval: true,
	CaseStatusInNegotiation:    true,
	CaseStatusProposalAccepted: true,
	CaseStatusApproved:         true,
	CaseStatusRejected:         true,
	CaseStatusResolved:         true,
	CaseStatusCancelled:        true,
}

// ActiveCaseStatuses are the statuses counted as "active" on dashboards.
var ActiveCaseStatuses = []CaseStatus{
	CaseStatusNew,
	CaseStatusInAnalysis,
	CaseStatusProposalAccepted,
}

// CasePriority represents the urgency of a case.
type CasePriority string

const (
	PriorityLow    CasePriority = "low"
	PriorityMedium CasePriority = "medium"
	PriorityHigh   CasePriority = "high"
	PriorityUrgent CasePriority = "urgent"
)

// ValidCasePriorities is the closed set of accepted priorities.
var ValidCasePriorities = map[CasePriority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

// PaymentStatus represents the lifecycle of an indemnification payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ValidPaymentStatuses is the closed set of accepted payment statuses.
var ValidPaymentStatuses = map[PaymentStatus]bool{
	PaymentStatusPending:   true,
	PaymentStatusConfirmed: true,
	PaymentStatusOverdue:   true,
	PaymentStatusPaid:      true,
	PaymentStatusFailed:    true,
}

// Department is an internal operational unit. Values keep the
// Portuguese names used across the product.
type Department string

const (
	DeptAtendimento Department = "atendimento"
	DeptProspeccao  Department = "prospeccao"
	DeptVerificacao Department = "verificacao"
	DeptAuditoria   Department = "auditoria"
	DeptLogistica   Department = "logistica"
	DeptIPTools     Department = "ip_tools"
	DeptFinanceiro  Department = "financeiro"
)

// ValidDepartments is the closed set of departments. A valid department
// without a dedicated dashboard routine falls back to the generic
// analyst dashboard at runtime; so does an unknown string.
var ValidDepartments = map[Department]bool{
	DeptAtendimento: true,
	DeptProspeccao:  true,
	DeptVerificacao: true,
	DeptAuditoria:   true,
	DeptLogistica:   true,
	DeptIPTools:     true,
	DeptFinanceiro:  true,
}

// ClientProfile is the functional role of an external client user.
type ClientProfile string

const (
	ProfileGestor              ClientProfile = "gestor"
	ProfileAnalistaContrafacao ClientProfile = "analista_contrafacao"
	ProfileFinanceiro          ClientProfile = "financeiro"
	ProfileComum               ClientProfile = "comum"
)

// ValidClientProfiles is the closed set of client profiles. Unset or
// unknown profiles resolve to the comum dashboard.
var ValidClientProfiles = map[ClientProfile]bool{
	ProfileGestor:              true,
	ProfileAnalistaContrafacao: true,
	ProfileFinanceiro:          true,
	ProfileComum:               true,
}

// InteractionKind classifies a logged contact on a case.
type InteractionKind string

const (
	InteractionNotification InteractionKind = "notification"
	InteractionWhatsApp     InteractionKind = "whatsapp"
	InteractionEmail        InteractionKind = "email"
	InteractionPhone        InteractionKind = "phone"
	InteractionNote         InteractionKind = "note"
)

// ValidInteractionKinds is the closed set of interaction kinds.
var ValidInteractionKinds = map[InteractionKind]bool{
	InteractionNotification: true,
	InteractionWhatsApp:     true,
	InteractionEmail:        true,
	InteractionPhone:        true,
	InteractionNote:         true,
}

// TemplateKind classifies a notification template.
type TemplateKind string

const (
	TemplateNotification TemplateKind = "notification"
	TemplateAgreement    TemplateKind = "agreement"
	TemplateEmail        TemplateKind = "email"
)

// ValidTemplateKinds is the closed set of template kinds.
var ValidTemplateKinds = map[TemplateKind]bool{
	TemplateNotification: true,
	TemplateAgreement:    true,
	TemplateEmail:        true,
}

// EvidenceType represents the allowed evidence file types.
type EvidenceType string

const (
	EvidencePDF EvidenceType = "pdf"
	EvidenceJPG EvidenceType = "jpg"
	EvidencePNG EvidenceType = "png"
)

// AllowedEvidenceContentTypes maps MIME content types back to EvidenceType.
var AllowedEvidenceContentTypes = map[string]EvidenceType{
	"application/pdf": EvidencePDF,
	"image/jpeg":      EvidenceJPG,
	"image/png":       EvidencePNG,
}

// AllowedEvidenceExtensions maps file extensions to EvidenceType.
var AllowedEvidenceExtensions = map[string]EvidenceType{
	"pdf":  EvidencePDF,
	"jpg":  EvidenceJPG,
	"jpeg": EvidenceJPG,
	"png":  EvidencePNG,
}

// EvidenceContentTypes maps EvidenceType to its canonical MIME type.
var EvidenceContentTypes = map[EvidenceType]string{
	EvidencePDF: "application/pdf",
	EvidenceJPG: "image/jpeg",
	EvidencePNG: "image/png",
}

// EvidenceStatus represents the lifecycle of an uploaded evidence file.
type EvidenceStatus string

const (
	EvidenceStatusPending  EvidenceStatus = "pending"
	EvidenceStatusUploaded EvidenceStatus = "uploaded"
	EvidenceStatusDeleted  EvidenceStatus = "deleted"
)
