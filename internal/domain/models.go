package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an internal staff member or an external client user.
// Internal users carry a MainDepartment; client users carry a ClientProfile.
type User struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Email          string         `db:"email" json:"email"`
	PasswordHash   string         `db:"password_hash" json:"-"`
	FullName       string         `db:"full_name" json:"full_name"`
	IsAdmin        bool           `db:"is_admin" json:"is_admin"`
	IsClient       bool           `db:"is_client" json:"is_client"`
	MainDepartment *Department    `db:"main_department" json:"main_department,omitempty"`
	ClientProfile  *ClientProfile `db:"client_profile" json:"client_profile,omitempty"`
	Company        string         `db:"company" json:"company"`
	IsActive       bool           `db:"is_active" json:"is_active"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// Brand represents a protected brand referenced by cases.
type Brand struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	OwnerCompany string    `db:"owner_company" json:"owner_company"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Case is a tracked instance of a suspected counterfeit under investigation.
type Case struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	Code           string       `db:"code" json:"code"`
	DebtorName     string       `db:"debtor_name" json:"debtor_name"`
	DebtorState    string       `db:"debtor_state" json:"debtor_state"`
	AssignedTo     uuid.UUID    `db:"assigned_to" json:"assigned_to"`
	BrandID        *uuid.UUID   `db:"brand_id" json:"brand_id,omitempty"`
	Status         CaseStatus   `db:"status" json:"status"`
	Priority       CasePriority `db:"priority" json:"priority"`
	SourceURL      string       `db:"source_url" json:"source_url"`
	TotalAmount    float64      `db:"total_amount" json:"total_amount"`
	CurrentPayment float64      `db:"current_payment" json:"current_payment"`
	ResolvedAt     *time.Time   `db:"resolved_at" json:"resolved_at,omitempty"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updated_at"`
}

// Payment is an indemnification installment owed on a case.
type Payment struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	CaseID    uuid.UUID     `db:"case_id" json:"case_id"`
	Amount    float64       `db:"amount" json:"amount"`
	Status    PaymentStatus `db:"status" json:"status"`
	DueDate   *time.Time    `db:"due_date" json:"due_date,omitempty"`
	PaidAt    *time.Time    `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// Interaction is a logged contact or follow-up on a case.
type Interaction struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	CaseID     uuid.UUID       `db:"case_id" json:"case_id"`
	UserID     uuid.UUID       `db:"user_id" json:"user_id"`
	Kind       InteractionKind `db:"kind" json:"kind"`
	Message    string          `db:"message" json:"message"`
	FollowUpAt *time.Time      `db:"follow_up_at" json:"follow_up_at,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// NotificationTemplate is a reusable text template for notifications and
// agreements. Rendering is owned by the document pipeline, not this API.
type NotificationTemplate struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Kind      TemplateKind `db:"kind" json:"kind"`
	Subject   string       `db:"subject" json:"subject"`
	Body      string       `db:"body" json:"body"`
	IsActive  bool         `db:"is_active" json:"is_active"`
	CreatedBy uuid.UUID    `db:"created_by" json:"created_by"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// EvidenceFile stores metadata about an evidence attachment on a case.
type EvidenceFile struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	CaseID       uuid.UUID      `db:"case_id" json:"case_id"`
	UploadedBy   uuid.UUID      `db:"uploaded_by" json:"uploaded_by"`
	FileName     string         `db:"file_name" json:"file_name"`
	OriginalName string         `db:"original_name" json:"original_name"`
	FileType     EvidenceType   `db:"file_type" json:"file_type"`
	FileSize     int64          `db:"file_size" json:"file_size"`
	S3Bucket     string         `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string         `db:"s3_key" json:"s3_key"`
	ContentType  string         `db:"content_type" json:"content_type"`
	Status       EvidenceStatus `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}
