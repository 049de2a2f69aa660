package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"ana@markguard.app"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email          string `json:"email" binding:"required" example:"joao@markguard.app"`
	Password       string `json:"password" example:"securepassword123"`
	FullName       string `json:"full_name" binding:"required" example:"Joao Silva"`
	IsAdmin        bool   `json:"is_admin" example:"false"`
	IsClient       bool   `json:"is_client" example:"false"`
	MainDepartment string `json:"main_department" example:"atendimento"`
	ClientProfile  string `json:"client_profile" example:"gestor"`
	Company        string `json:"company" example:"Acme Ltda"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	Email    string `json:"email" example:"joao@markguard.app"`
	FullName string `json:"full_name" example:"Joao Silva"`
	IsActive bool   `json:"is_active" example:"true"`
}

// CreateBrandRequest represents the create brand request body.
type CreateBrandRequest struct {
	Name         string `json:"name" binding:"required" example:"Norte Calcados"`
	OwnerCompany string `json:"owner_company" binding:"required" example:"Norte Industria SA"`
}

// UpdateBrandRequest represents the update brand request body.
type UpdateBrandRequest struct {
	Name         string `json:"name" example:"Norte Calcados"`
	OwnerCompany string `json:"owner_company" example:"Norte Industria SA"`
	IsActive     bool   `json:"is_active" example:"true"`
}

// CreateCaseRequest represents the create case request body.
type CreateCaseRequest struct {
	Code        string  `json:"code" example:"MG-2026-7F3A2B1C"`
	DebtorName  string  `json:"debtor_name" binding:"required" example:"Loja Paralela ME"`
	DebtorState string  `json:"debtor_state" binding:"required" example:"SP"`
	AssignedTo  string  `json:"assigned_to" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	BrandID     string  `json:"brand_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Priority    string  `json:"priority" example:"high"`
	SourceURL   string  `json:"source_url" example:"https://marketplace.example/listing/123"`
	TotalAmount float64 `json:"total_amount" example:"15000.00"`
}

// UpdateCaseRequest represents the update case request body.
type UpdateCaseRequest struct {
	DebtorName  string  `json:"debtor_name" example:"Loja Paralela ME"`
	DebtorState string  `json:"debtor_state" example:"SP"`
	Priority    string  `json:"priority" example:"urgent"`
	TotalAmount float64 `json:"total_amount" example:"18000.00"`
}

// CreatePaymentRequest represents the create payment request body.
type CreatePaymentRequest struct {
	CaseID  string  `json:"case_id" binding:"required" example:"770e8400-e29b-41d4-a716-446655440002"`
	Amount  float64 `json:"amount" binding:"required" example:"2500.00"`
	DueDate string  `json:"due_date" example:"2026-10-15T00:00:00Z"`
}

// UpdatePaymentStatusRequest represents the payment status transition body.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required" example:"paid"`
}

// CreateInteractionRequest represents the log interaction request body.
type CreateInteractionRequest struct {
	CaseID     string `json:"case_id" binding:"required" example:"770e8400-e29b-41d4-a716-446655440002"`
	Kind       string `json:"kind" binding:"required" example:"notification"`
	Message    string `json:"message" binding:"required" example:"Extrajudicial notification sent to debtor"`
	FollowUpAt string `json:"follow_up_at" example:"2026-09-10T14:00:00Z"`
}

// CreateTemplateRequest represents the create template request body.
type CreateTemplateRequest struct {
	Name    string `json:"name" binding:"required" example:"Standard notification"`
	Kind    string `json:"kind" binding:"required" example:"notification"`
	Subject string `json:"subject" binding:"required" example:"Notification of trademark infringement"`
	Body    string `json:"body" binding:"required" example:"Dear {{debtor_name}}, ..."`
}

// UpdateTemplateRequest represents the update template request body.
type UpdateTemplateRequest struct {
	Name     string `json:"name" example:"Standard notification v2"`
	Subject  string `json:"subject" example:"Notification of trademark infringement"`
	Body     string `json:"body" example:"Dear {{debtor_name}}, ..."`
	IsActive bool   `json:"is_active" example:"true"`
}

// --- Response Types ---

// DownloadURLResponse represents a presigned download URL.
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url" example:"https://markguard-evidence.s3.sa-east-1.amazonaws.com/..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
