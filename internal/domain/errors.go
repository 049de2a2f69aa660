package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateCaseCode    = errors.New("case code already exists")
	ErrDuplicateBrandName   = errors.New("brand name already exists")
	ErrInvalidCaseStatus    = errors.New("invalid case status")
	ErrInvalidPriority      = errors.New("invalid case priority")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidDepartment    = errors.New("invalid department")
	ErrInvalidProfile       = errors.New("invalid client profile")
	ErrInvalidDashboard     = errors.New("invalid dashboard type")
	ErrInvalidInteraction   = errors.New("invalid interaction kind")
	ErrInvalidTemplateKind  = errors.New("invalid template kind")
	ErrBrandInUse           = errors.New("brand is referenced by cases")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("file upload to storage failed")
)
