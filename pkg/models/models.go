package models

import (
	"strings"
	"time"
)

// RequirementStatus is the displayed state of a checklist requirement
type RequirementStatus string

const (
	StatusPending   RequirementStatus = "pending"
	StatusCompleted RequirementStatus = "completed"
	StatusOverdue   RequirementStatus = "overdue"
)

// RequirementCategory groups checklist items
type RequirementCategory string

const (
	CategoryDocuments      RequirementCategory = "documents"
	CategoryForms          RequirementCategory = "forms"
	CategoryCertifications RequirementCategory = "certifications"
	CategoryOther          RequirementCategory = "other"
)

// Requirement represents a checklist item a student must satisfy
type Requirement struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      RequirementCategory `json:"category"`
	Status        RequirementStatus   `json:"status"`
	DueDate       *time.Time          `json:"due_date,omitempty"`
	UploadedFiles []FileRef           `json:"uploaded_files"`
	IsRequired    bool                `json:"is_required"`
	Notes         string              `json:"notes,omitempty"`
}

// FileKind discriminates the three uploaded-file record shapes
type FileKind string

const (
	FileKindLegacy FileKind = "legacy" // bare file name, no storage metadata
	FileKindBlob   FileKind = "blob"   // stored in the blob store, addressed by Path
	FileKindInline FileKind = "inline" // base64 payload embedded in the document
)

// FileRef is a reference to an uploaded artifact. Exactly one Requirement
// owns each FileRef through its UploadedFiles list.
type FileRef struct {
	Kind        FileKind  `json:"kind"`
	Name        string    `json:"name"`
	URL         string    `json:"url,omitempty"`
	Path        string    `json:"path,omitempty"`
	InlineData  string    `json:"inline_data,omitempty"` // base64
	ContentType string    `json:"content_type,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
	RecordID    string    `json:"record_id,omitempty"` // admin-side mirror document, lives and dies with this ref
}

// ApplicationStatus is the lifecycle of a company application
type ApplicationStatus string

const (
	AppNotApplied ApplicationStatus = "not_applied"
	AppPending    ApplicationStatus = "pending"
	AppApproved   ApplicationStatus = "approved"
	AppRejected   ApplicationStatus = "rejected"
)

// Application represents a student's application to one company
type Application struct {
	ID        string            `json:"id"`
	CompanyID string            `json:"company_id"`
	Company   string            `json:"company"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt *time.Time        `json:"applied_at,omitempty"`
	Notes     string            `json:"notes,omitempty"`
}

// Company is a partner company a student can apply to
type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Field    string `json:"field"`
}

// LocationPreference holds the student's work setup preferences
type LocationPreference struct {
	Remote bool `json:"remote"`
	Onsite bool `json:"onsite"`
	Hybrid bool `json:"hybrid"`
}

// Any reports whether at least one preference is selected
func (p LocationPreference) Any() bool {
	return p.Remote || p.Onsite || p.Hybrid
}

// OJTStatus tracks on-the-job training placement and hours
type OJTStatus struct {
	IsHired        bool    `json:"is_hired"`
	CurrentCompany string  `json:"current_company,omitempty"`
	CompletedHours float64 `json:"completed_hours"`
	RequiredHours  float64 `json:"required_hours"`
}

// UserProfile is the student's profile document
type UserProfile struct {
	ID                 string             `json:"id"`
	Email              string             `json:"email"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Gender             string             `json:"gender"`
	Program            string             `json:"program"`
	Field              string             `json:"field"`
	Skills             []string           `json:"skills"`
	LocationPreference LocationPreference `json:"location_preference"`
	OJT                OJTStatus          `json:"ojt_status"`
	MustChangePassword bool               `json:"must_change_password"`
	PolicyAcknowledged bool               `json:"policy_acknowledged"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// IsProfileComplete reports whether all required setup fields are filled:
// first/last name, gender, program, field, at least one skill and one
// location preference.
func (u *UserProfile) IsProfileComplete() bool {
	required := []string{u.FirstName, u.LastName, u.Gender, u.Program, u.Field}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return len(u.Skills) > 0 && u.LocationPreference.Any()
}

// HourLog is a single logged OJT work entry. Hours stays a string at the
// edge; parsing and validation happen in the progress calculator.
type HourLog struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Hours    string    `json:"hours"`
	Activity string    `json:"activity,omitempty"`
}
