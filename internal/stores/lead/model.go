package lead

import (
	"time"

	"github.com/google/uuid"
)

// Default values applied when generated leads omit them
const (
	DefaultSourcePlatform = "AI Generated"
	DefaultStatus         = "New"
)

// Lead represents a contact tracked locally, optionally mirrored into
// the CRM. ZohoCRMLeadID stays null until a successful sync populates it
// and is never unset afterwards.
type Lead struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	FirstName    string `json:"first_name" gorm:"column:first_name;size:255"`
	LastName     string `json:"last_name" gorm:"column:last_name;size:255;not null"`
	CompanyName  string `json:"company_name" gorm:"column:company_name;size:255;not null"`
	EmailAddress string `json:"email_address" gorm:"column:email_address;size:255"`
	PhoneNumber  string `json:"phone_number" gorm:"column:phone_number;size:64"`
	JobTitle     string `json:"job_title" gorm:"column:job_title;size:255"`
	WebsiteURL   string `json:"website_url" gorm:"column:website_url;size:500"`
	Industry     string `json:"industry" gorm:"column:industry;size:255"`
	Notes        string `json:"notes" gorm:"column:notes;type:text"`

	SourcePlatform string `json:"source_platform" gorm:"column:source_platform;size:255"`
	Status         string `json:"status" gorm:"column:status;size:64"`
	EmailOptOut    bool   `json:"email_opt_out" gorm:"column:email_opt_out;default:false"`

	AnnualRevenue *float64 `json:"annual_revenue" gorm:"column:annual_revenue"`
	NoOfEmployees *int     `json:"no_of_employees" gorm:"column:no_of_employees"`

	Street  string `json:"street" gorm:"column:street;size:255"`
	City    string `json:"city" gorm:"column:city;size:255"`
	State   string `json:"state" gorm:"column:state;size:255"`
	ZipCode string `json:"zip_code" gorm:"column:zip_code;size:32"`
	Country string `json:"country" gorm:"column:country;size:255"`

	ZohoCRMLeadID *string    `json:"zoho_crm_lead_id" gorm:"column:zoho_crm_lead_id;size:64;index"`
	UnionID       *uuid.UUID `json:"union_id" gorm:"column:union_id;type:char(36);index"`
}

// TableName sets the table name for GORM
func (Lead) TableName() string {
	return "leads"
}

// ApplyDefaults fills in the source platform and status when a generated
// lead arrives without them
func (l *Lead) ApplyDefaults() {
	if l.SourcePlatform == "" {
		l.SourcePlatform = DefaultSourcePlatform
	}
	if l.Status == "" {
		l.Status = DefaultStatus
	}
}
