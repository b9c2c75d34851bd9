package union

import (
	"time"

	"github.com/google/uuid"
)

// Union represents a labor-union organization found through research
type Union struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	Name           string `json:"name" gorm:"column:name;size:500;not null"`
	Website        string `json:"website" gorm:"column:website;size:500"`
	Email          string `json:"email" gorm:"column:email;size:255"`
	Phone          string `json:"phone" gorm:"column:phone;size:64"`
	Address        string `json:"address" gorm:"column:address;size:500"`
	UnionType      string `json:"union_type" gorm:"column:union_type;size:255"`
	Industry       string `json:"industry" gorm:"column:industry;size:255"`
	LocalNumber    string `json:"local_number" gorm:"column:local_number;size:64"`
	State          string `json:"state" gorm:"column:state;size:255"`
	Country        string `json:"country" gorm:"column:country;size:255"`
	MembershipInfo string `json:"membership_info" gorm:"column:membership_info;type:text"`
}

// TableName sets the table name for GORM
func (Union) TableName() string {
	return "unions"
}

// SearchResult records one AI research run: the raw text the model
// returned, its citations, and how many unions were extracted from it
type SearchResult struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`

	SearchType   string `json:"search_type" gorm:"column:search_type;size:32;not null"`
	SearchParams string `json:"search_params" gorm:"column:search_params;type:text"`
	RawResults   string `json:"raw_results" gorm:"column:raw_results;type:mediumtext"`
	Sources      string `json:"sources" gorm:"column:sources;type:text"`
	UnionsFound  int    `json:"unions_found" gorm:"column:unions_found"`
}

// TableName sets the table name for GORM
func (SearchResult) TableName() string {
	return "search_results"
}
