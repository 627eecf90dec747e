package domain

import (
	"errors"
	"time"
)

// ComplaintStatus represents the triage state of a complaint.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
)

// Valid reports whether s is one of the recognised triage states.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// MaxDescriptionLen bounds the free-text description of a complaint.
const MaxDescriptionLen = 500

// complaintCategories is the closed set of categories a student may file under.
var complaintCategories = map[string]struct{}{
	"Bathroom":       {},
	"Water Cooler":   {},
	"Room":           {},
	"Electricity":    {},
	"Mess/Food":      {},
	"Internet/Wi-Fi": {},
	"Hygiene":        {},
	"Furniture":      {},
	"Other":          {},
}

// ValidCategory reports whether category is a member of the enumerated set.
func ValidCategory(category string) bool {
	_, ok := complaintCategories[category]
	return ok
}

var ErrComplaintNotFound = errors.New("complaint not found")
var ErrInvalidStatus = errors.New("invalid status value")
var ErrInvalidCategory = errors.New("invalid complaint category")
var ErrDescriptionTooLong = errors.New("description cannot be more than 500 characters")
var ErrDuplicateComplaint = errors.New("an identical complaint was submitted moments ago")

// Complaint is a single issue filed by a student.
//
// StudentName and StudentEmail are always bound from the caller's session at
// creation time and never accepted from the request payload. StudentEmail is
// immutable after creation; the only mutable field is Status.
type Complaint struct {
	ID           string          `json:"id" bson:"-"`
	StudentName  string          `json:"studentName" bson:"studentName"`
	StudentEmail string          `json:"studentEmail" bson:"studentEmail"`
	RoomNumber   string          `json:"roomNumber" bson:"roomNumber"`
	Category     string          `json:"category" bson:"category"`
	Description  string          `json:"description" bson:"description"`
	Status       ComplaintStatus `json:"status" bson:"status"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
}
