package models

import (
	"time"

	"github.com/gocql/gocql"
)

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

func (s JobStatus) Valid() bool {
	return s == JobOpen || s == JobClosed
}

type Job struct {
	ID          gocql.UUID `json:"id" db:"job_id"`
	Role        string     `json:"role" db:"role"`
	Description string     `json:"description" db:"description"`
	Location    string     `json:"location" db:"location"`
	Type        string     `json:"type" db:"type"` // Full-time, Part-time, ...
	Salary      string     `json:"salary" db:"salary"`
	Status      JobStatus  `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// ApplicationStatus moves from pending to exactly one of the review outcomes;
// there are no reverse transitions.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationRejected ApplicationStatus = "rejected"
	ApplicationHired    ApplicationStatus = "hired"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:  {ApplicationReviewed, ApplicationRejected, ApplicationHired},
	ApplicationReviewed: {ApplicationRejected, ApplicationHired},
	ApplicationRejected: {},
	ApplicationHired:    {},
}

func (s ApplicationStatus) Valid() bool {
	_, ok := applicationTransitions[s]
	return ok
}

func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Withdrawable reports whether the applicant may still self-service delete.
func (s ApplicationStatus) Withdrawable() bool {
	return s == ApplicationPending
}

type JobApplication struct {
	ID        gocql.UUID        `json:"id" db:"application_id"`
	JobID     gocql.UUID        `json:"jobId" db:"job_id"`
	UserID    *gocql.UUID       `json:"userId,omitempty" db:"user_id"` // nil for guest applicants
	Name      string            `json:"name" db:"name"`
	Email     string            `json:"email" db:"email"`
	Phone     string            `json:"phone" db:"phone"`
	Answers   map[string]string `json:"answers,omitempty" db:"answers"`
	Status    ApplicationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
}
