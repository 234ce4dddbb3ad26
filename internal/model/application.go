package model

// Application statuses move pending -> approved|rejected via the admin panel.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// Application is a membership application submitted from the public site.
type Application struct {
	ID          string  `json:"id" bson:"id"`
	UserID      string  `json:"userId,omitempty" bson:"userId,omitempty"`
	FullName    string  `json:"fullName" bson:"fullName"`
	Email       string  `json:"email" bson:"email"`
	Phone       string  `json:"phone" bson:"phone"`
	Position    string  `json:"position,omitempty" bson:"position,omitempty"`
	School      string  `json:"school,omitempty" bson:"school,omitempty"`
	Status      string  `json:"status" bson:"status"`
	Notes       string  `json:"notes,omitempty" bson:"notes,omitempty"`
	SubmittedAt string  `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
	ProcessedAt *string `json:"processedAt" bson:"processedAt"`
	CreatedAt   string  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string  `json:"updatedAt" bson:"updatedAt"`
}

// BeasiswaApplication is an application against a specific scholarship.
type BeasiswaApplication struct {
	ID            string  `json:"id" bson:"id"`
	BeasiswaID    string  `json:"beasiswaId" bson:"beasiswaId"`
	BeasiswaTitle string  `json:"beasiswaTitle" bson:"beasiswaTitle"`
	FullName      string  `json:"fullName" bson:"fullName"`
	Email         string  `json:"email" bson:"email"`
	Phone         string  `json:"phone" bson:"phone"`
	Education     string  `json:"education" bson:"education"`
	GPA           string  `json:"gpa" bson:"gpa"`
	Motivation    string  `json:"motivation" bson:"motivation"`
	Status        string  `json:"status" bson:"status"`
	Notes         string  `json:"notes" bson:"notes"`
	SubmittedAt   string  `json:"submittedAt" bson:"submittedAt"`
	ProcessedAt   *string `json:"processedAt" bson:"processedAt"`
	CreatedAt     string  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     string  `json:"updatedAt" bson:"updatedAt"`
}
