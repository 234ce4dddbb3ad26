package model

// DownloadRecord is one entry in a user's download history.
type DownloadRecord struct {
	ID           string `json:"id" bson:"id"`
	FileName     string `json:"fileName,omitempty" bson:"fileName,omitempty"`
	DownloadedAt string `json:"downloadedAt,omitempty" bson:"downloadedAt,omitempty"`
}

// User is a registered account. Password holds the bcrypt hash and is
// omitted from JSON when empty, so handlers respond with Sanitized copies.
type User struct {
	ID              string           `json:"id" bson:"id"`
	FullName        string           `json:"fullName" bson:"fullName"`
	Email           string           `json:"email" bson:"email"`
	Username        string           `json:"username,omitempty" bson:"username,omitempty"`
	Password        string           `json:"password,omitempty" bson:"password,omitempty"`
	Role            string           `json:"role" bson:"role"`
	Certificates    []string         `json:"certificates,omitempty" bson:"certificates,omitempty"`
	Downloads       int              `json:"downloads" bson:"downloads"`
	LastDownload    *string          `json:"lastDownload" bson:"lastDownload"`
	DownloadHistory []DownloadRecord `json:"downloadHistory,omitempty" bson:"downloadHistory,omitempty"`
	ProfileImage    string           `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	CreatedAt       string           `json:"createdAt" bson:"createdAt"`
	UpdatedAt       string           `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Sanitized returns a copy safe to serialize in API responses.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Session is an issued login token record with a fixed 24h lifetime.
type Session struct {
	ID        string `json:"id" bson:"id"`
	UserID    string `json:"userId" bson:"userId"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
	ExpiresAt string `json:"expiresAt" bson:"expiresAt"`
}
