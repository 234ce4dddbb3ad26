package model

import "time"

// Beasiswa status values. Status is never stored as ground truth; every read
// recomputes it from the two dates and the wall clock.
const (
	StatusSegera = "Segera" // before tanggal_mulai
	StatusBuka   = "Buka"   // between tanggal_mulai and deadline, inclusive
	StatusTutup  = "Tutup"  // past deadline
)

// Beasiswa is a scholarship listing.
type Beasiswa struct {
	ID           string   `json:"id" bson:"id"`
	Judul        string   `json:"judul" bson:"judul"`
	Nominal      string   `json:"nominal" bson:"nominal"`
	Deadline     string   `json:"deadline" bson:"deadline"`
	TanggalMulai string   `json:"tanggal_mulai" bson:"tanggal_mulai"`
	Status       string   `json:"status" bson:"status"`
	Deskripsi    string   `json:"deskripsi" bson:"deskripsi"`
	Persyaratan  []string `json:"persyaratan" bson:"persyaratan"`
	Kategori     string   `json:"kategori" bson:"kategori"`
	CreatedAt    string   `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string   `json:"updatedAt" bson:"updatedAt"`
}

// WithStatus returns a copy with Status recomputed against now.
func (b Beasiswa) WithStatus(now time.Time) Beasiswa {
	b.Status = BeasiswaStatus(b.TanggalMulai, b.Deadline, now)
	return b
}

// BeasiswaStatus derives the listing status from its date range. Boundaries
// are inclusive on both ends. Unparseable dates yield Tutup.
func BeasiswaStatus(tanggalMulai, deadline string, now time.Time) string {
	start, errStart := parseDate(tanggalMulai)
	end, errEnd := parseDate(deadline)
	if errStart != nil || errEnd != nil {
		return StatusTutup
	}
	switch {
	case now.Before(start):
		return StatusSegera
	case !now.After(end):
		return StatusBuka
	default:
		return StatusTutup
	}
}

// parseDate accepts the date-only form used by the admin UI as well as full
// RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
