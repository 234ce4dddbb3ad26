package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBeasiswaStatus_BeforeStart(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	got := BeasiswaStatus("2025-02-01", "2025-03-01", now)
	require.Equal(t, StatusSegera, got)
}

func TestBeasiswaStatus_WithinWindow(t *testing.T) {
	now := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)
	got := BeasiswaStatus("2025-02-01", "2025-03-01", now)
	require.Equal(t, StatusBuka, got)
}

func TestBeasiswaStatus_PastDeadline(t *testing.T) {
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	got := BeasiswaStatus("2025-02-01", "2025-03-01", now)
	require.Equal(t, StatusTutup, got)
}

func TestBeasiswaStatus_InclusiveBounds(t *testing.T) {
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, StatusBuka, BeasiswaStatus("2025-02-01", "2025-03-01", start))
	require.Equal(t, StatusBuka, BeasiswaStatus("2025-02-01", "2025-03-01", end))
	require.Equal(t, StatusTutup, BeasiswaStatus("2025-02-01", "2025-03-01", end.Add(time.Second)))
	require.Equal(t, StatusSegera, BeasiswaStatus("2025-02-01", "2025-03-01", start.Add(-time.Second)))
}

func TestBeasiswaStatus_RFC3339Dates(t *testing.T) {
	now := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)
	got := BeasiswaStatus("2025-02-01T00:00:00Z", "2025-03-01T00:00:00Z", now)
	require.Equal(t, StatusBuka, got)
}

func TestBeasiswaStatus_UnparseableDates(t *testing.T) {
	now := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)
	require.Equal(t, StatusTutup, BeasiswaStatus("not-a-date", "2025-03-01", now))
	require.Equal(t, StatusTutup, BeasiswaStatus("2025-02-01", "", now))
}

func TestWithStatus_OverwritesStoredStatus(t *testing.T) {
	b := Beasiswa{
		TanggalMulai: "2020-01-01",
		Deadline:     "2020-06-01",
		Status:       StatusBuka, // stale
	}
	got := b.WithStatus(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, StatusTutup, got.Status)
	require.Equal(t, StatusBuka, b.Status, "receiver must not be mutated")
}
