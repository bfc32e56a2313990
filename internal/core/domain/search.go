package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type DateRange string

const (
	RangeWeek     DateRange = "week"
	RangeMonth    DateRange = "month"
	RangeQuarter  DateRange = "3months"
	RangeYear     DateRange = "year"
	StatusAnyFlag           = "all"
)

// Since returns the earliest theft date covered by the range, or nil when the
// range is empty.
func (r DateRange) Since(now time.Time) *time.Time {
	var t time.Time
	switch r {
	case RangeWeek:
		t = now.AddDate(0, 0, -7)
	case RangeMonth:
		t = now.AddDate(0, -1, 0)
	case RangeQuarter:
		t = now.AddDate(0, -3, 0)
	case RangeYear:
		t = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &t
}

type SearchFilters struct {
	Query     string
	Type      string
	Brand     string
	Color     string
	City      string
	DateRange DateRange
	// Statuses is never empty once normalized; it defaults to stolen and found.
	Statuses []BikeStatus
	// TheftSince is derived from DateRange when the query runs.
	TheftSince *time.Time
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Page struct {
	Number int
	Size   int
}

// Offset saturates at math.MaxInt instead of wrapping negative.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// TotalPages is ceil(total / size).
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// BikeSearch is one bike joined with its most recent theft report.
type BikeSearch struct {
	ID           uuid.UUID  `json:"id"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Type         string     `json:"type"`
	Color        string     `json:"color"`
	Year         int        `json:"year"`
	SerialNumber string     `json:"serialNumber"`
	Status       BikeStatus `json:"status"`
	ImageURL     *string    `json:"imageUrl"`
	ReportID     *uuid.UUID `json:"reportId"`
	ReportDate   *time.Time `json:"reportDate"`
	Location     *string    `json:"location"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
}

type SearchPage struct {
	Results    []*BikeSearch `json:"results"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

// MaskSerial hides the middle of a serial number for public listings.
// Serials of four characters or fewer are returned unchanged.
func MaskSerial(serial string) string {
	r := []rune(serial)
	if len(r) <= 4 {
		return serial
	}
	return string(r[:2]) + "***" + string(r[len(r)-4:])
}

// Masked returns a copy of s with the serial number masked.
func (s BikeSearch) Masked() *BikeSearch {
	s.SerialNumber = MaskSerial(s.SerialNumber)
	return &s
}

// ParseStatusFilter maps the searchStatus query value onto the bike statuses
// to match. An empty value and "all" both mean any of stolen or found.
func ParseStatusFilter(raw string) ([]BikeStatus, error) {
	switch raw {
	case "", StatusAnyFlag:
		return []BikeStatus{BikeStolen, BikeFound}, nil
	case string(BikeStolen), string(BikeFound):
		return []BikeStatus{BikeStatus(raw)}, nil
	}
	return nil, NewValidationError("searchStatus", "must be one of: stolen found all")
}

func (r DateRange) Valid() bool {
	switch r {
	case "", RangeWeek, RangeMonth, RangeQuarter, RangeYear:
		return true
	}
	return false
}
