package domain

import "time"

// ListingStatus represents the sale state of a plot or house.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "AVAILABLE"
	StatusReserved  ListingStatus = "RESERVED"
	StatusSold      ListingStatus = "SOLD"
)

// MediaFile is a reference to an uploaded image or video asset.
type MediaFile struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
	SortOrder int    `json:"sortOrder,omitempty"`
}

// Plot is a land-plot listing. The backend owns the authoritative copy; the
// client never caches listings beyond a single page render.
type Plot struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location"`
	Size        float64       `json:"size"`
	SizeUnit    string        `json:"sizeUnit,omitempty"`
	Price       float64       `json:"price"`
	Currency    string        `json:"currency,omitempty"`
	Status      ListingStatus `json:"status"`
	Latitude    float64       `json:"latitude,omitempty"`
	Longitude   float64       `json:"longitude,omitempty"`
	VideoURL    string        `json:"videoUrl,omitempty"`
	Featured    bool          `json:"featured,omitempty"`
	Images      []MediaFile   `json:"images,omitempty"`
	CreatedAt   time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt,omitempty"`
}

// House is a house listing. It shares the plot fields and adds the
// house-specific ones.
type House struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location"`
	Type        string        `json:"type,omitempty"`
	Size        float64       `json:"size"`
	SizeUnit    string        `json:"sizeUnit,omitempty"`
	Price       float64       `json:"price"`
	Currency    string        `json:"currency,omitempty"`
	Status      ListingStatus `json:"status"`
	Bedrooms    int           `json:"bedrooms,omitempty"`
	Bathrooms   int           `json:"bathrooms,omitempty"`
	YearBuilt   int           `json:"yearBuilt,omitempty"`
	Features    []string      `json:"features,omitempty"`
	VideoURL    string        `json:"videoUrl,omitempty"`
	Featured    bool          `json:"featured,omitempty"`
	Images      []MediaFile   `json:"images,omitempty"`
	CreatedAt   time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt,omitempty"`
}
