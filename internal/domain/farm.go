package domain

import "time"

// Farm is a producer profile on the marketplace.
type Farm struct {
	ID           string      `json:"id"`
	FarmerID     string      `json:"farmer_id"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	District     string      `json:"district"`
	Contact      FarmContact `json:"contact"`
	Description  string      `json:"description"`
	Practices    []string    `json:"practices,omitempty"`
	Images       []string    `json:"images,omitempty"`
	Verified     bool        `json:"verified"`
	Rating       float64     `json:"rating"`
	TotalReviews int         `json:"total_reviews"`
	CreatedAt    time.Time   `json:"created_at"`
}

// FarmContact holds a farm's contact channels.
type FarmContact struct {
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}
