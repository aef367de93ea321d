package domain

import "time"

// Inquiry is a contact-form submission from a prospective buyer.
type Inquiry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Settings holds the site configuration exposed publicly (contact details)
// and editable from the admin back office.
type Settings struct {
	SiteName       string `json:"siteName,omitempty"`
	WhatsAppNumber string `json:"whatsapp_number"`
	CompanyEmail   string `json:"company_email,omitempty"`
	CompanyPhone   string `json:"company_phone,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalPlots      int `json:"totalPlots"`
	TotalHouses     int `json:"totalHouses"`
	TotalInquiries  int `json:"totalInquiries"`
	UnreadInquiries int `json:"unreadInquiries"`
}
