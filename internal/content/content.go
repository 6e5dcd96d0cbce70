// Package content holds the fixed marketing content served by the portal.
// The marketing pages are static renderers of this table; nothing here is
// user-editable at runtime.
package content

// CompanyInfo describes the company behind the portal.
type CompanyInfo struct {
	Name     string   `json:"name"`
	Country  string   `json:"country"`
	Director string   `json:"director"`
	Email    string   `json:"email"`
	Phones   []string `json:"phones"`
	POBox    string   `json:"po_box"`
	Location string   `json:"location"`
	WhatsApp string   `json:"whatsapp"`
}

// Service is one entry of the service catalogue.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Company is the single source of company contact details.
var Company = CompanyInfo{
	Name:     "FOTABONG ROYAL ENTERPRISE",
	Country:  "Cameroon",
	Director: "Prince Fotabong Chris",
	Email:    "forecam2007@yahoo.com",
	Phones:   []string{"+237 233 351 905", "+237 675 000 459"},
	POBox:    "P.O Box 43, Tiko",
	Location: "Tiko Golf Layout, Cameroon",
	WhatsApp: "+237675000459",
}

// Services is the fixed service catalogue shown on the marketing pages.
var Services = []Service{
	{
		Title:       "Civil Engineering",
		Description: "Expert execution of buildings, roads, and bridges for government and private sectors.",
		Icon:        "Building2",
	},
	{
		Title:       "Land Services",
		Description: "Land acquisition in preferred locations and processing of legal land titles.",
		Icon:        "Map",
	},
	{
		Title:       "Design & Costing",
		Description: "Architectural design, Bill of Quantities (BOQ), and detailed cost estimation.",
		Icon:        "Ruler",
	},
	{
		Title:       "Construction Finance",
		Description: "Residential construction with flexible installment-based payment plans.",
		Icon:        "Wallet",
	},
	{
		Title:       "Property Management",
		Description: "Professional management, maintenance, and rehabilitation of existing properties.",
		Icon:        "Shield",
	},
	{
		Title:       "Material Supply",
		Description: "Sourcing and supply of certified construction materials at competitive rates.",
		Icon:        "Truck",
	},
}
