// Package clinic holds the static clinic configuration and service catalog.
// Everything here is read-only reference data, loaded once at startup and
// shared by the chatbot, the content endpoints, and the SEO builders.
package clinic

import "fmt"

// Address is the clinic's physical location.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Full   string `json:"full"`
}

// DayHours pairs a weekday name with its display hours ("Closed" for no hours).
type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// GoogleReviews is the clinic's published Google rating.
type GoogleReviews struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// SocialLinks holds the clinic's social profiles.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Google    string `json:"google"`
}

// SiteConfig is the root clinic configuration.
type SiteConfig struct {
	Name     string        `json:"name"`
	Tagline  string        `json:"tagline"`
	URL      string        `json:"url"`
	Phone    string        `json:"phone"`
	PhoneRaw string        `json:"phone_raw"`
	Email    string        `json:"email"`
	Address  Address       `json:"address"`
	Hours    []DayHours    `json:"hours"`
	Social   SocialLinks   `json:"social"`
	Reviews  GoogleReviews `json:"google_reviews"`
}

// Provider is a member of the care team.
type Provider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Credentials string `json:"credentials"`
	Title       string `json:"title"`
	Bio         string `json:"bio"`
	Specialty   string `json:"specialty"`
}

// InsurancePartner is an accepted payer.
type InsurancePartner struct {
	Name string `json:"name"`
}

// Service is a catalog summary entry. Full detail lives in ServiceDetail.
type Service struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Description string `json:"description"`
}

// Site is the clinic configuration. Hours are kept as an ordered slice so
// rendered output is always Monday through Sunday.
var Site = SiteConfig{
	Name:     "Perspective Health Iowa",
	Tagline:  "Experience Healthcare From A New Perspective",
	URL:      "https://perspectivehealthiowa.com",
	Phone:    "(515) 724-0377",
	PhoneRaw: "15157240377",
	Email:    "info@perspectivehealthiowa.com",
	Address: Address{
		Street: "8860 Northpark Dr, Suite 200",
		City:   "Urbandale",
		State:  "IA",
		Zip:    "50131",
		Full:   "8860 Northpark Dr, Suite 200, Urbandale, IA 50131",
	},
	Hours: []DayHours{
		{Day: "Monday", Hours: "8:00 AM – 5:00 PM"},
		{Day: "Tuesday", Hours: "8:00 AM – 5:00 PM"},
		{Day: "Wednesday", Hours: "8:00 AM – 5:00 PM"},
		{Day: "Thursday", Hours: "8:00 AM – 5:00 PM"},
		{Day: "Friday", Hours: "8:00 AM – 4:00 PM"},
		{Day: "Saturday", Hours: "Closed"},
		{Day: "Sunday", Hours: "Closed"},
	},
	Social: SocialLinks{
		Facebook:  "https://www.facebook.com/perspectivehealthiowa",
		Instagram: "https://www.instagram.com/perspectivehealthiowa",
		Google:    "https://www.google.com/maps/place/Perspective+Health+Iowa",
	},
	Reviews: GoogleReviews{Rating: 5.0, Count: 23},
}

// Providers lists the care team in display order.
var Providers = []Provider{
	{
		ID:          "audrey-gries",
		Name:        "Audrey Gries",
		Credentials: "PA-C",
		Title:       "Physician Assistant",
		Bio:         "Audrey brings a compassionate, whole-person approach to primary and integrative care. With advanced training in functional medicine and hormone health, she partners with patients to uncover the root causes of their health challenges and build personalized, sustainable wellness plans.",
		Specialty:   "Primary Care & Hormone Health",
	},
	{
		ID:          "stephanie-erdmann",
		Name:        "Stephanie Erdmann",
		Credentials: "DNP",
		Title:       "Nurse Practitioner",
		Bio:         "Stephanie is a Doctor of Nursing Practice who specializes in integrative approaches to chronic disease management and preventive wellness. She is passionate about empowering patients with the knowledge and tools to take charge of their health journey.",
		Specialty:   "Chronic Disease & Preventive Wellness",
	},
	{
		ID:          "tara-sayer",
		Name:        "Tara Sayer",
		Credentials: "RN, BSN, MSCN, CNSC",
		Title:       "Integrative And Functional Medicine Practitioner",
		Bio:         "Tara combines her extensive nursing background with specialized training in functional medicine and clinical nutrition. She focuses on digestive health, metabolic wellness, and the intricate relationship between nutrition and overall health outcomes.",
		Specialty:   "Digestive Health & Clinical Nutrition",
	},
}

// InsurancePartners lists accepted payers in display order.
var InsurancePartners = []InsurancePartner{
	{Name: "Wellmark BlueCross BlueShield"},
	{Name: "Optum / UnitedHealthcare"},
	{Name: "MidlandsChoice"},
	{Name: "Medicare"},
	{Name: "Aetna"},
	{Name: "Cigna"},
}

// Services lists the catalog summaries in display order.
var Services = []Service{
	{
		Slug:        "comprehensive-primary-care",
		Name:        "Comprehensive Primary Care",
		ShortName:   "Primary Care",
		Description: "Whole-person primary care that goes beyond symptom management to address root causes and support your long-term wellbeing.",
	},
	{
		Slug:        "hormone-health",
		Name:        "Hormone Health",
		ShortName:   "Hormone Health",
		Description: "Personalized hormone evaluation and optimization for men and women experiencing hormonal imbalances affecting quality of life.",
	},
	{
		Slug:        "integrative-functional-medicine",
		Name:        "Integrative and Functional Medicine",
		ShortName:   "Functional Medicine",
		Description: "Evidence-based integrative approaches that look at the body as an interconnected system to find and address root causes of illness.",
	},
	{
		Slug:        "digestive-metabolic-health",
		Name:        "Digestive & Metabolic Health",
		ShortName:   "Digestive Health",
		Description: "Comprehensive assessment and support for digestive disorders, gut health optimization, and metabolic conditions.",
	},
	{
		Slug:        "supplementary-services",
		Name:        "Supplementary Services",
		ShortName:   "Supplementary",
		Description: "Targeted therapeutic services including IV therapy, nutrition counseling, and wellness support to complement your care plan.",
	},
}

// HoursLines renders the weekly hours as "Day: hours" lines, Monday first.
func HoursLines() []string {
	lines := make([]string, 0, len(Site.Hours))
	for _, d := range Site.Hours {
		lines = append(lines, fmt.Sprintf("%s: %s", d.Day, d.Hours))
	}
	return lines
}
