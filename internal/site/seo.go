package site

import (
	"github.com/perspectivehealth/clinic-site/internal/clinic"
)

// Schema is a schema.org JSON-LD document. Maps keep key output stable
// through encoding/json's sorted marshaling, so builders are deterministic.
type Schema map[string]any

// LocalBusinessSchema describes the clinic as a schema.org MedicalBusiness.
func LocalBusinessSchema() Schema {
	site := clinic.Site
	return Schema{
		"@context":    "https://schema.org",
		"@type":       []string{"MedicalBusiness", "LocalBusiness"},
		"@id":         site.URL + "/#organization",
		"name":        site.Name,
		"url":         site.URL,
		"logo":        site.URL + "/images/logo.png",
		"image":       site.URL + "/images/og-default.jpg",
		"description": "Perspective Health is an integrative medical clinic in Iowa offering comprehensive primary care, hormone health, functional medicine, and digestive health services.",
		"telephone":   site.Phone,
		"email":       site.Email,
		"address": Schema{
			"@type":           "PostalAddress",
			"streetAddress":   site.Address.Street,
			"addressLocality": site.Address.City,
			"addressRegion":   site.Address.State,
			"postalCode":      site.Address.Zip,
			"addressCountry":  "US",
		},
		"geo": Schema{
			"@type":     "GeoCoordinates",
			"latitude":  41.6328,
			"longitude": -93.7614,
		},
		"openingHoursSpecification": []Schema{
			{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": []string{"Monday", "Tuesday", "Wednesday", "Thursday"},
				"opens":     "08:00",
				"closes":    "17:00",
			},
			{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": []string{"Friday"},
				"opens":     "08:00",
				"closes":    "16:00",
			},
		},
		"sameAs": []string{site.Social.Facebook, site.Social.Instagram},
		"medicalSpecialty": []string{
			"IntegrativeMedicine",
			"FunctionalMedicine",
			"GeneralPractice",
		},
		"aggregateRating": Schema{
			"@type":       "AggregateRating",
			"ratingValue": site.Reviews.Rating,
			"reviewCount": site.Reviews.Count,
			"bestRating":  5,
			"worstRating": 1,
		},
		"priceRange":         "$$",
		"paymentAccepted":    "Cash, Check, Credit Card, Insurance, HSA, FSA",
		"currenciesAccepted": "USD",
		"areaServed": Schema{
			"@type": "State",
			"name":  "Iowa",
		},
	}
}

// MedicalServiceSchema describes one service page as a MedicalProcedure.
func MedicalServiceSchema(name, description, path string) Schema {
	site := clinic.Site
	return Schema{
		"@context":    "https://schema.org",
		"@type":       "MedicalProcedure",
		"name":        name,
		"description": description,
		"url":         site.URL + path,
		"provider": Schema{
			"@type": "MedicalBusiness",
			"@id":   site.URL + "/#organization",
			"name":  site.Name,
			"url":   site.URL,
			"address": Schema{
				"@type":           "PostalAddress",
				"addressLocality": site.Address.City,
				"addressRegion":   site.Address.State,
				"addressCountry":  "US",
			},
		},
		"availableService": Schema{
			"@type": "MedicalTherapy",
			"name":  name,
		},
	}
}

// ArticleSchema describes a blog post as a schema.org Article.
func ArticleSchema(post *Post) Schema {
	site := clinic.Site
	return Schema{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    post.Frontmatter.Title,
		"description": post.Frontmatter.Description,
		"author": Schema{
			"@type": "Person",
			"name":  post.Frontmatter.Author,
		},
		"publisher": Schema{
			"@type": "Organization",
			"@id":   site.URL + "/#organization",
			"name":  site.Name,
			"logo": Schema{
				"@type": "ImageObject",
				"url":   site.URL + "/images/logo.png",
			},
		},
		"datePublished": post.Frontmatter.Date,
		"dateModified":  post.Frontmatter.Date,
		"mainEntityOfPage": Schema{
			"@type": "WebPage",
			"@id":   site.URL + "/blog/" + post.Slug,
		},
	}
}
