package sitegen

import (
	"fmt"
	"strings"

	"github.com/juzbuild/juzbuild/internal/model"
)

// Default brand palette used for any color slot the request leaves empty.
const (
	DefaultPrimaryColor   = "#1e3a8a"
	DefaultSecondaryColor = "#0f766e"
	DefaultAccentColor    = "#f59e0b"
)

// BrandColors holds the resolved three-color palette.
type BrandColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// ResolveBrandColors maps the request's ordered color list positionally to
// primary/secondary/accent, filling missing slots with the defaults. The
// result always has exactly three colors.
func ResolveBrandColors(colors []string) BrandColors {
	resolved := BrandColors{
		Primary:   DefaultPrimaryColor,
		Secondary: DefaultSecondaryColor,
		Accent:    DefaultAccentColor,
	}
	if len(colors) > 0 && colors[0] != "" {
		resolved.Primary = colors[0]
	}
	if len(colors) > 1 && colors[1] != "" {
		resolved.Secondary = colors[1]
	}
	if len(colors) > 2 && colors[2] != "" {
		resolved.Accent = colors[2]
	}
	return resolved
}

// PageContent returns the placeholder copy for a page slug. Known slugs get
// fixed copy; anything else gets a generic welcome line naming the slug.
// Pure: identical input always yields identical output.
func PageContent(slug string, companyName string) string {
	switch strings.ToLower(slug) {
	case "home":
		return fmt.Sprintf("Welcome to %s. Find your dream home with us.", companyName)
	case "about":
		return fmt.Sprintf("%s has been helping families find the right home for years. Meet the team behind your next move.", companyName)
	case "properties":
		return "Browse our latest listings. New properties are added every week."
	case "contact":
		return "Get in touch with our team. We usually respond within one business day."
	case "services":
		return "From valuations to viewings, we handle every step of buying and selling."
	default:
		return fmt.Sprintf("Welcome to our %s page", slug)
	}
}

// NavLabel turns a page slug into its navigation label.
func NavLabel(slug string) string {
	if slug == "" {
		return ""
	}
	return strings.ToUpper(slug[:1]) + strings.ToLower(slug[1:])
}

// SampleProperty is one of the fixed sample listings seeded into every new
// site so the first deploy doesn't render empty.
type SampleProperty struct {
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Price    int     `json:"price"`
	Beds     int     `json:"beds"`
	Baths    float64 `json:"baths"`
	Sqft     int     `json:"sqft"`
	Address  string  `json:"address"`
	Featured bool    `json:"featured"`
}

// SampleProperties returns the three fixed sample listings. The property
// type comes from the first selected type, defaulting to "House".
func SampleProperties(propertyTypes []string) []SampleProperty {
	propType := "House"
	if len(propertyTypes) > 0 && propertyTypes[0] != "" {
		propType = propertyTypes[0]
	}
	return []SampleProperty{
		{Title: "Sunny Family Home", Type: propType, Price: 425000, Beds: 4, Baths: 2.5, Sqft: 2400, Address: "12 Maple Drive", Featured: true},
		{Title: "Modern Downtown Loft", Type: propType, Price: 315000, Beds: 2, Baths: 2, Sqft: 1150, Address: "88 Center Street", Featured: true},
		{Title: "Quiet Garden Cottage", Type: propType, Price: 268000, Beds: 3, Baths: 1.5, Sqft: 1600, Address: "5 Willow Lane", Featured: true},
	}
}

// Readme renders the repository README for a provisioned site.
func Readme(req model.ProvisioningRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", req.CompanyName)
	if req.Tagline != "" {
		fmt.Fprintf(&b, "> %s\n\n", req.Tagline)
	}
	if req.AboutText != "" {
		b.WriteString(req.AboutText + "\n\n")
	}
	b.WriteString("## Getting started\n\n")
	b.WriteString("```bash\nnpm install\nnpm run dev\n```\n\n")
	b.WriteString("Generated by [Juzbuild](https://juzbuild.com).\n")
	return b.String()
}
