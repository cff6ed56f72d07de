package entity

import "time"

const (
	ReraApplied  = "Rera Applied"
	ReraApproved = "Rera Approved"

	ProjectDelivered         = "Delivered"
	ProjectUnderConstruction = "Under Construction"

	CategoryResidential = "Residential"
	CategoryCommercial  = "Commercial"
)

type Project struct {
	ID                 string     `json:"id"`
	DeveloperID        string     `json:"developerId"`
	Name               string     `json:"name"`
	WhyThisProject     string     `json:"whyThisProject"`
	Description        string     `json:"description"`
	LaunchDate         *time.Time `json:"launchDate"`
	Images             []string   `json:"images"`
	Videos             []string   `json:"videos"`
	ReraStatus         string     `json:"reraStatus"`
	ReraNumber         string     `json:"reraNumber,omitempty"`
	ReraCompletionDate *time.Time `json:"reraCompletionDate"`
	ProjectStatus      string     `json:"projectStatus"`
	Status             string     `json:"status"`
	ProjectAddress     string     `json:"projectAddress"`
	Category           string     `json:"category"`
	Amenities          []string   `json:"amenities"`
	LocalityHighlights []string   `json:"localityHighlights"`
	BrochureURL        string     `json:"brochureUrl"`
	ReraCertificateURL string     `json:"reraCertificateUrl"`
	PriceStart         int        `json:"priceStart"`
	PriceEnd           int        `json:"priceEnd"`
	PaymentPlan        string     `json:"paymentPlan"`
	UnitSizes          []string   `json:"unitSizes"`
	TotalAcres         int        `json:"totalAcres"`
	TotalUnits         int        `json:"totalUnits"`
	Density            string     `json:"density"`
	ClubCount          int        `json:"clubCount"`
	TotalClubArea      int        `json:"totalClubArea"`
	OpenArea           int        `json:"openArea"`
	ProjectType        string     `json:"projectType"`
	Audit
}

func ProjectFromFields(id string, f Fields) *Project {
	return &Project{
		ID:                 id,
		DeveloperID:        f.String("developerId"),
		Name:               f.String("name"),
		WhyThisProject:     f.String("whyThisProject"),
		Description:        f.String("description"),
		LaunchDate:         f.TimePtr("launchDate"),
		Images:             nonNil(f.Strings("images")),
		Videos:             nonNil(f.Strings("videos")),
		ReraStatus:         f.String("reraStatus"),
		ReraNumber:         f.String("reraNumber"),
		ReraCompletionDate: f.TimePtr("reraCompletionDate"),
		ProjectStatus:      f.String("projectStatus"),
		Status:             f.String("status"),
		ProjectAddress:     f.String("projectAddress"),
		Category:           f.String("category"),
		Amenities:          nonNil(f.Strings("amenities")),
		LocalityHighlights: nonNil(f.Strings("localityHighlights")),
		BrochureURL:        f.String("brochureUrl"),
		ReraCertificateURL: f.String("reraCertificateUrl"),
		PriceStart:         f.IntOr("priceStart", 0),
		PriceEnd:           f.IntOr("priceEnd", 0),
		PaymentPlan:        f.String("paymentPlan"),
		UnitSizes:          nonNil(f.Strings("unitSizes")),
		TotalAcres:         f.IntOr("totalAcres", 0),
		TotalUnits:         f.IntOr("totalUnits", 0),
		Density:            f.String("density"),
		ClubCount:          f.IntOr("clubCount", 0),
		TotalClubArea:      f.IntOr("totalClubArea", 0),
		OpenArea:           f.IntOr("openArea", 0),
		ProjectType:        f.String("projectType"),
		Audit:              AuditFrom(f),
	}
}

func (p *Project) Document() Fields {
	f := Fields{
		"developerId":        p.DeveloperID,
		"name":               p.Name,
		"whyThisProject":     p.WhyThisProject,
		"description":        p.Description,
		"launchDate":         timeOrNil(p.LaunchDate),
		"images":             p.Images,
		"videos":             p.Videos,
		"reraStatus":         p.ReraStatus,
		"reraNumber":         p.ReraNumber,
		"reraCompletionDate": timeOrNil(p.ReraCompletionDate),
		"projectStatus":      p.ProjectStatus,
		"status":             p.Status,
		"projectAddress":     p.ProjectAddress,
		"category":           p.Category,
		"amenities":          p.Amenities,
		"localityHighlights": p.LocalityHighlights,
		"brochureUrl":        p.BrochureURL,
		"reraCertificateUrl": p.ReraCertificateURL,
		"priceStart":         p.PriceStart,
		"priceEnd":           p.PriceEnd,
		"paymentPlan":        p.PaymentPlan,
		"unitSizes":          p.UnitSizes,
		"totalAcres":         p.TotalAcres,
		"totalUnits":         p.TotalUnits,
		"density":            p.Density,
		"clubCount":          p.ClubCount,
		"totalClubArea":      p.TotalClubArea,
		"openArea":           p.OpenArea,
		"projectType":        p.ProjectType,
	}
	p.Audit.put(f)
	return f
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
