package entity

import "time"

const (
	StatusActive  = "Active"
	StatusDisable = "Disable"
)

type Developer struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Address                string     `json:"address"`
	IncorporationDate      *time.Time `json:"incorporationDate"`
	TotalProjectsDelivered int        `json:"totalProjectsDelivered"`
	TotalSqFtDelivered     int        `json:"totalSqFtDelivered"`
	CountryCode            string     `json:"countryCode,omitempty"`
	StateCode              string     `json:"stateCode,omitempty"`
	LandlineNumber         string     `json:"landlineNumber,omitempty"`
	Description            string     `json:"description"`
	WebsiteLink            string     `json:"websiteLink"`
	LogoURL                string     `json:"logoUrl"`
	Age                    int        `json:"age"`
	Status                 string     `json:"status"`
	Audit
}

func DeveloperFromFields(id string, f Fields) *Developer {
	return &Developer{
		ID:                     id,
		Name:                   f.String("name"),
		Address:                f.String("address"),
		IncorporationDate:      f.TimePtr("incorporationDate"),
		TotalProjectsDelivered: f.IntOr("totalProjectsDelivered", 0),
		TotalSqFtDelivered:     f.IntOr("totalSqFtDelivered", 0),
		CountryCode:            f.String("countryCode"),
		StateCode:              f.String("stateCode"),
		LandlineNumber:         f.String("landlineNumber"),
		Description:            f.String("description"),
		WebsiteLink:            f.String("websiteLink"),
		LogoURL:                f.String("logoUrl"),
		Age:                    f.IntOr("age", 0),
		Status:                 f.String("status"),
		Audit:                  AuditFrom(f),
	}
}

func (d *Developer) Document() Fields {
	f := Fields{
		"name":                   d.Name,
		"address":                d.Address,
		"incorporationDate":      timeOrNil(d.IncorporationDate),
		"totalProjectsDelivered": d.TotalProjectsDelivered,
		"totalSqFtDelivered":     d.TotalSqFtDelivered,
		"countryCode":            d.CountryCode,
		"stateCode":              d.StateCode,
		"landlineNumber":         d.LandlineNumber,
		"description":            d.Description,
		"websiteLink":            d.WebsiteLink,
		"logoUrl":                d.LogoURL,
		"age":                    d.Age,
		"status":                 d.Status,
	}
	d.Audit.put(f)
	return f
}

// YearsSince returns the number of whole years elapsed between from and now.
func YearsSince(from, now time.Time) int {
	years := now.Year() - from.Year()
	if now.Month() < from.Month() || (now.Month() == from.Month() && now.Day() < from.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
