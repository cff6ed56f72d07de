package entity

import "strings"

type Amenity struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalizedName"`
	LogoURL        string `json:"logoUrl"`
	Audit
}

// NormalizeName is the uniqueness key of an amenity name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func AmenityFromFields(id string, f Fields) *Amenity {
	name := strings.TrimSpace(f.String("name"))
	return &Amenity{
		ID:             id,
		Name:           name,
		NormalizedName: NormalizeName(name),
		LogoURL:        f.String("logoUrl"),
		Audit:          AuditFrom(f),
	}
}

func (a *Amenity) Document() Fields {
	f := Fields{
		"name":           a.Name,
		"normalizedName": a.NormalizedName,
		"logoUrl":        a.LogoURL,
	}
	a.Audit.put(f)
	return f
}
