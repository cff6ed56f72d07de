package validation

import "acredge/internal/domain/entity"

// Property checks the listing shape and media URLs. City is required on every
// listing, stricter than the form itself, since search filters and facets key on it.
func Property(f entity.Fields) []string {
	var c collector

	c.check(oneOf(f.String("propertyListing"), entity.ListingRent, entity.ListingSale), "Invalid property listing type")
	c.check(oneOf(f.String("buildingType"), entity.BuildingResidential, entity.BuildingCommercial), "Invalid building type")
	c.required(f, "city", "City is required")

	c.urls(f, "images", "image")
	c.urls(f, "videos", "video")
	c.urls(f, "documents", "document")

	return c.result()
}
