package validation

import "acredge/internal/domain/entity"

func Developer(f entity.Fields) []string {
	var c collector

	c.required(f, "name", "Name is required")
	c.required(f, "address", "Address is required")
	c.date(f, "incorporationDate", "Valid incorporation date is required")
	c.integer(f, "totalProjectsDelivered", "Total projects delivered must be an integer")
	c.integer(f, "totalSqFtDelivered", "Total sq ft delivered must be an integer")
	c.check(minLength(f.String("description"), 50), "Description must be at least 50 characters long")
	c.check(IsURL(f.String("websiteLink")), "Valid website link is required")
	c.check(f.Has("logoUrl") && hasExtension(f.String("logoUrl"), ".png", ".jpg", ".jpeg"), "Logo must be a PNG or JPG file")
	c.check(oneOf(f.String("status"), entity.StatusActive, entity.StatusDisable), "Status must be either Active or Disable")

	return c.result()
}
