package validation

import "acredge/internal/domain/entity"

// Project validates a project record. Absent images and videos are set to
// empty lists on f before checking.
func Project(f entity.Fields) []string {
	var c collector

	if _, ok := f["images"]; !ok {
		f["images"] = []string{}
	}
	if _, ok := f["videos"]; !ok {
		f["videos"] = []string{}
	}

	c.required(f, "developerId", "Developer ID is required")
	c.required(f, "name", "Project name is required")
	c.check(minLength(f.String("whyThisProject"), 50), "Why this project must be at least 50 characters")
	c.check(minLength(f.String("description"), 50), "Project description must be at least 50 characters")
	c.date(f, "launchDate", "Valid launch date is required")
	c.urls(f, "images", "image")
	c.urls(f, "videos", "video")

	rera := f.String("reraStatus")
	c.check(oneOf(rera, entity.ReraApplied, entity.ReraApproved), "RERA status must be either Rera Applied or Rera Approved")
	if rera == entity.ReraApproved {
		c.required(f, "reraNumber", "RERA number is required for approved projects")
	}
	c.date(f, "reraCompletionDate", "Valid RERA completion date is required")
	c.check(oneOf(f.String("projectStatus"), entity.ProjectDelivered, entity.ProjectUnderConstruction),
		"Project status must be either Delivered or Under Construction")
	c.check(oneOf(f.String("category"), entity.CategoryResidential, entity.CategoryCommercial),
		"Category must be either Residential or Commercial")

	if f.Has("brochureUrl") && !IsURL(f.String("brochureUrl")) {
		c.add("Invalid brochure URL format")
	}
	if f.Has("reraCertificateUrl") && !IsURL(f.String("reraCertificateUrl")) {
		c.add("Invalid reraCertificateUrl URL format")
	}

	c.integer(f, "priceStart", "Price start must be an integer")
	c.integer(f, "priceEnd", "Price end must be an integer")

	if f.Has("status") {
		c.check(oneOf(f.String("status"), entity.StatusActive, entity.StatusDisable), "Status must be either Active or Disable")
	}

	return c.result()
}
