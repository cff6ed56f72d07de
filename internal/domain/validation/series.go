package validation

import "acredge/internal/domain/entity"

func Series(f entity.Fields) []string {
	var c collector

	c.required(f, "developerId", "Developer ID is required")
	c.required(f, "projectId", "Project ID is required")
	c.required(f, "towerId", "Tower ID is required")
	c.required(f, "seriesName", "Series name is required")
	c.check(len(f.Strings("typology")) > 0, "Typology is required")

	for _, addOn := range f.Strings("addOns") {
		if !oneOf(addOn, entity.SeriesAddOns...) {
			c.add("Invalid addOns selection")
			break
		}
	}

	parking := f.String("parkingTypes")
	c.check(oneOf(parking, entity.ParkingOpen, entity.ParkingCovered), "Invalid parking type selection")
	if parking == entity.ParkingCovered {
		n, ok := f.Int("parkingFloorCount")
		c.check(ok && n >= 0 && n <= 4, "parkingFloorCount must be either 0, 1, 2, 3, 4")
	}

	c.integer(f, "carpetArea", "Carpet area must be an integer")
	c.integer(f, "superArea", "Super area must be an integer")
	c.integer(f, "startingPrice", "Starting price must be an integer")

	c.check(f.Has("layoutPlanUrl") && hasExtension(f.String("layoutPlanUrl"), ".pdf"), "Layout plan must be a PDF file")
	c.urls(f, "insideImagesUrls", "inside image")
	c.urls(f, "insideVideosUrls", "inside video")

	c.required(f, "exitUnitDirection", "Exit unit direction is required")
	c.required(f, "masterBedroomDirection", "Master bedroom direction is required")

	c.integer(f, "masterBedroomDimensions", "Master bedroom dimensions must be an integer")
	c.integer(f, "totalBedrooms", "Total bedrooms must be an integer")
	c.integer(f, "totalKitchens", "Total kitchens must be an integer")
	c.integer(f, "totalWashrooms", "Total washrooms must be an integer")

	c.check(oneOf(f.String("status"), entity.StatusActive, entity.StatusDisable), "Status must be either Active or Disable")

	return c.result()
}
