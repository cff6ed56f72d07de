package validation

import "acredge/internal/domain/entity"

func Tower(f entity.Fields) []string {
	var c collector

	c.required(f, "developerId", "Developer ID is required")
	c.required(f, "projectId", "Project ID is required")
	c.required(f, "name", "Tower name is required")

	height, ok := f.Int("towerLobbyHeight")
	c.check(ok && height >= 1 && height <= 4, "Tower lobby height must be between 1 and 4")

	units, ok := f.Int("totalLobbyUnits")
	c.check(ok && units >= 1 && units <= 16, "Total lobby units must be between 1 and 16")

	nonNegative(&c, f, "LobbyFloorCount", "LobbyFloorCount must be an integer")
	nonNegative(&c, f, "totalFloors", "Total floors must be an integer")
	nonNegative(&c, f, "coreCount", "Core count must be an integer")
	nonNegative(&c, f, "totalUnits", "Total units must be an integer")

	if f.Has("status") {
		c.check(oneOf(f.String("status"), entity.StatusActive, entity.StatusDisable), "Status must be either Active or Disable")
	}

	return c.result()
}

func nonNegative(c *collector, f entity.Fields, key, msg string) {
	n, ok := f.Int(key)
	c.check(ok && n >= 0, msg)
}
