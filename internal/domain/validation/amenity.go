package validation

import (
	"strings"

	"acredge/internal/domain/entity"
)

func Amenity(f entity.Fields) []string {
	var c collector

	name, present := f["name"]
	switch {
	case !present || name == nil:
		c.add("Name is required")
	case strings.TrimSpace(f.String("name")) == "":
		c.add("Name cannot be empty")
	}
	c.required(f, "logoUrl", "Logo is required")

	return c.result()
}
