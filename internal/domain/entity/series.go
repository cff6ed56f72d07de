package entity

const (
	ParkingOpen    = "Open"
	ParkingCovered = "Covered"
)

var SeriesAddOns = []string{
	"Servant Room", "Utility", "Store", "Study", "Basement",
	"Powder Room", "Puja Room", "Terrace", "FrontYard", "Backyard",
}

type Series struct {
	ID                      string   `json:"id"`
	DeveloperID             string   `json:"developerId"`
	ProjectID               string   `json:"projectId"`
	TowerID                 string   `json:"towerId"`
	SeriesName              string   `json:"seriesName"`
	Typology                []string `json:"typology"`
	AddOns                  []string `json:"addOns"`
	ParkingTypes            string   `json:"parkingTypes"`
	ParkingFloorCount       int      `json:"parkingFloorCount"`
	CarpetArea              int      `json:"carpetArea"`
	SuperArea               int      `json:"superArea"`
	StartingPrice           int      `json:"startingPrice"`
	LayoutPlanURL           string   `json:"layoutPlanUrl"`
	InsideImagesURLs        []string `json:"insideImagesUrls"`
	InsideVideosURLs        []string `json:"insideVideosUrls"`
	LivingRoom              string   `json:"livingRoom,omitempty"`
	DrawingRoom             string   `json:"drawingRoom,omitempty"`
	DiningRoom              string   `json:"diningRoom,omitempty"`
	Kitchen                 string   `json:"kitchen,omitempty"`
	ExitUnitDirection       string   `json:"exitUnitDirection"`
	MasterBedroomDirection  string   `json:"masterBedroomDirection"`
	MasterBedroomDimensions int      `json:"masterBedroomDimensions"`
	TotalBedrooms           int      `json:"totalBedrooms"`
	TotalKitchens           int      `json:"totalKitchens"`
	TotalWashrooms          int      `json:"totalWashrooms"`
	Status                  string   `json:"status"`
	Audit
}

func SeriesFromFields(id string, f Fields) *Series {
	return &Series{
		ID:                      id,
		DeveloperID:             f.String("developerId"),
		ProjectID:               f.String("projectId"),
		TowerID:                 f.String("towerId"),
		SeriesName:              f.String("seriesName"),
		Typology:                nonNil(f.Strings("typology")),
		AddOns:                  nonNil(f.Strings("addOns")),
		ParkingTypes:            f.String("parkingTypes"),
		ParkingFloorCount:       f.IntOr("parkingFloorCount", 0),
		CarpetArea:              f.IntOr("carpetArea", 0),
		SuperArea:               f.IntOr("superArea", 0),
		StartingPrice:           f.IntOr("startingPrice", 0),
		LayoutPlanURL:           f.String("layoutPlanUrl"),
		InsideImagesURLs:        nonNil(f.Strings("insideImagesUrls")),
		InsideVideosURLs:        nonNil(f.Strings("insideVideosUrls")),
		LivingRoom:              f.String("livingRoom"),
		DrawingRoom:             f.String("drawingRoom"),
		DiningRoom:              f.String("diningRoom"),
		Kitchen:                 f.String("kitchen"),
		ExitUnitDirection:       f.String("exitUnitDirection"),
		MasterBedroomDirection:  f.String("masterBedroomDirection"),
		MasterBedroomDimensions: f.IntOr("masterBedroomDimensions", 0),
		TotalBedrooms:           f.IntOr("totalBedrooms", 0),
		TotalKitchens:           f.IntOr("totalKitchens", 0),
		TotalWashrooms:          f.IntOr("totalWashrooms", 0),
		Status:                  f.String("status"),
		Audit:                   AuditFrom(f),
	}
}

func (s *Series) Document() Fields {
	f := Fields{
		"developerId":             s.DeveloperID,
		"projectId":               s.ProjectID,
		"towerId":                 s.TowerID,
		"seriesName":              s.SeriesName,
		"typology":                s.Typology,
		"addOns":                  s.AddOns,
		"parkingTypes":            s.ParkingTypes,
		"parkingFloorCount":       s.ParkingFloorCount,
		"carpetArea":              s.CarpetArea,
		"superArea":               s.SuperArea,
		"startingPrice":           s.StartingPrice,
		"layoutPlanUrl":           s.LayoutPlanURL,
		"insideImagesUrls":        s.InsideImagesURLs,
		"insideVideosUrls":        s.InsideVideosURLs,
		"livingRoom":              s.LivingRoom,
		"drawingRoom":             s.DrawingRoom,
		"diningRoom":              s.DiningRoom,
		"kitchen":                 s.Kitchen,
		"exitUnitDirection":       s.ExitUnitDirection,
		"masterBedroomDirection":  s.MasterBedroomDirection,
		"masterBedroomDimensions": s.MasterBedroomDimensions,
		"totalBedrooms":           s.TotalBedrooms,
		"totalKitchens":           s.TotalKitchens,
		"totalWashrooms":          s.TotalWashrooms,
		"status":                  s.Status,
	}
	s.Audit.put(f)
	return f
}
