package entity

import "encoding/json"

const (
	ListingRent = "Rent"
	ListingSale = "Sale"

	BuildingResidential = "Residential"
	BuildingCommercial  = "Commercial"
)

// FormType names the attribute subset a property carries.
type FormType string

const (
	FormResidentialSell FormType = "residentialSell"
	FormResidentialRent FormType = "residentialRent"
	FormCommercialSell  FormType = "commercialSell"
	FormCommercialRent  FormType = "commercialRent"
)

// FormTypeOf selects the variant for a (listing, building type) pair. The
// empty FormType means the pair is not recognised.
func FormTypeOf(listing, buildingType string) FormType {
	switch {
	case listing == ListingSale && buildingType == BuildingResidential:
		return FormResidentialSell
	case listing == ListingRent && buildingType == BuildingResidential:
		return FormResidentialRent
	case listing == ListingSale && buildingType == BuildingCommercial:
		return FormCommercialSell
	case listing == ListingRent && buildingType == BuildingCommercial:
		return FormCommercialRent
	default:
		return ""
	}
}

// PropertyDetails is the variant part of a listing.
type PropertyDetails interface {
	Form() FormType
	// AskingPrice is the numeric price used for range filters.
	AskingPrice() (int, bool)
	put(f Fields)
}

type ResidentialSellDetails struct {
	PropertyType     string   `json:"propertyType,omitempty"`
	Typology         []string `json:"typology,omitempty"`
	AddOns           []string `json:"addOns,omitempty"`
	Area             string   `json:"area,omitempty"`
	FurnishType      string   `json:"furnishType,omitempty"`
	Facing           string   `json:"facing,omitempty"`
	View             string   `json:"view,omitempty"`
	SellingPrice     string   `json:"sellingPrice,omitempty"`
	MoreDetails      string   `json:"moreDetails,omitempty"`
	PossessionStatus string   `json:"possessionStatus,omitempty"`
}

type ResidentialRentDetails struct {
	PropertyType     string   `json:"propertyType,omitempty"`
	Typology         []string `json:"typology,omitempty"`
	AddOns           []string `json:"addOns,omitempty"`
	Area             string   `json:"area,omitempty"`
	FurnishType      string   `json:"furnishType,omitempty"`
	Facing           string   `json:"facing,omitempty"`
	View             string   `json:"view,omitempty"`
	RentMonthlyPrice string   `json:"rentMonthlyPrice,omitempty"`
}

type CommercialSellDetails struct {
	PropertyType     string `json:"propertyType,omitempty"`
	Floor            string `json:"floor,omitempty"`
	Facing           string `json:"facing,omitempty"`
	PreRented        string `json:"preRented,omitempty"`
	FieldForArea     string `json:"fieldForArea,omitempty"`
	Unit             string `json:"unit,omitempty"`
	Price            string `json:"price,omitempty"`
	PossessionStatus string `json:"possessionStatus,omitempty"`
}

type CommercialRentDetails struct {
	PropertyType     string `json:"propertyType,omitempty"`
	Floor            string `json:"floor,omitempty"`
	Facing           string `json:"facing,omitempty"`
	TotalArea        string `json:"totalArea,omitempty"`
	Unit             string `json:"unit,omitempty"`
	RentMonthlyPrice string `json:"rentMonthlyPrice,omitempty"`
	PossessionStatus string `json:"possessionStatus,omitempty"`
}

func (ResidentialSellDetails) Form() FormType { return FormResidentialSell }
func (ResidentialRentDetails) Form() FormType { return FormResidentialRent }
func (CommercialSellDetails) Form() FormType  { return FormCommercialSell }
func (CommercialRentDetails) Form() FormType  { return FormCommercialRent }

func (d ResidentialSellDetails) AskingPrice() (int, bool) { return ParseLeadingInt(d.SellingPrice) }
func (d ResidentialRentDetails) AskingPrice() (int, bool) { return ParseLeadingInt(d.RentMonthlyPrice) }
func (d CommercialSellDetails) AskingPrice() (int, bool)  { return ParseLeadingInt(d.Price) }
func (d CommercialRentDetails) AskingPrice() (int, bool)  { return ParseLeadingInt(d.RentMonthlyPrice) }

func (d ResidentialSellDetails) put(f Fields) {
	putString(f, "propertyType", d.PropertyType)
	putList(f, "typology", d.Typology)
	putList(f, "addOns", d.AddOns)
	putString(f, "area", d.Area)
	putString(f, "furnishType", d.FurnishType)
	putString(f, "facing", d.Facing)
	putString(f, "view", d.View)
	putString(f, "sellingPrice", d.SellingPrice)
	putString(f, "moreDetails", d.MoreDetails)
	putString(f, "possessionStatus", d.PossessionStatus)
}

func (d ResidentialRentDetails) put(f Fields) {
	putString(f, "propertyType", d.PropertyType)
	putList(f, "typology", d.Typology)
	putList(f, "addOns", d.AddOns)
	putString(f, "area", d.Area)
	putString(f, "furnishType", d.FurnishType)
	putString(f, "facing", d.Facing)
	putString(f, "view", d.View)
	putString(f, "rentMonthlyPrice", d.RentMonthlyPrice)
}

func (d CommercialSellDetails) put(f Fields) {
	putString(f, "propertyType", d.PropertyType)
	putString(f, "floor", d.Floor)
	putString(f, "facing", d.Facing)
	putString(f, "preRented", d.PreRented)
	putString(f, "fieldForArea", d.FieldForArea)
	putString(f, "unit", d.Unit)
	putString(f, "price", d.Price)
	putString(f, "possessionStatus", d.PossessionStatus)
}

func (d CommercialRentDetails) put(f Fields) {
	putString(f, "propertyType", d.PropertyType)
	putString(f, "floor", d.Floor)
	putString(f, "facing", d.Facing)
	putString(f, "totalArea", d.TotalArea)
	putString(f, "unit", d.Unit)
	putString(f, "rentMonthlyPrice", d.RentMonthlyPrice)
	putString(f, "possessionStatus", d.PossessionStatus)
}

// Property is a user listing. Details is nil when the listing/building pair
// is not one of the four known forms.
type Property struct {
	ID              string
	PropertyListing string
	BuildingType    string
	City            string
	DeveloperName   string
	ProjectName     string
	TowerName       string
	UnitNumber      string
	Amenities       []string
	Images          []string
	Videos          []string
	Documents       []string
	Details         PropertyDetails
	Audit
}

func PropertyFromFields(id string, f Fields) *Property {
	p := &Property{
		ID:              id,
		PropertyListing: f.String("propertyListing"),
		BuildingType:    f.String("buildingType"),
		City:            f.String("city"),
		DeveloperName:   f.String("developerName"),
		ProjectName:     f.String("projectName"),
		TowerName:       f.String("towerName"),
		UnitNumber:      f.String("unitNumber"),
		Amenities:       nonNil(f.Strings("amenities")),
		Images:          nonNil(f.Strings("images")),
		Videos:          nonNil(f.Strings("videos")),
		Documents:       nonNil(f.Strings("documents")),
		Audit:           AuditFrom(f),
	}

	switch FormTypeOf(p.PropertyListing, p.BuildingType) {
	case FormResidentialSell:
		p.Details = ResidentialSellDetails{
			PropertyType:     f.String("propertyType"),
			Typology:         f.Strings("typology"),
			AddOns:           f.Strings("addOns"),
			Area:             f.String("area"),
			FurnishType:      f.String("furnishType"),
			Facing:           f.String("facing"),
			View:             f.String("view"),
			SellingPrice:     f.String("sellingPrice"),
			MoreDetails:      f.String("moreDetails"),
			PossessionStatus: f.String("possessionStatus"),
		}
	case FormResidentialRent:
		p.Details = ResidentialRentDetails{
			PropertyType:     f.String("propertyType"),
			Typology:         f.Strings("typology"),
			AddOns:           f.Strings("addOns"),
			Area:             f.String("area"),
			FurnishType:      f.String("furnishType"),
			Facing:           f.String("facing"),
			View:             f.String("view"),
			RentMonthlyPrice: f.String("rentMonthlyPrice"),
		}
	case FormCommercialSell:
		p.Details = CommercialSellDetails{
			PropertyType:     f.String("propertyType"),
			Floor:            f.String("floor"),
			Facing:           f.String("facing"),
			PreRented:        f.String("preRented"),
			FieldForArea:     f.String("fieldForArea"),
			Unit:             f.String("unit"),
			Price:            f.String("price"),
			PossessionStatus: f.String("possessionStatus"),
		}
	case FormCommercialRent:
		p.Details = CommercialRentDetails{
			PropertyType:     f.String("propertyType"),
			Floor:            f.String("floor"),
			Facing:           f.String("facing"),
			TotalArea:        f.String("totalArea"),
			Unit:             f.String("unit"),
			RentMonthlyPrice: f.String("rentMonthlyPrice"),
			PossessionStatus: f.String("possessionStatus"),
		}
	}
	return p
}

func (p *Property) Form() FormType {
	if p.Details == nil {
		return ""
	}
	return p.Details.Form()
}

// Document flattens the shared attributes and the variant into one record.
// Attributes outside the variant are not written.
func (p *Property) Document() Fields {
	f := Fields{
		"propertyListing": p.PropertyListing,
		"buildingType":    p.BuildingType,
		"amenities":       p.Amenities,
		"images":          p.Images,
		"videos":          p.Videos,
		"documents":       p.Documents,
	}
	putString(f, "city", p.City)
	putString(f, "developerName", p.DeveloperName)
	putString(f, "projectName", p.ProjectName)
	putString(f, "towerName", p.TowerName)
	putString(f, "unitNumber", p.UnitNumber)
	if p.Details != nil {
		p.Details.put(f)
	}
	p.Audit.put(f)
	return f
}

func (p *Property) MarshalJSON() ([]byte, error) {
	doc := p.Document()
	doc["id"] = p.ID
	if form := p.Form(); form != "" {
		doc["formType"] = form
	}
	return json.Marshal(map[string]interface{}(doc))
}

func putString(f Fields, key, value string) {
	if value != "" {
		f[key] = value
	}
}

func putList(f Fields, key string, value []string) {
	if len(value) > 0 {
		f[key] = value
	}
}
