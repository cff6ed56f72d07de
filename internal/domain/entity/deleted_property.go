package entity

import "time"

// DeletedProperty is the archived copy of a listing removed from the live
// collection. Data holds the listing exactly as it was stored.
type DeletedProperty struct {
	OriginalID string    `json:"originalId"`
	DeletedBy  string    `json:"deletedBy"`
	DeletedOn  time.Time `json:"deletedOn"`
	Data       Fields    `json:"data"`
}

// Document writes the archived listing flat, with the archive markers on top.
func (d *DeletedProperty) Document() Fields {
	f := d.Data.Clone()
	f["originalId"] = d.OriginalID
	f["deletedBy"] = d.DeletedBy
	f["deletedOn"] = d.DeletedOn
	return f
}
