package entity

type StatusCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Disabled int64 `json:"disabled"`
}

func (s StatusCounts) Add(other StatusCounts) StatusCounts {
	return StatusCounts{
		Total:    s.Total + other.Total,
		Active:   s.Active + other.Active,
		Disabled: s.Disabled + other.Disabled,
	}
}

type AdminStats struct {
	Developers StatusCounts `json:"developers"`
	Projects   StatusCounts `json:"projects"`
	Series     StatusCounts `json:"series"`
	Towers     StatusCounts `json:"towers"`
	All        StatusCounts `json:"all"`
}
