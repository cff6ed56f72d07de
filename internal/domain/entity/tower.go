package entity

type Tower struct {
	ID               string `json:"id"`
	DeveloperID      string `json:"developerId"`
	ProjectID        string `json:"projectId"`
	Name             string `json:"name"`
	TowerLobbyHeight int    `json:"towerLobbyHeight"`
	TotalLobbyUnits  int    `json:"totalLobbyUnits"`
	LobbyFloorCount  int    `json:"LobbyFloorCount"`
	TotalFloors      int    `json:"totalFloors"`
	CoreCount        int    `json:"coreCount"`
	TotalUnits       int    `json:"totalUnits"`
	Status           string `json:"status,omitempty"`
	Audit
}

func TowerFromFields(id string, f Fields) *Tower {
	return &Tower{
		ID:               id,
		DeveloperID:      f.String("developerId"),
		ProjectID:        f.String("projectId"),
		Name:             f.String("name"),
		TowerLobbyHeight: f.IntOr("towerLobbyHeight", 0),
		TotalLobbyUnits:  f.IntOr("totalLobbyUnits", 0),
		LobbyFloorCount:  f.IntOr("LobbyFloorCount", 0),
		TotalFloors:      f.IntOr("totalFloors", 0),
		CoreCount:        f.IntOr("coreCount", 0),
		TotalUnits:       f.IntOr("totalUnits", 0),
		Status:           f.String("status"),
		Audit:            AuditFrom(f),
	}
}

func (t *Tower) Document() Fields {
	f := Fields{
		"developerId":      t.DeveloperID,
		"projectId":        t.ProjectID,
		"name":             t.Name,
		"towerLobbyHeight": t.TowerLobbyHeight,
		"totalLobbyUnits":  t.TotalLobbyUnits,
		"LobbyFloorCount":  t.LobbyFloorCount,
		"totalFloors":      t.TotalFloors,
		"coreCount":        t.CoreCount,
		"totalUnits":       t.TotalUnits,
		"status":           t.Status,
	}
	t.Audit.put(f)
	return f
}
