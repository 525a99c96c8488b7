package models

// District is the top level of the location hierarchy.
type District struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type DistrictPayload struct {
	Name string `json:"name"`
}

// Region belongs to a district.
type Region struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	District  string `json:"district"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// RegionPayload carries the parent district id under the same name the read
// model uses. The same payload serves create and update.
type RegionPayload struct {
	Name     string `json:"name"`
	District string `json:"district"`
}

// City belongs to a region.
type City struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Region    string `json:"region"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type CityPayload struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}
