package dto

type KendraResponse struct {
	Id         uint    `json:"id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	DistanceKm float64 `json:"distance_km"`
}

type NearbyKendrasRequest struct {
	Lat      float64 `query:"lat" validate:"gte=-90,lte=90"`
	Lng      float64 `query:"lng" validate:"gte=-180,lte=180"`
	RadiusKm float64 `query:"radius_km" validate:"gte=0"`
}

type NearbyKendrasResponse struct {
	Kendras []KendraResponse `json:"kendras"`
}

type CreateKendraRequest struct {
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" validate:"gte=-180,lte=180"`
}
