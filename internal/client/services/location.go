package services

import (
	"context"
	"net/url"

	"github.com/allodocta/backoffice/internal/client/api"
	"github.com/allodocta/backoffice/internal/client/models"
)

// LocationService covers the district > region > city hierarchy.
type LocationService interface {
	Districts(ctx context.Context) ([]models.District, error)
	CreateDistrict(ctx context.Context, payload models.DistrictPayload) (string, error)
	UpdateDistrict(ctx context.Context, id string, fields map[string]any) (string, error)

	Regions(ctx context.Context, limit int, name string) ([]models.Region, error)
	CreateRegion(ctx context.Context, payload models.RegionPayload) (string, error)
	UpdateRegion(ctx context.Context, id string, fields map[string]any) (string, error)
	DeleteRegion(ctx context.Context, id string) (string, error)

	Cities(ctx context.Context, limit int, name string) ([]models.City, error)
	CitiesForRegion(ctx context.Context, regionName string) ([]models.City, error)
	CreateCity(ctx context.Context, payload models.CityPayload) (string, error)
	UpdateCity(ctx context.Context, id string, fields map[string]any) (string, error)
	DeleteCity(ctx context.Context, id string) (string, error)
}

type locationService struct {
	api *api.Client
}

func NewLocationService(client *api.Client) LocationService {
	return &locationService{api: client}
}

func (s *locationService) Districts(ctx context.Context) ([]models.District, error) {
	var districts []models.District
	_, err := s.api.Get(ctx, "/district", nil, &districts)
	return districts, err
}

func (s *locationService) CreateDistrict(ctx context.Context, payload models.DistrictPayload) (string, error) {
	res, err := s.api.Post(ctx, "/district-create", payload, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *locationService) UpdateDistrict(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/district-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *locationService) Regions(ctx context.Context, limit int, name string) ([]models.Region, error) {
	query := limitQuery(limit)
	if name != "" {
		query.Set("name", name)
	}

	var regions []models.Region
	_, err := s.api.Get(ctx, "/region", query, &regions)
	return regions, err
}

func (s *locationService) CreateRegion(ctx context.Context, payload models.RegionPayload) (string, error) {
	res, err := s.api.Post(ctx, "/region-create", payload, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *locationService) UpdateRegion(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/region-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *locationService) DeleteRegion(ctx context.Context, id string) (string, error) {
	res, err := s.api.Delete(ctx, "/region-delete", idQuery(id), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *locationService) Cities(ctx context.Context, limit int, name string) ([]models.City, error) {
	query := limitQuery(limit)
	if name != "" {
		query.Set("name", name)
	}

	var cities []models.City
	_, err := s.api.Get(ctx, "/city", query, &cities)
	return cities, err
}

func (s *locationService) CitiesForRegion(ctx context.Context, regionName string) ([]models.City, error) {
	query := url.Values{"regionName": {regionName}}

	var cities []models.City
	_, err := s.api.Get(ctx, "/cities-with-region", query, &cities)
	return cities, err
}

func (s *locationService) CreateCity(ctx context.Context, payload models.CityPayload) (string, error) {
	res, err := s.api.Post(ctx, "/city-create", payload, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *locationService) UpdateCity(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/city-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *locationService) DeleteCity(ctx context.Context, id string) (string, error) {
	res, err := s.api.Delete(ctx, "/city-delete", idQuery(id), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}
