package services

import (
	"context"
	"net/url"

	"github.com/allodocta/backoffice/internal/client/api"
	"github.com/allodocta/backoffice/internal/client/models"
)

// MedicalService covers pharmacies (with their area/section reference
// lists, guard-duty rotation and export feed) and the medicine registry
// (including the bulk import endpoint).
type MedicalService interface {
	Pharmacies(ctx context.Context, query url.Values) ([]models.Pharmacy, error)
	PharmaciesForExport(ctx context.Context) ([]models.PharmacyExport, error)
	CreatePharmacy(ctx context.Context, payload models.PharmacyPayload) (string, error)
	UpdatePharmacy(ctx context.Context, id string, fields map[string]any) (string, error)
	UpdateGuardPharmacy(ctx context.Context, fields map[string]any) (string, error)
	DeletePharmacy(ctx context.Context, id string) (string, error)
	Areas(ctx context.Context) ([]models.Area, error)
	Sections(ctx context.Context) ([]models.Section, error)

	Medecines(ctx context.Context, query url.Values) ([]models.Medecine, error)
	MedecineAttributes(ctx context.Context) (*models.MedecineAttributes, error)
	CreateMedecine(ctx context.Context, payload models.MedecinePayload) (string, error)
	CreateMedecineBulk(ctx context.Context, payloads []models.MedecinePayload) (string, error)
	UpdateMedecine(ctx context.Context, id string, fields map[string]any) (string, error)
	DeleteMedecine(ctx context.Context, id string) (string, error)
}

type medicalService struct {
	api *api.Client
}

func NewMedicalService(client *api.Client) MedicalService {
	return &medicalService{api: client}
}

func (s *medicalService) Pharmacies(ctx context.Context, query url.Values) ([]models.Pharmacy, error) {
	var pharmacies []models.Pharmacy
	_, err := s.api.Get(ctx, "/pharmacy", query, &pharmacies)
	return pharmacies, err
}

func (s *medicalService) PharmaciesForExport(ctx context.Context) ([]models.PharmacyExport, error) {
	var rows []models.PharmacyExport
	_, err := s.api.Get(ctx, "/pharmacy-export", nil, &rows)
	return rows, err
}

func (s *medicalService) CreatePharmacy(ctx context.Context, payload models.PharmacyPayload) (string, error) {
	res, err := s.api.Post(ctx, "/pharmacy-create", payload, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *medicalService) UpdatePharmacy(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/pharmacy-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// UpdateGuardPharmacy replaces the current guard-duty rotation. The
// endpoint addresses the rotation as a whole, so there is no id selector.
func (s *medicalService) UpdateGuardPharmacy(ctx context.Context, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/pharmacy-guard-update", nil, fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *medicalService) DeletePharmacy(ctx context.Context, id string) (string, error) {
	res, err := s.api.Delete(ctx, "/pharmacy-delete", idQuery(id), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *medicalService) Areas(ctx context.Context) ([]models.Area, error) {
	var areas []models.Area
	_, err := s.api.Get(ctx, "/pharmacy-areas", nil, &areas)
	return areas, err
}

func (s *medicalService) Sections(ctx context.Context) ([]models.Section, error) {
	var sections []models.Section
	_, err := s.api.Get(ctx, "/pharmacy-sections", nil, &sections)
	return sections, err
}

func (s *medicalService) Medecines(ctx context.Context, query url.Values) ([]models.Medecine, error) {
	var medecines []models.Medecine
	_, err := s.api.Get(ctx, "/medecine", query, &medecines)
	return medecines, err
}

func (s *medicalService) MedecineAttributes(ctx context.Context) (*models.MedecineAttributes, error) {
	var attrs models.MedecineAttributes
	if _, err := s.api.Get(ctx, "/medecine-attributes", nil, &attrs); err != nil {
		return nil, err
	}
	return &attrs, nil
}

func (s *medicalService) CreateMedecine(ctx context.Context, payload models.MedecinePayload) (string, error) {
	res, err := s.api.Post(ctx, "/medecine-create", payload, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *medicalService) CreateMedecineBulk(ctx context.Context, payloads []models.MedecinePayload) (string, error) {
	res, err := s.api.Post(ctx, "/medecine-create-bulk", payloads, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *medicalService) UpdateMedecine(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/medecine-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *medicalService) DeleteMedecine(ctx context.Context, id string) (string, error) {
	res, err := s.api.Delete(ctx, "/medecine-delete", idQuery(id), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}
