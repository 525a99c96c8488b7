package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/allodocta/backoffice/internal/client/api"
	"github.com/allodocta/backoffice/internal/client/models"
)

// DoctorService covers practitioner records and the staff workflows around
// them: specialities, KYC verification requests, and account-deletion
// requests.
type DoctorService interface {
	Doctors(ctx context.Context, limit int) ([]models.Doctor, error)
	DoctorsPaginated(ctx context.Context, limit, page int) ([]models.Doctor, *api.Meta, error)
	DoctorsWithParams(ctx context.Context, query url.Values) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, id string, fields map[string]any) (string, error)
	DeleteDoctor(ctx context.Context, id string) (string, error)

	Specialities(ctx context.Context, limit int) ([]models.Speciality, error)
	SpecialitiesWithParams(ctx context.Context, query url.Values) ([]models.Speciality, error)
	CreateSpeciality(ctx context.Context, payload models.SpecialityPayload) (string, error)
	UpdateSpeciality(ctx context.Context, id string, fields map[string]any) (string, error)
	DeleteSpeciality(ctx context.Context, id string) (string, error)

	KycRequests(ctx context.Context, limit int, status string) ([]models.Verification, error)
	UpdateKycRequest(ctx context.Context, id string, fields map[string]any) (string, error)

	DeletionRequests(ctx context.Context, limit int, status string) ([]models.AccountDeletion, error)
	UpdateDeletionRequest(ctx context.Context, id string, fields map[string]any) (string, error)
}

type doctorService struct {
	api *api.Client
}

func NewDoctorService(client *api.Client) DoctorService {
	return &doctorService{api: client}
}

func (s *doctorService) Doctors(ctx context.Context, limit int) ([]models.Doctor, error) {
	var doctors []models.Doctor
	_, err := s.api.Get(ctx, "/doctors", limitQuery(limit), &doctors)
	return doctors, err
}

func (s *doctorService) DoctorsPaginated(ctx context.Context, limit, page int) ([]models.Doctor, *api.Meta, error) {
	query := limitQuery(limit)
	query.Set("page", strconv.Itoa(page))

	var doctors []models.Doctor
	res, err := s.api.Get(ctx, "/doctors-paginated", query, &doctors)
	if err != nil {
		return nil, nil, err
	}
	return doctors, res.Meta, nil
}

func (s *doctorService) DoctorsWithParams(ctx context.Context, query url.Values) ([]models.Doctor, error) {
	var doctors []models.Doctor
	_, err := s.api.Get(ctx, "/doctors-with-params", query, &doctors)
	return doctors, err
}

func (s *doctorService) UpdateDoctor(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/doctors-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *doctorService) DeleteDoctor(ctx context.Context, id string) (string, error) {
	res, err := s.api.Delete(ctx, "/doctors-delete", idQuery(id), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *doctorService) Specialities(ctx context.Context, limit int) ([]models.Speciality, error) {
	var specialities []models.Speciality
	_, err := s.api.Get(ctx, "/speciality", limitQuery(limit), &specialities)
	return specialities, err
}

func (s *doctorService) SpecialitiesWithParams(ctx context.Context, query url.Values) ([]models.Speciality, error) {
	var specialities []models.Speciality
	_, err := s.api.Get(ctx, "/specialities-with-params", query, &specialities)
	return specialities, err
}

func (s *doctorService) CreateSpeciality(ctx context.Context, payload models.SpecialityPayload) (string, error) {
	res, err := s.api.Post(ctx, "/speciality-create", payload, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *doctorService) UpdateSpeciality(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/speciality-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *doctorService) DeleteSpeciality(ctx context.Context, id string) (string, error) {
	res, err := s.api.Delete(ctx, "/speciality-delete", idQuery(id), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *doctorService) KycRequests(ctx context.Context, limit int, status string) ([]models.Verification, error) {
	query := limitQuery(limit)
	query.Set("status", status)

	var requests []models.Verification
	_, err := s.api.Get(ctx, "/requests/kyc-submission", query, &requests)
	return requests, err
}

func (s *doctorService) UpdateKycRequest(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/requests/kyc-submission", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *doctorService) DeletionRequests(ctx context.Context, limit int, status string) ([]models.AccountDeletion, error) {
	query := limitQuery(limit)
	query.Set("status", status)

	var requests []models.AccountDeletion
	_, err := s.api.Get(ctx, "/requests/account-deletions", query, &requests)
	return requests, err
}

func (s *doctorService) UpdateDeletionRequest(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/requests/account-deletions", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func limitQuery(limit int) url.Values {
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

func idQuery(id string) url.Values {
	return url.Values{"id": {id}}
}
