package services

import (
	"context"

	"github.com/allodocta/backoffice/internal/client/api"
	"github.com/allodocta/backoffice/internal/client/models"
)

// AdminService covers the signed-in staff member's own data and the
// dashboard aggregates.
type AdminService interface {
	Me(ctx context.Context) (*models.Admin, error)
	MainStats(ctx context.Context) (*models.MainStats, error)
	MyNotifications(ctx context.Context) ([]models.Notification, error)
}

type adminService struct {
	api *api.Client
}

func NewAdminService(client *api.Client) AdminService {
	return &adminService{api: client}
}

func (s *adminService) Me(ctx context.Context) (*models.Admin, error) {
	var admin models.Admin
	if _, err := s.api.Get(ctx, "/me", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *adminService) MainStats(ctx context.Context) (*models.MainStats, error) {
	var stats models.MainStats
	if _, err := s.api.Get(ctx, "/main-stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *adminService) MyNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	_, err := s.api.Get(ctx, "/notifications", nil, &notifications)
	return notifications, err
}
