package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/allodocta/backoffice/internal/client/api"
	"github.com/allodocta/backoffice/internal/client/models"
)

// ResourceService covers the platform's own content: ads, articles and
// push notifications.
type ResourceService interface {
	Ads(ctx context.Context, query url.Values) ([]models.Ad, error)
	CreateAd(ctx context.Context, payload models.AdPayload) (string, error)
	UpdateAd(ctx context.Context, id string, fields map[string]any) (string, error)
	DeleteAd(ctx context.Context, id string) (string, error)

	Articles(ctx context.Context, query url.Values) ([]models.Article, error)
	CreateArticle(ctx context.Context, payload models.ArticlePayload) (string, error)
	UpdateArticle(ctx context.Context, id string, fields map[string]any) (string, error)
	DeleteArticle(ctx context.Context, id string) (string, error)

	Notifications(ctx context.Context, limit, page int) ([]models.Notification, *api.Meta, error)
	CreateNotification(ctx context.Context, payload models.NotificationPayload) (string, error)
	UpdateNotification(ctx context.Context, id string, fields map[string]any) (string, error)
	DeleteNotification(ctx context.Context, id string) (string, error)
}

type resourceService struct {
	api *api.Client
}

func NewResourceService(client *api.Client) ResourceService {
	return &resourceService{api: client}
}

func (s *resourceService) Ads(ctx context.Context, query url.Values) ([]models.Ad, error) {
	var ads []models.Ad
	_, err := s.api.Get(ctx, "/ads", query, &ads)
	return ads, err
}

func (s *resourceService) CreateAd(ctx context.Context, payload models.AdPayload) (string, error) {
	res, err := s.api.Post(ctx, "/ads-create", payload, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *resourceService) UpdateAd(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/ads-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *resourceService) DeleteAd(ctx context.Context, id string) (string, error) {
	res, err := s.api.Delete(ctx, "/ads-delete", idQuery(id), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *resourceService) Articles(ctx context.Context, query url.Values) ([]models.Article, error) {
	var articles []models.Article
	_, err := s.api.Get(ctx, "/articles", query, &articles)
	return articles, err
}

func (s *resourceService) CreateArticle(ctx context.Context, payload models.ArticlePayload) (string, error) {
	res, err := s.api.Post(ctx, "/articles-create", payload, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *resourceService) UpdateArticle(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/articles-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *resourceService) DeleteArticle(ctx context.Context, id string) (string, error) {
	res, err := s.api.Delete(ctx, "/articles-delete", idQuery(id), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *resourceService) Notifications(ctx context.Context, limit, page int) ([]models.Notification, *api.Meta, error) {
	query := limitQuery(limit)
	query.Set("page", strconv.Itoa(page))

	var notifications []models.Notification
	res, err := s.api.Get(ctx, "/notifications", query, &notifications)
	if err != nil {
		return nil, nil, err
	}
	return notifications, res.Meta, nil
}

func (s *resourceService) CreateNotification(ctx context.Context, payload models.NotificationPayload) (string, error) {
	res, err := s.api.Post(ctx, "/notifications-create", payload, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *resourceService) UpdateNotification(ctx context.Context, id string, fields map[string]any) (string, error) {
	res, err := s.api.Put(ctx, "/notifications-update", idQuery(id), fields, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *resourceService) DeleteNotification(ctx context.Context, id string) (string, error) {
	res, err := s.api.Delete(ctx, "/notifications-delete", idQuery(id), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}
