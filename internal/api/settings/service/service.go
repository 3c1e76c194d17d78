package settingsService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/settings"
	"duitai/internal/state"
)

type ISettingsService interface {
	GetFirstDay(ctx context.Context) (settings.FirstDayResponse, error)
	UpdateFirstDay(ctx context.Context, req settings.UpdateFirstDayRequest) (settings.FirstDayResponse, error)
	UpdateAPIKey(ctx context.Context, req settings.UpdateAPIKeyRequest) (settings.APIKeyStatusResponse, error)
	DeleteAPIKey(ctx context.Context) (settings.APIKeyStatusResponse, error)
}

type settingsService struct {
	log   *logrus.Logger
	state *state.Controller
}

func New(log *logrus.Logger, stateController *state.Controller) ISettingsService {
	return &settingsService{
		log:   log,
		state: stateController,
	}
}

func (s *settingsService) GetFirstDay(ctx context.Context) (settings.FirstDayResponse, error) {
	return settings.FirstDayResponse{FirstDayOfMonth: s.state.FirstDayOfMonth()}, nil
}

func (s *settingsService) UpdateFirstDay(ctx context.Context, req settings.UpdateFirstDayRequest) (settings.FirstDayResponse, error) {
	if err := s.state.SetFirstDayOfMonth(ctx, req.FirstDayOfMonth); err != nil {
		return settings.FirstDayResponse{}, err
	}

	return settings.FirstDayResponse{FirstDayOfMonth: req.FirstDayOfMonth}, nil
}

func (s *settingsService) UpdateAPIKey(ctx context.Context, req settings.UpdateAPIKeyRequest) (settings.APIKeyStatusResponse, error) {
	if err := s.state.SetAPIKey(ctx, req.APIKey); err != nil {
		return settings.APIKeyStatusResponse{}, err
	}

	return settings.APIKeyStatusResponse{Configured: true}, nil
}

func (s *settingsService) DeleteAPIKey(ctx context.Context) (settings.APIKeyStatusResponse, error) {
	if err := s.state.ClearAPIKey(ctx); err != nil {
		return settings.APIKeyStatusResponse{}, err
	}

	return settings.APIKeyStatusResponse{Configured: false}, nil
}
