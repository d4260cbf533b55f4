package google

import (
	"context"
	"fmt"

	cal "github.com/cosroom/cosroom/pkg/calendar"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Service hands out Google-backed data sources for authenticated requests.
// It implements calendar.DataSourceProvider.
type Service struct {
	auth *GoogleAuth
}

func NewService(auth *GoogleAuth) *Service {
	return &Service{auth: auth}
}

func (s *Service) DataSource(ctx context.Context) (cal.DataSource, error) {
	client := s.auth.getClient(ctx)
	if client == nil {
		log.Debug("user is unauthenticated, authentication is required")
		return nil, cal.ErrUnauthenticated
	}
	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to retrieve Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}
	return &dataSource{service: service}, nil
}
