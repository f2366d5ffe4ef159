package suppressing

import (
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/repository"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// SuppressionTracker controla as marcas "ignorar aviso de ajuste" por
// (cliente, plataforma). Uma marca vale apenas para a data de calendário em
// que foi criada, na timezone fixa da agência; no dia seguinte é inerte sem
// precisar de varredura de expiração.
type SuppressionTracker interface {
	MarkSuppressed(clientID string, platform domain.Platform) error
	IsSuppressed(clientID string, platform domain.Platform) (bool, error)
	IsSuppressedOn(clientID string, platform domain.Platform, date time.Time) (bool, error)
}

type Service struct {
	markRepo repository.SuppressionMarkRepository
	location *time.Location
	now      func() time.Time
}

func NewService(markRepo repository.SuppressionMarkRepository, location *time.Location) SuppressionTracker {
	return &Service{
		markRepo: markRepo,
		location: location,
		now:      time.Now,
	}
}

func (s *Service) MarkSuppressed(clientID string, platform domain.Platform) error {
	today := s.today()

	err := s.markRepo.Save(&domain.SuppressionMark{
		ClientID: clientID,
		Platform: platform,
		Date:     today,
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"client_id": clientID,
		"platform":  platform,
		"date":      today.Format(time.DateOnly),
	}).Info("suppressing: aviso de ajuste suprimido para hoje")

	return nil
}

func (s *Service) IsSuppressed(clientID string, platform domain.Platform) (bool, error) {
	return s.markRepo.Exists(clientID, platform, s.today())
}

// IsSuppressedOn consulta a marca para uma data específica. Marcas de dias
// anteriores à data consultada são ausentes por construção.
func (s *Service) IsSuppressedOn(clientID string, platform domain.Platform, date time.Time) (bool, error) {
	return s.markRepo.Exists(clientID, platform, utils.TruncateToDate(date.In(s.location)))
}

func (s *Service) today() time.Time {
	return utils.TruncateToDate(s.now().In(s.location))
}
