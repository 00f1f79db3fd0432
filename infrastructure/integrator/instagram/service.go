package instagram

import (
	"encoding/json"
	"time"

	"github.com/hfujimoto/athlete-site-api/infrastructure/integrator/instagram/igclient"
	"github.com/hfujimoto/athlete-site-api/internal/config"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/hfujimoto/athlete-site-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Integrator transforma as respostas da Graph API no snapshot diário e nas
// publicações do site. É o único ponto onde os dois formatos de audiência
// são normalizados para o mapeamento canônico.
type Integrator struct {
	cfg    *config.Config
	client igclient.Client

	// igUserID é resolvido uma vez (config ou descoberta) e reutilizado
	igUserID string
}

func New(cfg *config.Config, client igclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

// resolveUserID usa o ID configurado ou descobre a conta business vinculada
func (i *Integrator) resolveUserID() (string, error) {
	if i.igUserID != "" {
		return i.igUserID, nil
	}

	if i.cfg.Instagram.IGUserID != "" {
		i.igUserID = i.cfg.Instagram.IGUserID
		return i.igUserID, nil
	}

	id, err := i.client.DiscoverBusinessAccountID()
	if err != nil {
		return "", err
	}

	logrus.WithField("ig_user_id", id).Info("Conta business do Instagram descoberta")
	i.igUserID = id
	return id, nil
}

// FetchDailySnapshot consulta perfil, métricas diárias, métricas de 28 dias
// e demografia, e monta o snapshot do dia corrente
func (i *Integrator) FetchDailySnapshot() (*domain.DailyMetric, error) {
	igUserID, err := i.resolveUserID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao resolver conta do Instagram")
	}

	profile, err := i.client.GetProfile(igUserID)
	if err != nil {
		return nil, err
	}

	daily, err := i.client.GetDailyInsights(igUserID)
	if err != nil {
		return nil, err
	}

	rolling, err := i.client.Get28DayInsights(igUserID)
	if err != nil {
		return nil, err
	}

	// Demografia indisponível não invalida os contadores do dia
	audience, err := i.client.GetAudienceInsights(igUserID)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao consultar demografia da audiência, seguindo sem recortes")
		audience = nil
	}

	metric := &domain.DailyMetric{
		Date:                utils.DateOnly(time.Now()),
		FollowersCount:      profile.FollowersCount,
		MediaCount:          profile.MediaCount,
		ReachDaily:          daily.MetricValue("reach"),
		ImpressionsDaily:    daily.MetricValue("impressions"),
		Reach28d:            rolling.MetricValue("reach"),
		Impressions28d:      rolling.MetricValue("impressions"),
		ProfileViewsDaily:   daily.MetricValue("profile_views"),
		EmailContacts:       daily.MetricValue("email_contacts"),
		WebsiteClicks:       daily.MetricValue("website_clicks"),
		PhoneCallClicks:     daily.MetricValue("phone_call_clicks"),
		TextMessageClicks:   daily.MetricValue("text_message_clicks"),
		GetDirectionsClicks: daily.MetricValue("get_directions_clicks"),
		AudienceCity:        domain.Breakdown{},
		AudienceGenderAge:   domain.Breakdown{},
		AudienceCountry:     domain.Breakdown{},
	}

	if audience != nil {
		metric.AudienceCity = decodeBreakdown(audience.MetricRaw("audience_city"))
		metric.AudienceGenderAge = decodeBreakdown(audience.MetricRaw("audience_gender_age"))
		metric.AudienceCountry = decodeBreakdown(audience.MetricRaw("audience_country"))
	}

	return metric, nil
}

// FetchRecentContent busca as últimas publicações do perfil para a vitrine
// de conteúdo do site
func (i *Integrator) FetchRecentContent(limit int) ([]*domain.TopContentItem, error) {
	igUserID, err := i.resolveUserID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao resolver conta do Instagram")
	}

	response, err := i.client.GetRecentMedia(igUserID, limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]*domain.TopContentItem, 0, len(response.Data))
	for _, media := range response.Data {
		thumbnail := media.ThumbnailURL
		if thumbnail == "" {
			thumbnail = media.MediaURL
		}

		items = append(items, &domain.TopContentItem{
			ID:            media.ID,
			MediaType:     media.MediaType,
			MediaURL:      media.MediaURL,
			ThumbnailURL:  thumbnail,
			Caption:       media.Caption,
			Permalink:     media.Permalink,
			LikeCount:     media.LikeCount,
			CommentsCount: media.CommentsCount,
			Timestamp:     media.Timestamp,
			LastUpdated:   now,
		})
	}

	return items, nil
}

func decodeBreakdown(raw json.RawMessage) domain.Breakdown {
	if raw == nil {
		return domain.Breakdown{}
	}

	var breakdown domain.Breakdown
	_ = json.Unmarshal(raw, &breakdown)
	if breakdown == nil {
		breakdown = domain.Breakdown{}
	}
	return breakdown
}
