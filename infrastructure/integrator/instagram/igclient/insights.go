package igclient

import (
	"net/url"

	igdomain "github.com/hfujimoto/athlete-site-api/infrastructure/integrator/instagram/domain"
	"github.com/pkg/errors"
)

const (
	dailyMetrics    = "reach,impressions,profile_views,email_contacts,phone_call_clicks,text_message_clicks,get_directions_clicks,website_clicks"
	rollingMetrics  = "reach,impressions"
	audienceMetrics = "audience_city,audience_country,audience_gender_age"
)

func (c *GraphClient) GetDailyInsights(igUserID string) (*igdomain.InsightsResponse, error) {
	return c.insights(igUserID, dailyMetrics, "day")
}

func (c *GraphClient) Get28DayInsights(igUserID string) (*igdomain.InsightsResponse, error) {
	return c.insights(igUserID, rollingMetrics, "days_28")
}

// GetAudienceInsights busca os recortes demográficos. Dependendo da versão
// da API o value de cada métrica vem como objeto plano ou como lista
// dimensional; a decodificação fica a cargo do consumidor.
func (c *GraphClient) GetAudienceInsights(igUserID string) (*igdomain.InsightsResponse, error) {
	return c.insights(igUserID, audienceMetrics, "lifetime")
}

func (c *GraphClient) insights(igUserID, metrics, period string) (*igdomain.InsightsResponse, error) {
	params := url.Values{
		"metric": {metrics},
		"period": {period},
	}

	var response igdomain.InsightsResponse
	if err := c.get("/"+igUserID+"/insights", params, &response); err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar insights (period=%s)", period)
	}

	return &response, nil
}
