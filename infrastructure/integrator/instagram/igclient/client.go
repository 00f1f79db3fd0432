package igclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	igdomain "github.com/hfujimoto/athlete-site-api/infrastructure/integrator/instagram/domain"
	"github.com/hfujimoto/athlete-site-api/internal/config"
	"github.com/hfujimoto/athlete-site-api/pkg/utils"
	"github.com/pkg/errors"
)

// Client é o acesso de leitura à Graph API do Instagram
type Client interface {
	DiscoverBusinessAccountID() (string, error)
	GetProfile(igUserID string) (*igdomain.Profile, error)
	GetDailyInsights(igUserID string) (*igdomain.InsightsResponse, error)
	Get28DayInsights(igUserID string) (*igdomain.InsightsResponse, error)
	GetAudienceInsights(igUserID string) (*igdomain.InsightsResponse, error)
	GetRecentMedia(igUserID string, limit int) (*igdomain.MediaResponse, error)
}

type GraphClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GraphClient{
		Cfg: cfg,
	}
}

// DiscoverBusinessAccountID percorre as páginas vinculadas ao token até
// encontrar uma com conta business do Instagram associada
func (c *GraphClient) DiscoverBusinessAccountID() (string, error) {
	var me igdomain.Me
	if err := c.get("/me", url.Values{"fields": {"id,name,accounts"}}, &me); err != nil {
		return "", errors.Wrap(err, "erro ao consultar /me")
	}

	for _, page := range me.Accounts.Data {
		var detail igdomain.Page
		err := c.get("/"+page.ID, url.Values{"fields": {"instagram_business_account"}}, &detail)
		if err != nil {
			return "", errors.Wrapf(err, "erro ao consultar página %s", page.ID)
		}

		if detail.InstagramBusinessAccount != nil && detail.InstagramBusinessAccount.ID != "" {
			return detail.InstagramBusinessAccount.ID, nil
		}
	}

	return "", errors.New("nenhuma conta business do Instagram vinculada às páginas do token")
}

func (c *GraphClient) GetProfile(igUserID string) (*igdomain.Profile, error) {
	var profile igdomain.Profile
	err := c.get("/"+igUserID, url.Values{"fields": {"followers_count,media_count"}}, &profile)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar perfil")
	}

	return &profile, nil
}

// get monta a URL com o access token, executa a requisição e decodifica a
// resposta, traduzindo o envelope de erro da Graph API
func (c *GraphClient) get(path string, params url.Values, out any) error {
	params.Set("access_token", c.Cfg.Instagram.AccessToken)

	fullURL := fmt.Sprintf("%s%s?%s", c.Cfg.Instagram.URL, path, params.Encode())

	body, err := utils.MakeRequest(fullURL)
	if err != nil {
		return err
	}

	var apiErr igdomain.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("erro da Graph API (%d): %s", apiErr.Error.Code, apiErr.Error.Message)
	}

	return json.Unmarshal(body, out)
}
