package igclient

import (
	"net/url"
	"strconv"

	igdomain "github.com/hfujimoto/athlete-site-api/infrastructure/integrator/instagram/domain"
	"github.com/pkg/errors"
)

const mediaFields = "id,media_type,media_url,thumbnail_url,caption,permalink,timestamp,like_count,comments_count"

func (c *GraphClient) GetRecentMedia(igUserID string, limit int) (*igdomain.MediaResponse, error) {
	params := url.Values{
		"fields": {mediaFields},
		"limit":  {strconv.Itoa(limit)},
	}

	var response igdomain.MediaResponse
	if err := c.get("/"+igUserID+"/media", params, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao consultar mídias recentes")
	}

	return &response, nil
}
