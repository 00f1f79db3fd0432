package ga4

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/hfujimoto/athlete-site-api/internal/config"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/pkg/errors"
	"golang.org/x/oauth2/jwt"
)

const (
	analyticsDataURL = "https://analyticsdata.googleapis.com/v1beta"
	analyticsScope   = "https://www.googleapis.com/auth/analytics.readonly"
	googleTokenURL   = "https://oauth2.googleapis.com/token"
)

// Integrator consulta a Data API do GA4 com uma service account. Quando a
// propriedade ou as credenciais não estão configuradas, retorna métricas
// zeradas marcadas como mock em vez de falhar.
type Integrator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Integrator {
	return &Integrator{cfg: cfg}
}

type serviceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

type runReportRequest struct {
	DateRanges []dateRange `json:"dateRanges"`
	Dimensions []named     `json:"dimensions,omitempty"`
	Metrics    []named     `json:"metrics"`
	OrderBys   []orderBy   `json:"orderBys,omitempty"`
}

type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type named struct {
	Name string `json:"name"`
}

type orderBy struct {
	Dimension dimensionOrder `json:"dimension"`
}

type dimensionOrder struct {
	OrderType     string `json:"orderType"`
	DimensionName string `json:"dimensionName"`
}

type runReportResponse struct {
	Rows []reportRow `json:"rows"`
}

type reportRow struct {
	DimensionValues []reportValue `json:"dimensionValues"`
	MetricValues    []reportValue `json:"metricValues"`
}

type reportValue struct {
	Value string `json:"value"`
}

// GetWebsiteMetrics retorna os totais de 30 dias e a série diária de
// usuários ativos do site
func (i *Integrator) GetWebsiteMetrics(ctx context.Context) (*domain.WebsiteMetrics, error) {
	if i.cfg.GA4.PropertyID == "" || i.cfg.GA4.CredentialsJSON == "" {
		return &domain.WebsiteMetrics{
			History: []domain.WebsiteDailyUser{},
			Mock:    true,
		}, nil
	}

	client, err := i.httpClient(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := i.runReport(ctx, client, runReportRequest{
		DateRanges: []dateRange{{StartDate: "30daysAgo", EndDate: "today"}},
		Metrics: []named{
			{Name: "activeUsers"},
			{Name: "sessions"},
			{Name: "screenPageViews"},
			{Name: "engagementRate"},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar os totais do GA4")
	}

	history, err := i.runReport(ctx, client, runReportRequest{
		DateRanges: []dateRange{{StartDate: "30daysAgo", EndDate: "today"}},
		Dimensions: []named{{Name: "date"}},
		Metrics:    []named{{Name: "activeUsers"}},
		OrderBys: []orderBy{
			{Dimension: dimensionOrder{OrderType: "ALPHANUMERIC", DimensionName: "date"}},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar a série diária do GA4")
	}

	metrics := &domain.WebsiteMetrics{
		History: make([]domain.WebsiteDailyUser, 0, len(history.Rows)),
	}

	if len(totals.Rows) > 0 {
		values := totals.Rows[0].MetricValues
		metrics.ActiveUsers = metricInt(values, 0)
		metrics.Sessions = metricInt(values, 1)
		metrics.ScreenPageViews = metricInt(values, 2)
		if len(values) > 3 {
			metrics.EngagementRate, _ = strconv.ParseFloat(values[3].Value, 64)
		}
	}

	for _, row := range history.Rows {
		if len(row.DimensionValues) == 0 {
			continue
		}

		metrics.History = append(metrics.History, domain.WebsiteDailyUser{
			Date:  formatGA4Date(row.DimensionValues[0].Value),
			Users: metricInt(row.MetricValues, 0),
		})
	}

	return metrics, nil
}

func (i *Integrator) httpClient(ctx context.Context) (*http.Client, error) {
	var account serviceAccount
	if err := json.Unmarshal([]byte(i.cfg.GA4.CredentialsJSON), &account); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar as credenciais do GA4")
	}

	conf := &jwt.Config{
		Email:      account.ClientEmail,
		PrivateKey: []byte(account.PrivateKey),
		Scopes:     []string{analyticsScope},
		TokenURL:   googleTokenURL,
	}

	return conf.Client(ctx), nil
}

func (i *Integrator) runReport(ctx context.Context, client *http.Client, request runReportRequest) (*runReportResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/properties/%s:runReport", analyticsDataURL, i.cfg.GA4.PropertyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GA4 respondeu %s: %s", resp.Status, string(data))
	}

	var response runReportResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func metricInt(values []reportValue, index int) int {
	if index >= len(values) {
		return 0
	}

	value, _ := strconv.Atoi(values[index].Value)
	return value
}

// formatGA4Date converte YYYYMMDD para YYYY-MM-DD
func formatGA4Date(date string) string {
	if len(date) != 8 {
		return date
	}
	return date[0:4] + "-" + date[4:6] + "-" + date[6:8]
}
