package domain

import "github.com/hfujimoto/athlete-site-api/pkg/utils"

// AggregatedMetrics é o objeto de valor calculado por requisição: os totais
// da janela pedida, o crescimento contra a janela imediatamente anterior de
// mesmo tamanho e o recorte de audiência do snapshot mais recente. Não é
// persistido.
type AggregatedMetrics struct {
	TotalReach         int       `json:"total_reach"`
	TotalImpressions   int       `json:"total_impressions"`
	TotalInteractions  int       `json:"total_interactions"`
	FollowersGained    int       `json:"followers_gained"`
	ReachGrowth        float64   `json:"reach_growth"`
	ImpressionsGrowth  float64   `json:"impressions_growth"`
	InteractionsGrowth float64   `json:"interactions_growth"`
	FollowersGrowth    float64   `json:"followers_growth"`
	AudienceCity       Breakdown `json:"audience_city"`
	AudienceGenderAge  Breakdown `json:"audience_gender_age"`
	AudienceCountry    Breakdown `json:"audience_country"`
}

// Growth calcula a variação percentual entre dois totais. Quando o período
// anterior é zero o resultado é 0, não um erro: a ausência de baseline
// degrada a comparação, mas não invalida o total atual.
func Growth(current, previous int) float64 {
	if previous == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(current-previous) / float64(previous) * 100)
}
