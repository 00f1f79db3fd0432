package domain

import "encoding/json"

// InsightsResponse é a resposta de /{ig-user-id}/insights. O campo value de
// cada métrica varia de formato: número para métricas diárias, objeto plano
// ou lista de registros dimensionais para as métricas de audiência — por
// isso fica em json.RawMessage até o consumidor decidir como decodificar.
type InsightsResponse struct {
	Data []InsightMetric `json:"data"`
}

type InsightMetric struct {
	Name   string         `json:"name"`
	Period string         `json:"period"`
	Values []InsightValue `json:"values"`
}

type InsightValue struct {
	Value   json.RawMessage `json:"value"`
	EndTime string          `json:"end_time"`
}

// MetricValue retorna o primeiro valor numérico da métrica com o nome dado,
// ou 0 quando a métrica não veio na resposta
func (r *InsightsResponse) MetricValue(name string) int {
	raw := r.metricRaw(name)
	if raw == nil {
		return 0
	}

	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0
	}
	return value
}

// MetricRaw retorna o primeiro valor bruto da métrica com o nome dado, para
// os campos de audiência cujo formato varia por versão da API
func (r *InsightsResponse) MetricRaw(name string) json.RawMessage {
	return r.metricRaw(name)
}

func (r *InsightsResponse) metricRaw(name string) json.RawMessage {
	for _, metric := range r.Data {
		if metric.Name != name {
			continue
		}
		if len(metric.Values) == 0 {
			return nil
		}
		return metric.Values[0].Value
	}
	return nil
}
