package domain

import (
	"encoding/json"
	"strings"
)

// Breakdown é o mapeamento canônico rótulo → contagem de um campo de
// audiência. A Graph API já serviu esse dado em dois formatos: um objeto
// plano ("F.18-24": 10) e, nas versões mais recentes, uma lista de registros
// {value, dimension_values}. A normalização acontece uma única vez, na
// leitura do snapshot, e os consumidores só enxergam o formato plano.
type Breakdown map[string]float64

// UnmarshalJSON aceita qualquer um dos dois formatos e degrada para um
// mapeamento vazio quando o conteúdo não é reconhecido. Nunca falha: um
// campo de audiência malformado não pode derrubar a leitura do snapshot.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*b = Breakdown{}
		return nil
	}

	*b = NormalizeBreakdown(raw)
	return nil
}

// NormalizeBreakdown converte um valor de audiência já decodificado para o
// mapeamento canônico. Função total e idempotente: a saída alimentada de
// volta cai no caso de objeto plano e retorna inalterada.
func NormalizeBreakdown(raw any) Breakdown {
	if raw == nil {
		return Breakdown{}
	}

	switch value := raw.(type) {
	case Breakdown:
		return value

	case map[string]float64:
		return Breakdown(value)

	case map[string]any:
		// Formato legado: objeto plano com valores numéricos
		result := make(Breakdown, len(value))
		for key, entry := range value {
			number, ok := entry.(float64)
			if !ok {
				return Breakdown{}
			}
			result[key] = number
		}
		return result

	case []any:
		// Formato atual: lista de {value, dimension_values}. Entradas sem
		// um dos campos são descartadas.
		result := Breakdown{}
		for _, item := range value {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}

			number, hasValue := entry["value"].(float64)
			dims, hasDims := entry["dimension_values"].([]any)
			if !hasValue || !hasDims {
				continue
			}

			labels := make([]string, 0, len(dims))
			for _, dim := range dims {
				label, ok := dim.(string)
				if !ok {
					continue
				}
				labels = append(labels, label)
			}

			result[strings.Join(labels, ", ")] = number
		}
		return result
	}

	return Breakdown{}
}
