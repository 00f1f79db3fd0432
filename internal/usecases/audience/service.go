package audience

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/hfujimoto/athlete-site-api/infrastructure/repository"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
	"github.com/hfujimoto/athlete-site-api/pkg/utils"
)

const (
	topCitiesLimit = 8
	topStatesLimit = 10
)

// Overviewer define a interface do recorte de audiência do perfil
type Overviewer interface {
	// GetOverview monta o recorte de audiência a partir do snapshot mais
	// recente da tabela de métricas diárias
	GetOverview(ctx context.Context) (*domain.AudienceOverview, error)
}

// Service implementa a interface Overviewer com redutores puros sobre os
// recortes normalizados
type Service struct {
	dailyMetricRepository repository.DailyMetricRepository
}

func NewService(dailyMetricRepo repository.DailyMetricRepository) *Service {
	return &Service{
		dailyMetricRepository: dailyMetricRepo,
	}
}

// GetOverview monta a divisão de gênero, as faixas etárias, o ranking de
// cidades e o mapa de calor por estado. Um banco sem snapshots produz um
// recorte vazio, não um erro.
func (s *Service) GetOverview(ctx context.Context) (*domain.AudienceOverview, error) {
	latest, err := s.dailyMetricRepository.GetLatest()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar o último snapshot para o recorte de audiência")
		return nil, err
	}

	overview := &domain.AudienceOverview{
		Ages:   []domain.AgeBand{},
		Cities: []domain.CityCount{},
		States: []domain.StateHeat{},
	}

	if latest == nil {
		return overview, nil
	}

	genderAge := domain.NormalizeBreakdown(latest.AudienceGenderAge)
	cities := domain.NormalizeBreakdown(latest.AudienceCity)

	overview.Gender, overview.Ages = ReduceGenderAge(genderAge)
	overview.Cities = ReduceCities(cities)
	overview.States = ReduceStates(cities)

	return overview, nil
}

// ReduceGenderAge consolida o recorte de gênero e idade. As chaves chegam em
// dois formatos, "F.18-24" e "F, 18-24", dependendo da idade do snapshot.
func ReduceGenderAge(breakdown domain.Breakdown) (domain.GenderSplit, []domain.AgeBand) {
	var male, female float64
	ageDistribution := map[string]float64{}

	for key, value := range breakdown {
		separator := "."
		if strings.Contains(key, ", ") {
			separator = ", "
		}

		parts := strings.SplitN(key, separator, 2)
		gender := strings.TrimSpace(parts[0])

		switch gender {
		case "M":
			male += value
		case "F":
			female += value
		}

		if len(parts) == 2 {
			if age := strings.TrimSpace(parts[1]); age != "" {
				ageDistribution[age] += value
			}
		}
	}

	split := domain.GenderSplit{}
	if total := male + female; total > 0 {
		split.MalePercent = utils.RoundPercent(male / total * 100)
		split.FemalePercent = utils.RoundPercent(female / total * 100)
	}

	ages := make([]domain.AgeBand, 0, len(ageDistribution))
	maxAge := 1.0
	totalAge := 0.0
	for _, value := range ageDistribution {
		totalAge += value
		if value > maxAge {
			maxAge = value
		}
	}
	if totalAge == 0 {
		totalAge = 1
	}

	for ageRange, value := range ageDistribution {
		ages = append(ages, domain.AgeBand{
			Range:       ageRange,
			Count:       value,
			Percent:     utils.RoundPercent(value / totalAge * 100),
			BarFraction: value / maxAge,
		})
	}

	// Ordena as faixas pelo limite inferior ("18-24" antes de "25-34")
	sort.SliceStable(ages, func(i, j int) bool {
		return ageLowerBound(ages[i].Range) < ageLowerBound(ages[j].Range)
	})

	return split, ages
}

// ReduceCities agrega o recorte por cidade descartando o estado do nome
// ("São Paulo, São Paulo (state)" vira "São Paulo", somando duplicatas) e
// retorna as oito maiores
func ReduceCities(breakdown domain.Breakdown) []domain.CityCount {
	merged := map[string]float64{}
	for key, value := range breakdown {
		name := strings.TrimSpace(strings.SplitN(key, ",", 2)[0])
		if name == "" {
			name = key
		}
		merged[name] += value
	}

	type cityEntry struct {
		name  string
		value float64
	}

	entries := make([]cityEntry, 0, len(merged))
	total := 0.0
	for name, value := range merged {
		entries = append(entries, cityEntry{name: name, value: value})
		total += value
	}
	if total == 0 {
		total = 1
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].name < entries[j].name
	})

	if len(entries) > topCitiesLimit {
		entries = entries[:topCitiesLimit]
	}

	maxVal := 1.0
	if len(entries) > 0 && entries[0].value > 0 {
		maxVal = entries[0].value
	}

	cities := make([]domain.CityCount, 0, len(entries))
	for _, entry := range entries {
		cities = append(cities, domain.CityCount{
			Name:        entry.name,
			Count:       entry.value,
			Percent:     utils.RoundPercent(entry.value / total * 100),
			BarFraction: entry.value / maxVal,
		})
	}

	return cities
}

// ReduceStates agrega as cidades por estado brasileiro usando o último
// segmento do nome ("São Paulo, São Paulo (state)"). Cidades sem um estado
// mapeável são descartadas. Retorna os dez maiores estados com a cor do mapa
// de calor.
func ReduceStates(breakdown domain.Breakdown) []domain.StateHeat {
	byState := map[string]float64{}
	for key, value := range breakdown {
		parts := strings.Split(key, ", ")
		if len(parts) < 2 {
			continue
		}

		code, ok := domain.StateNameToCode[parts[len(parts)-1]]
		if !ok {
			continue
		}
		byState[code] += value
	}

	type stateEntry struct {
		code  string
		value float64
	}

	entries := make([]stateEntry, 0, len(byState))
	maxVal := 1.0
	for code, value := range byState {
		entries = append(entries, stateEntry{code: code, value: value})
		if value > maxVal {
			maxVal = value
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].code < entries[j].code
	})

	if len(entries) > topStatesLimit {
		entries = entries[:topStatesLimit]
	}

	states := make([]domain.StateHeat, 0, len(entries))
	for _, entry := range entries {
		intensity := math.Max(0.15, entry.value/maxVal)
		states = append(states, domain.StateHeat{
			Code:      entry.code,
			Name:      domain.StateCodeToName[entry.code],
			Count:     entry.value,
			Intensity: intensity,
			Color:     heatColor(intensity),
		})
	}

	return states
}

// heatColor converte a intensidade na rampa verde-azulada para dourado usada
// pelo mapa
func heatColor(intensity float64) string {
	r := int(math.Round(20 + intensity*220))
	g := int(math.Round(200 - intensity*30))
	b := int(math.Round(120 - intensity*80))
	alpha := 0.4 + intensity*0.6

	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", r, g, b, alpha)
}

// ageLowerBound extrai o limite inferior numérico de uma faixa como "18-24"
// ou "65+"; faixas não numéricas ordenam primeiro
func ageLowerBound(ageRange string) int {
	prefix := strings.SplitN(ageRange, "-", 2)[0]
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), "+")

	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return n
}
