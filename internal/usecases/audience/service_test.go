package audience

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hfujimoto/athlete-site-api/infrastructure/repository/mocks"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
)

func TestReduceGenderAge_SplitAndBands(t *testing.T) {
	breakdown := domain.Breakdown{
		"F, 25-34": 90,
		"M, 25-34": 60,
		"F, 18-24": 30,
		"M, 18-24": 20,
	}

	split, ages := ReduceGenderAge(breakdown)

	// 120 mulheres contra 80 homens: 60/40
	assert.Equal(t, 60, split.FemalePercent)
	assert.Equal(t, 40, split.MalePercent)

	require.Len(t, ages, 2)
	assert.Equal(t, "18-24", ages[0].Range)
	assert.Equal(t, "25-34", ages[1].Range)
	assert.Equal(t, float64(50), ages[0].Count)
	assert.Equal(t, float64(150), ages[1].Count)
	assert.Equal(t, 25, ages[0].Percent)
	assert.Equal(t, 75, ages[1].Percent)
	assert.Equal(t, float64(1), ages[1].BarFraction)
}

func TestReduceGenderAge_LegacyDotSeparator(t *testing.T) {
	breakdown := domain.Breakdown{
		"F.18-24": 120,
		"M.35-44": 80,
	}

	split, ages := ReduceGenderAge(breakdown)

	assert.Equal(t, 60, split.FemalePercent)
	assert.Equal(t, 40, split.MalePercent)
	require.Len(t, ages, 2)
	assert.Equal(t, "18-24", ages[0].Range)
	assert.Equal(t, "35-44", ages[1].Range)
}

func TestReduceGenderAge_OpenEndedBandSortsLast(t *testing.T) {
	breakdown := domain.Breakdown{
		"F, 65+":   10,
		"F, 18-24": 50,
		"M, 45-54": 25,
	}

	_, ages := ReduceGenderAge(breakdown)

	require.Len(t, ages, 3)
	assert.Equal(t, "18-24", ages[0].Range)
	assert.Equal(t, "45-54", ages[1].Range)
	assert.Equal(t, "65+", ages[2].Range)
}

func TestReduceGenderAge_Empty(t *testing.T) {
	split, ages := ReduceGenderAge(domain.Breakdown{})

	assert.Equal(t, 0, split.MalePercent)
	assert.Equal(t, 0, split.FemalePercent)
	assert.Empty(t, ages)
}

func TestReduceCities_MergesStateSuffix(t *testing.T) {
	breakdown := domain.Breakdown{
		"São Paulo, São Paulo (state)": 100,
		"São Paulo":                    50,
		"Campinas, São Paulo (state)":  40,
	}

	cities := ReduceCities(breakdown)

	require.Len(t, cities, 2)
	assert.Equal(t, "São Paulo", cities[0].Name)
	assert.Equal(t, float64(150), cities[0].Count)
	assert.Equal(t, "Campinas", cities[1].Name)
	// 150 de 190 seguidores mapeados
	assert.Equal(t, 79, cities[0].Percent)
	assert.Equal(t, float64(1), cities[0].BarFraction)
}

func TestReduceCities_TopEight(t *testing.T) {
	breakdown := domain.Breakdown{}
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	for i, name := range names {
		breakdown[name] = float64(100 - i*5)
	}

	cities := ReduceCities(breakdown)

	require.Len(t, cities, 8)
	assert.Equal(t, "A", cities[0].Name)
	assert.Equal(t, "H", cities[7].Name)
}

func TestReduceStates_MapsAndDropsUnknown(t *testing.T) {
	breakdown := domain.Breakdown{
		"São Paulo, São Paulo (state)":           100,
		"Campinas, São Paulo (state)":            50,
		"Rio de Janeiro, Rio de Janeiro (state)": 80,
		"Brasília, Federal District":             30,
		"Lisboa, Lisbon":                         25,
		"Curitiba":                               40,
	}

	states := ReduceStates(breakdown)

	// Lisboa não mapeia para estado brasileiro e Curitiba não tem estado no nome
	require.Len(t, states, 3)
	assert.Equal(t, "SP", states[0].Code)
	assert.Equal(t, "São Paulo", states[0].Name)
	assert.Equal(t, float64(150), states[0].Count)
	assert.Equal(t, "RJ", states[1].Code)
	assert.Equal(t, "DF", states[2].Code)
	assert.Equal(t, "Distrito Federal", states[2].Name)
}

func TestReduceStates_HeatRamp(t *testing.T) {
	breakdown := domain.Breakdown{
		"São Paulo, São Paulo (state)": 200,
		"Manaus, Amazonas":             10,
	}

	states := ReduceStates(breakdown)

	require.Len(t, states, 2)

	// Estado dominante satura a rampa
	assert.Equal(t, float64(1), states[0].Intensity)
	assert.Equal(t, "rgba(240,170,40,1.00)", states[0].Color)

	// Estado pequeno fica no piso de intensidade
	assert.Equal(t, 0.15, states[1].Intensity)
	assert.Equal(t, "rgba(53,196,108,0.49)", states[1].Color)
}

func TestGetOverview_EmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	service := NewService(dailyRepo)

	dailyRepo.EXPECT().GetLatest().Return(nil, nil)

	overview, err := service.GetOverview(context.Background())

	require.NoError(t, err)
	assert.Empty(t, overview.Ages)
	assert.Empty(t, overview.Cities)
	assert.Empty(t, overview.States)
	assert.Equal(t, 0, overview.Gender.MalePercent)
}

func TestGetOverview_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	service := NewService(dailyRepo)

	dailyRepo.EXPECT().GetLatest().Return(nil, errors.New("banco indisponível"))

	overview, err := service.GetOverview(context.Background())

	require.Error(t, err)
	assert.Nil(t, overview)
}

func TestGetOverview_FromLatestSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	service := NewService(dailyRepo)

	dailyRepo.EXPECT().GetLatest().Return(&domain.DailyMetric{
		AudienceGenderAge: domain.Breakdown{"F, 25-34": 60, "M, 25-34": 40},
		AudienceCity:      domain.Breakdown{"São Paulo, São Paulo (state)": 100},
	}, nil)

	overview, err := service.GetOverview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 60, overview.Gender.FemalePercent)
	require.Len(t, overview.Cities, 1)
	assert.Equal(t, "São Paulo", overview.Cities[0].Name)
	require.Len(t, overview.States, 1)
	assert.Equal(t, "SP", overview.States[0].Code)
}
