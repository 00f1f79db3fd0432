package domain

// AudienceOverview é o payload de audiência servido aos gráficos do site:
// divisão por gênero, distribuição etária, top cidades e o mapa de calor por
// estado. Calculado por requisição a partir do snapshot mais recente.
type AudienceOverview struct {
	Gender GenderSplit `json:"gender"`
	Ages   []AgeBand   `json:"ages"`
	Cities []CityCount `json:"cities"`
	States []StateHeat `json:"states"`
}

// GenderSplit é a divisão percentual entre homens e mulheres
type GenderSplit struct {
	MalePercent   int `json:"male_percent"`
	FemalePercent int `json:"female_percent"`
}

// AgeBand é uma faixa etária com o percentual sobre o total e a fração da
// barra relativa à maior faixa
type AgeBand struct {
	Range       string  `json:"range"`
	Count       float64 `json:"count"`
	Percent     int     `json:"percent"`
	BarFraction float64 `json:"bar_fraction"`
}

// CityCount é uma cidade do ranking com o percentual sobre o total de
// seguidores mapeados
type CityCount struct {
	Name        string  `json:"name"`
	Count       float64 `json:"count"`
	Percent     int     `json:"percent"`
	BarFraction float64 `json:"bar_fraction"`
}

// StateHeat é a entrada do mapa de calor de um estado brasileiro
type StateHeat struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Count     float64 `json:"count"`
	Intensity float64 `json:"intensity"`
	Color     string  `json:"color"`
}
