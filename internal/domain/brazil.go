package domain

// StateNameToCode mapeia os nomes de estado como a Graph API os envia no
// campo de cidade ("São Paulo, São Paulo (state)") para a sigla. A API usa
// nomes em inglês e, para alguns estados, o sufixo "(state)"; as duas
// grafias mapeiam para a mesma sigla.
var StateNameToCode = map[string]string{
	"Acre":                  "AC",
	"Alagoas":               "AL",
	"Amapá":                 "AP",
	"Amazonas":              "AM",
	"Bahia":                 "BA",
	"Ceará":                 "CE",
	"Federal District":      "DF",
	"Espírito Santo":        "ES",
	"Goiás":                 "GO",
	"Maranhão":              "MA",
	"Mato Grosso":           "MT",
	"Mato Grosso do Sul":    "MS",
	"Minas Gerais":          "MG",
	"Pará":                  "PA",
	"Paraíba":               "PB",
	"Paraná":                "PR",
	"Pernambuco":            "PE",
	"Piauí":                 "PI",
	"Rio de Janeiro (state)": "RJ",
	"Rio de Janeiro":        "RJ",
	"Rio Grande do Norte":   "RN",
	"Rio Grande do Sul":     "RS",
	"Rondônia":              "RO",
	"Roraima":               "RR",
	"Santa Catarina":        "SC",
	"São Paulo (state)":     "SP",
	"São Paulo":             "SP",
	"Sergipe":               "SE",
	"Tocantins":             "TO",
}

// StateCodeToName traduz a sigla para o nome exibido na legenda do mapa
var StateCodeToName = map[string]string{
	"AC": "Acre",
	"AL": "Alagoas",
	"AP": "Amapá",
	"AM": "Amazonas",
	"BA": "Bahia",
	"CE": "Ceará",
	"DF": "Distrito Federal",
	"ES": "Espírito Santo",
	"GO": "Goiás",
	"MA": "Maranhão",
	"MT": "Mato Grosso",
	"MS": "Mato Grosso do Sul",
	"MG": "Minas Gerais",
	"PA": "Pará",
	"PB": "Paraíba",
	"PR": "Paraná",
	"PE": "Pernambuco",
	"PI": "Piauí",
	"RJ": "Rio de Janeiro",
	"RN": "Rio Grande do Norte",
	"RS": "Rio Grande do Sul",
	"RO": "Rondônia",
	"RR": "Roraima",
	"SC": "Santa Catarina",
	"SP": "São Paulo",
	"SE": "Sergipe",
	"TO": "Tocantins",
}
