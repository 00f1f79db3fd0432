package domain

// Profile são os campos básicos do perfil business
type Profile struct {
	ID             string `json:"id"`
	FollowersCount int    `json:"followers_count"`
	MediaCount     int    `json:"media_count"`
}

// Me é a resposta de /me com as páginas vinculadas ao token
type Me struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Accounts struct {
		Data []Page `json:"data"`
	} `json:"accounts"`
}

type Page struct {
	ID                       string                    `json:"id"`
	InstagramBusinessAccount *InstagramBusinessAccount `json:"instagram_business_account"`
}

type InstagramBusinessAccount struct {
	ID string `json:"id"`
}

// APIError é o envelope de erro da Graph API
type APIError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
