package admin

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Password string `json:"password" minLength:"1" doc:"Парольна фраза адміністратора"`
}

type loginOutput struct {
	Body sessionResponse
}

type sessionResponse struct {
	IsAdmin bool `json:"is_admin"`
}

type githubInput struct {
	Body githubRequest
}

type githubRequest struct {
	Token    string `json:"token" minLength:"1" doc:"Personal access token"`
	Username string `json:"username" minLength:"1" doc:"Власник репозиторію"`
	Repo     string `json:"repo" minLength:"1" doc:"Назва репозиторію"`
}

type githubOutput struct {
	Body githubResponse
}

type githubResponse struct {
	Configured bool   `json:"configured"`
	Username   string `json:"username,omitempty"`
	Repo       string `json:"repo,omitempty"`
	Token      string `json:"token,omitempty" doc:"Замаскований токен"`
}
