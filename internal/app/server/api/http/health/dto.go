package health

type Input struct{}

type Output struct {
	Body Response
}

// Response — відповідь перевірки живості сервісу.
type Response struct {
	Status string `json:"status" example:"OK" doc:"Стан сервісу"`
}
