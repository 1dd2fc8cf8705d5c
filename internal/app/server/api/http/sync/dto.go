package sync

type publishOutput struct {
	Body publishResponse
}

type publishResponse struct {
	Status string `json:"status"`
	Commit string `json:"commit,omitempty" doc:"SHA коміту нової ревізії"`
}
