package photo

import (
	"github.com/8Gelos8/DreamPrintUA/internal/domain/photo"
)

type uploadInput struct {
	Body uploadRequest
}

type uploadRequest struct {
	Files []uploadFile `json:"files" minItems:"1" doc:"Батч файлів для завантаження"`
}

type uploadFile struct {
	Name  string `json:"name" minLength:"1" doc:"Ім'я файлу"`
	Title string `json:"title,omitempty" doc:"Назва виробу (опційно)"`
	Data  string `json:"data" minLength:"1" doc:"Вміст файлу в base64"`
}

type uploadOutput struct {
	Body uploadResponse
}

type uploadResponse struct {
	Accepted []photo.Photo  `json:"accepted"`
	Rejected []rejectedFile `json:"rejected,omitempty"`
}

type rejectedFile struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type deleteInput struct {
	ID string `path:"id" doc:"Ідентифікатор фото"`
}

type deleteOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
