package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container — обгортка над huma.Middlewares для покрокового збирання
// ланцюжка під кожен хендлер.
type Container struct {
	huma.Middlewares
}

func NewContainer() *Container {
	return &Container{
		Middlewares: make(huma.Middlewares, 0),
	}
}

func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.Middlewares = append(mc.Middlewares, middleware)
}

// GetAllAndClear повертає зібрані мідлвари і очищує контейнер.
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = nil
	return result
}
