package content

import (
	"github.com/8Gelos8/DreamPrintUA/internal/domain/content"
)

type getOutput struct {
	Body content.Content
}

type patchInput struct {
	Body content.Patch
}

type patchOutput struct {
	Body content.Content
}
