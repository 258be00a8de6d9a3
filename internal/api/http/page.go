package httpapi

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-widget/internal/store"
)

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("widget").Parse(pageHTML))

type pageData struct {
	State  store.RenderState
	Notice string
}

func renderPage(c *fiber.Ctx, state store.RenderState, notice string) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{State: state, Notice: notice}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render widget")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
