//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

type swaggerInfo struct{ doc string }

func (s *swaggerInfo) ReadDoc() string { return s.doc }

func init() {
	swag.Register(swag.Name, &swaggerInfo{doc: `{
  "swagger": "2.0",
  "info": {
    "title": "notegend API",
    "description": "Transcription and study-material generation service",
    "version": "0.1.0"
  },
  "basePath": "/"
}`})
}

// MountSwagger serves the Swagger UI at /swagger/ when built with the
// swagger tag.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
