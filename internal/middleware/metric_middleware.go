package middleware

import (
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// SetupPrometheus exposes request metrics on /metrics under the
// workflowhq subsystem.
func SetupPrometheus(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("workflowhq")

	p.Use(r)
}
