package controllers

import (
	"net/http"

	"github.com/alex-b96/budgeting-app/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the routes for the API root.
func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetRoot)
	r.OPTIONS("", co.OptionsRoot)
}

// GetRoot answers with a static message so that clients can check that the API is reachable.
//
//	@Summary		API root
//	@Description	Returns a static greeting
//	@Tags			General
//	@Produce		json
//	@Success		200	{object}	MessageResponse
//	@Router			/ [get]
func (co Controller) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{
		Message: "Hello from FastAPI!",
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func (co Controller) OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
