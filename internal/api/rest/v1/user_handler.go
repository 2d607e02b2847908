package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Me returns the signed-in user
func Me(ctx *gin.Context) {
	user := CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}
	ctx.JSON(http.StatusOK, NewUserResponse(user))
}
