package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/apperrors"
)

// respondError renders a service error at the HTTP edge: not-found errors become
// a 404 with the human-readable message, everything else is logged and becomes a
// generic 500 so store detail never leaks to the caller.
func respondError(ctx *gin.Context, err error) {
	if nf := apperrors.AsNotFound(err); nf != nil {
		ctx.String(http.StatusNotFound, nf.Error())
		return
	}
	log.Printf("store error: %v", err)
	ctx.String(http.StatusInternalServerError, "Server Error")
}
