package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// redirectBack 重定向回来源页
func redirectBack(c *gin.Context) {
	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}

// serverError 持久层错误直接按服务器故障返回
func serverError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "حدث خطأ في الخادم")
}
