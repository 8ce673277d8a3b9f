package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<html>
  <head><title>Notes API - Upload</title></head>
  <body>
    <h3>Create a Note (with optional image/pdf)</h3>
    <form action="/notes" enctype="multipart/form-data" method="post">
      <label>Title: <input type="text" name="title" required/></label><br/><br/>
      <label>Content: <br/><textarea name="content" rows="6" cols="60"></textarea></label><br/><br/>
      <label>File: <input type="file" name="file" /></label><br/><br/>
      <button type="submit">Create Note</button>
    </form>
  </body>
</html>
`

// Home 浏览器测试页
type Home struct{}

func (h *Home) RegisterRouter(r gin.IRouter) {
	r.GET("/", h.Index)
}

func (h *Home) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
