package handler

import (
	"Notely/config"
	"Notely/middleware"
	"Notely/pkg/context"
	"Notely/pkg/response"
	"Notely/service"
	"Notely/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Note struct {
	Config      *config.Config
	NoteService service.INoteService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	g := r.Group("/notes")
	if n.Config.Jwt.Enabled {
		g.Use(middleware.Auth([]byte(n.Config.Jwt.Secret)))
	}
	g.POST("", context.Wrap(n.Create))
	g.GET("", context.Wrap(n.List))
	g.GET("/:id", context.Wrap(n.Get))
	g.DELETE("/:id", context.Wrap(n.Delete))
}

// userID 单用户模式下恒为 0
func (n *Note) userID(c *gin.Context) (int64, error) {
	if !n.Config.Jwt.Enabled {
		return 0, nil
	}
	uid, err := context.GetUserID(c)
	if err != nil {
		return 0, response.NewError(http.StatusUnauthorized, "Not authenticated")
	}
	return uid, nil
}

// Create 创建笔记，multipart 表单：title 必填、content 和 file 可选
func (n *Note) Create(c *gin.Context) error {
	userID, err := n.userID(c)
	if err != nil {
		return err
	}

	req := types.CreateNoteRequest{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	}

	file, err := c.FormFile("file")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		file = nil
	}

	note, err := n.NoteService.CreateNote(c.Request.Context(), userID, &req, file)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, note)
	return nil
}

func (n *Note) List(c *gin.Context) error {
	userID, err := n.userID(c)
	if err != nil {
		return err
	}

	notes, err := n.NoteService.ListNotes(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, notes)
	return nil
}

func (n *Note) Get(c *gin.Context) error {
	userID, err := n.userID(c)
	if err != nil {
		return err
	}

	noteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusNotFound, "Note not found")
	}

	note, err := n.NoteService.GetNote(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, note)
	return nil
}

func (n *Note) Delete(c *gin.Context) error {
	userID, err := n.userID(c)
	if err != nil {
		return err
	}

	noteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusNotFound, "Note not found")
	}

	if err := n.NoteService.DeleteNote(c.Request.Context(), userID, noteID); err != nil {
		return err
	}

	c.JSON(http.StatusOK, types.DeleteNoteResponse{Detail: "Note deleted"})
	return nil
}
