package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"planner-go/internal/dto"
	"planner-go/internal/middleware"
	"planner-go/internal/service"
)

// NoteHandler 笔记处理器
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler 创建笔记处理器
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// SaveNote 保存笔记（原子upsert）
// 同一范围重复提交只会覆盖内容，不会产生重复行
func (h *NoteHandler) SaveNote(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var form dto.SaveNoteForm
	if err := c.ShouldBind(&form); err != nil {
		redirectBack(c)
		return
	}

	if err := h.noteService.Save(userID, form.Scope(), form.Content); err != nil {
		if errors.Is(err, service.ErrInvalidNoteScope) {
			redirectBack(c)
			return
		}
		serverError(c)
		return
	}

	redirectBack(c)
}
