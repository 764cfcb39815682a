package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"planner-go/internal/models"
	"planner-go/internal/repository"
)

// ErrInvalidNoteScope 笔记范围与类别不一致
var ErrInvalidNoteScope = errors.New("无效的笔记范围")

// NoteService 笔记服务
type NoteService struct {
	noteRepo *repository.NoteRepository
}

// NewNoteService 创建笔记服务
func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
	}
}

// Content 获取指定范围的笔记内容
// 笔记不存在按空内容处理，不算错误
func (s *NoteService) Content(userID uint, scope models.NoteScope) (string, error) {
	note, err := s.noteRepo.GetByScope(userID, scope)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("获取笔记失败: %w", err)
	}
	return note.Content, nil
}

// Save 保存指定范围的笔记
// 同一范围重复保存是幂等的，最后一次内容胜出
func (s *NoteService) Save(userID uint, scope models.NoteScope, content string) error {
	if !scope.Valid() {
		return ErrInvalidNoteScope
	}

	if err := s.noteRepo.Upsert(userID, scope, content); err != nil {
		return fmt.Errorf("保存笔记失败: %w", err)
	}
	return nil
}
