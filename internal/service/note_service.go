package service

import (
	"context"
	"fmt"
	"strings"

	"planner/internal/auth"
	"planner/internal/model"
	"planner/internal/repository"
)

type NoteService struct {
	guard *Guard
	notes *repository.NoteRepository
}

func NewNoteService(guard *Guard, notes *repository.NoteRepository) *NoteService {
	return &NoteService{guard: guard, notes: notes}
}

func (s *NoteService) AddNote(ctx context.Context, eventID uint, owner auth.Identity, text string) (*model.EventNote, error) {
	event, err := s.guard.LoadOwnedEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("note", "this field is required")
	}

	note := &model.EventNote{EventID: event.ID, Note: text}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}
