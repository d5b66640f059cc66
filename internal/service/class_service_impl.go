package service

import (
	"context"

	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/repository"
)

type classService struct {
	classes  repository.ClassRepo
	students repository.StudentRepo
}

func NewClassService(classes repository.ClassRepo, students repository.StudentRepo) ClassService {
	return &classService{classes: classes, students: students}
}

func (s *classService) List(ctx context.Context) ([]*domain.Class, error) {
	return s.classes.List(ctx)
}

func (s *classService) Roster(ctx context.Context, classID string) ([]*domain.Student, error) {
	if _, err := (unitRepos{classes: s.classes}).loadClass(ctx, classID); err != nil {
		return nil, err
	}
	return s.students.ListByClass(ctx, classID)
}
