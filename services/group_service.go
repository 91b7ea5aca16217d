package services

import (
	"fmt"
	"group-maker/domain"
	"group-maker/errors"
	"group-maker/render"
	"group-maker/validation"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type IGroupService interface {
	ParseNames(raw string) (domain.NameList, error)
	ParseGroupCount(names domain.NameList, raw string) (int, error)
	SuggestGroupCount(names domain.NameList) int
	MakeGroups(names domain.NameList, count int) (domain.GroupSet, error)
	Publish(w io.Writer, groups domain.GroupSet) error
}

type GroupService struct {
	log       *slog.Logger
	source    domain.Source
	separator string
	renderer  render.Renderer
}

func NewGroupService(log *slog.Logger, source domain.Source, separator string, renderer render.Renderer) IGroupService {
	return &GroupService{
		log:       log,
		source:    source,
		separator: separator,
		renderer:  renderer,
	}
}

func (s *GroupService) ParseNames(raw string) (domain.NameList, error) {
	names := domain.ParseNames(raw, s.separator)
	if err := validation.ValidateNames(names); err != nil {
		s.log.Debug("Names rejected", "count", len(names), "error", err)
		return nil, err
	}
	return names, nil
}

func (s *GroupService) ParseGroupCount(names domain.NameList, raw string) (int, error) {
	count, err := validation.ParseGroupCount(raw)
	if err != nil {
		s.log.Debug("Group count rejected", "raw", raw, "error", err)
		return 0, err
	}
	if err = validation.ValidateRequest(validation.GroupRequest{Names: names, Groups: count}); err != nil {
		s.log.Debug("Group count rejected", "count", count, "names", len(names), "error", err)
		return 0, err
	}
	return count, nil
}

func (s *GroupService) SuggestGroupCount(names domain.NameList) int {
	return domain.SuggestGroupCount(len(names))
}

// MakeGroups shuffles names and deals them round-robin into count groups.
// Nothing is returned unless the whole GroupSet could be built.
func (s *GroupService) MakeGroups(names domain.NameList, count int) (domain.GroupSet, error) {
	if err := validation.ValidateRequest(validation.GroupRequest{Names: names, Groups: count}); err != nil {
		return nil, err
	}

	runID := uuid.New()
	log := s.log.With("run_id", runID.String())
	log.Info("Making groups", "names", len(names), "groups", count)
	log.Debug("Input names", "names", names)

	shuffled := domain.Shuffle(s.source, names)
	log.Debug("Names shuffled", "order", shuffled)

	groups, err := domain.MakeGroups(shuffled, count)
	if err != nil {
		log.Error("Grouping failed", "error", err)
		return nil, fmt.Errorf("%w: %v", errors.ErrUnexpected, err)
	}

	log.Info("Groups ready", "sizes", groups.Sizes())
	return groups, nil
}

func (s *GroupService) Publish(w io.Writer, groups domain.GroupSet) error {
	if err := s.renderer.Render(w, groups); err != nil {
		s.log.Error("Rendering failed", "error", err)
		return fmt.Errorf("%w: rendering failed: %v", errors.ErrUnexpected, err)
	}
	return nil
}
