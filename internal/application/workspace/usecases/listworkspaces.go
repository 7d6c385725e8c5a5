package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/workspace/dto"
	"github.com/rawad-inc/rawad/internal/domain/workspace"
)

const defaultPageSize = 20

type ListWorkSpacesQuery struct {
	Limit  int
	Offset int
}

type ListWorkSpacesResult struct {
	WorkSpaces []dto.WorkSpaceDTO
	Total      int64
}

type ListWorkSpacesUseCase struct {
	workspaceRepo workspace.Repository
}

func NewListWorkSpacesUseCase(workspaceRepo workspace.Repository) *ListWorkSpacesUseCase {
	return &ListWorkSpacesUseCase{workspaceRepo: workspaceRepo}
}

func (uc *ListWorkSpacesUseCase) Execute(ctx context.Context, query ListWorkSpacesQuery) (*ListWorkSpacesResult, error) {
	if query.Limit <= 0 {
		query.Limit = defaultPageSize
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	workspaces, total, err := uc.workspaceRepo.List(ctx, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.WorkSpaceDTO, 0, len(workspaces))
	for _, ws := range workspaces {
		items = append(items, *toWorkSpaceDTO(ws))
	}

	return &ListWorkSpacesResult{WorkSpaces: items, Total: total}, nil
}
