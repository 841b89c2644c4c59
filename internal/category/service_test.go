package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
)

func TestService_SeedIfEmpty(t *testing.T) {
	tax := &category.Taxonomy{Groups: []category.Group{
		{Name: "Einnahmen", Subgroups: []category.Subgroup{{Name: "Hauptjob", Leaves: []string{"Gehalt", "Bonuse"}}}},
	}}

	tests := []struct {
		name       string
		setupMocks func(repo *category.MockRepository)
		wantSeeded bool
		wantErr    bool
	}{
		{
			name: "EmptyCatalog",
			setupMocks: func(repo *category.MockRepository) {
				repo.EXPECT().CountDistinctIDs(gomock.Any()).Return(0, nil)
				repo.EXPECT().ReplaceCategories(gomock.Any(), []category.Category{
					{ID: 0, Level1: "Einnahmen", Level2: "Hauptjob", Level3: "Gehalt"},
					{ID: 1, Level1: "Einnahmen", Level2: "Hauptjob", Level3: "Bonuse"},
				}).Return(nil)
			},
			wantSeeded: true,
		},
		{
			name: "ExistingCatalogUntouched",
			setupMocks: func(repo *category.MockRepository) {
				repo.EXPECT().CountDistinctIDs(gomock.Any()).Return(66, nil)
			},
		},
		{
			name: "CountError",
			setupMocks: func(repo *category.MockRepository) {
				repo.EXPECT().CountDistinctIDs(gomock.Any()).Return(0, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "WriteError",
			setupMocks: func(repo *category.MockRepository) {
				repo.EXPECT().CountDistinctIDs(gomock.Any()).Return(0, nil)
				repo.EXPECT().ReplaceCategories(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := category.NewMockRepository(ctrl)
			tt.setupMocks(repo)

			svc := category.NewService(repo)
			seeded, err := svc.SeedIfEmpty(context.Background(), tax)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSeeded, seeded)
		})
	}
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().GetCategory(gomock.Any(), 999).Return(nil, category.ErrNotFound)

	_, err := category.NewService(repo).Get(context.Background(), 999)
	assert.ErrorIs(t, err, category.ErrNotFound)
}
