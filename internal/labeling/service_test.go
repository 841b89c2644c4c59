package labeling_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
)

func TestService_AssignLabel(t *testing.T) {
	cat := category.Category{ID: 7, Level1: "Fixe Ausgaben", Level2: "Wohnen Deutschland", Level3: "Miete"}
	s := sig("Hausverwaltung", "miete")

	tests := []struct {
		name       string
		setupMocks func(repo *labeling.MockRepository)
		wantErr    bool
	}{
		{
			name: "Success",
			setupMocks: func(repo *labeling.MockRepository) {
				repo.EXPECT().InsertLabel(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l *labeling.Label) error {
						assert.Equal(t, s, l.Signature)
						assert.Equal(t, cat, l.Category)
						assert.NotEqual(t, uuid.Nil, l.ID)
						assert.False(t, l.CreatedAt.IsZero())

						return nil
					})
			},
		},
		{
			name: "InsertError",
			setupMocks: func(repo *labeling.MockRepository) {
				repo.EXPECT().InsertLabel(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := labeling.NewMockRepository(ctrl)
			tt.setupMocks(repo)

			got, err := labeling.NewService(repo).AssignLabel(context.Background(), s, cat)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, cat.ID, got.Category.ID)
		})
	}
}

func TestService_AssignLabel_SameSignatureTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := labeling.NewMockRepository(ctrl)

	var ids []uuid.UUID

	repo.EXPECT().InsertLabel(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, l *labeling.Label) error {
			ids = append(ids, l.ID)
			return nil
		})

	svc := labeling.NewService(repo)
	s := sig("Rewe", "einkauf")

	_, err := svc.AssignLabel(context.Background(), s, category.Category{ID: 1})
	require.NoError(t, err)

	_, err = svc.AssignLabel(context.Background(), s, category.Category{ID: 2})
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}
