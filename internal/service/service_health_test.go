package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/mock"
	"github.com/MKhiriev/recipe-tracker/internal/store"
	"github.com/MKhiriev/recipe-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthService_Check(t *testing.T) {
	down := errors.New("connection refused")

	tests := []struct {
		name          string
		relationalErr error
		documentsErr  error
		want          models.HealthResponse
	}{
		{
			name: "both up",
			want: models.HealthResponse{Status: "ok", Relational: "up", Documents: "up", Version: "1.2.3"},
		},
		{
			name:          "relational down",
			relationalErr: down,
			want:          models.HealthResponse{Status: "unavailable", Relational: "down", Documents: "up", Version: "1.2.3"},
		},
		{
			name:         "documents down",
			documentsErr: down,
			want:         models.HealthResponse{Status: "unavailable", Relational: "up", Documents: "down", Version: "1.2.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			relational := mock.NewMockPinger(ctrl)
			documents := mock.NewMockPinger(ctrl)
			relational.EXPECT().Ping(gomock.Any()).Return(tt.relationalErr)
			documents.EXPECT().Ping(gomock.Any()).Return(tt.documentsErr)

			svc := NewHealthService(&store.Storages{Relational: relational, Documents: documents}, config.App{Version: "1.2.3"}, logger.Nop())

			got := svc.Check(context.Background())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.relationalErr == nil && tt.documentsErr == nil, got.Healthy())
		})
	}
}

func TestRecipeService_ListRecipes(t *testing.T) {
	ctrl := gomock.NewController(t)
	recipes := mock.NewMockRecipeRepository(ctrl)
	svc := NewRecipeService(&store.Storages{RecipeRepository: recipes}, logger.Nop())

	recipes.EXPECT().ListRecipes(gomock.Any()).Return([]models.Recipe{{Title: "Pancakes"}}, nil)
	got, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got[0].Title)

	recipes.EXPECT().ListRecipes(gomock.Any()).Return(nil, store.ErrQueryingDocuments)
	_, err = svc.ListRecipes(context.Background())
	assert.ErrorIs(t, err, store.ErrQueryingDocuments)
}

func TestNewServices_WrapsWithValidation(t *testing.T) {
	services := NewServices(&store.Storages{}, nil, config.App{}, logger.Nop())

	assert.IsType(t, &AuthValidationService{}, services.AuthService)
	assert.IsType(t, &ProgressValidationService{}, services.ProgressService)
	require.NotNil(t, services.RecipeService)
	require.NotNil(t, services.HealthService)
}
