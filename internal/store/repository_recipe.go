package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// recipeRepository reads recipes from a MongoDB collection.
type recipeRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewRecipeRepository(collection *mongo.Collection, logger *logger.Logger) RecipeRepository {
	logger.Debug().Str("collection", collection.Name()).Msg("creating recipe repository")
	return &recipeRepository{
		collection: collection,
		logger:     logger,
	}
}

// ListRecipes returns every recipe document.
func (r *recipeRepository) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return r.find(ctx, "*recipeRepository.ListRecipes", bson.M{})
}

// FindRecipe fetches one recipe by its hex ObjectID.
func (r *recipeRepository) FindRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return models.Recipe{}, ErrRecipeNotFound
	}

	var recipe models.Recipe
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.FindRecipe").Str("recipe_id", recipeID).Msg("error finding recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrQueryingDocuments, err)
	}

	return recipe, nil
}

// FindRecipesByIDs loads the recipes for ids with a single $in query and
// returns them in the order of ids.
func (r *recipeRepository) FindRecipesByIDs(ctx context.Context, recipeIDs []string) ([]models.Recipe, error) {
	oids := make([]primitive.ObjectID, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []models.Recipe{}, nil
	}

	found, err := r.find(ctx, "*recipeRepository.FindRecipesByIDs", bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Recipe, len(found))
	for _, recipe := range found {
		byID[recipe.ID] = recipe
	}

	ordered := make([]models.Recipe, 0, len(found))
	for _, oid := range oids {
		if recipe, ok := byID[oid]; ok {
			ordered = append(ordered, recipe)
			delete(byID, oid)
		}
	}
	return ordered, nil
}

func (r *recipeRepository) find(ctx context.Context, funcName string, filter bson.M) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying recipes")
		return nil, fmt.Errorf("%w: %w", ErrQueryingDocuments, err)
	}
	defer cur.Close(ctx)

	recipes := make([]models.Recipe, 0)
	for cur.Next(ctx) {
		var recipe models.Recipe
		if err := cur.Decode(&recipe); err != nil {
			log.Err(err).Str("func", funcName).Msg("error decoding recipe")
			return nil, fmt.Errorf("%w: %w", ErrQueryingDocuments, err)
		}
		recipes = append(recipes, recipe)
	}

	if err := cur.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating recipes")
		return nil, fmt.Errorf("%w: %w", ErrQueryingDocuments, err)
	}

	return recipes, nil
}
