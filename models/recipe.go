package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Recipe is a read-only document of the recipes collection.
// The service never writes recipes; they are owned by the content pipeline.
type Recipe struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
	Steps       []string           `bson:"steps" json:"steps"`
	Ingredients []Ingredient       `bson:"ingredients" json:"ingredients"`
}

// Ingredient is a single line of a recipe's ingredient list.
// Name identifies the ingredient inside progress tracking.
type Ingredient struct {
	Name     string `bson:"name" json:"name"`
	Quantity string `bson:"quantity" json:"quantity"`
}

// IngredientNames returns the ingredient names in recipe order.
func (r Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ingredient := range r.Ingredients {
		names = append(names, ingredient.Name)
	}
	return names
}
