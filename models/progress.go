package models

import "time"

// ProgressStatus is the lifecycle state of a user's attempt at a recipe.
// The only transition is in_progress -> completed.
type ProgressStatus string

const (
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// Progress is the header row tracking one user's attempt at one recipe.
// There is at most one header per (UserID, RecipeID).
type Progress struct {
	ID int64 `json:"id"`

	UserID int64 `json:"user_id"`

	// RecipeID is the hex form of the recipe document's ObjectID.
	// It is not checked against the document store on write.
	RecipeID string `json:"recipe_id"`

	Status ProgressStatus `json:"status"`

	StartedAt time.Time `json:"started_at"`

	// CompletedAt is set when Status becomes completed.
	CompletedAt *time.Time `json:"completed_at"`
}

// TableName returns the name of the database table
// associated with the Progress model.
func (p Progress) TableName() string {
	return "recipe_progress"
}

// ProgressKey identifies the progress of one user on one recipe.
type ProgressKey struct {
	UserID   int64
	RecipeID string
}

// IngredientProgress is the completion flag of a single ingredient
// under a progress header, keyed by (ProgressID, IngredientName).
type IngredientProgress struct {
	ProgressID     int64  `json:"progress_id"`
	IngredientName string `json:"ingredient_name"`
	IsDone         bool   `json:"is_done"`
}

// TableName returns the name of the database table
// associated with the IngredientProgress model.
func (i IngredientProgress) TableName() string {
	return "ingredient_progress"
}

// IngredientState is a recipe ingredient annotated with its completion flag.
type IngredientState struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	IsDone   bool   `json:"isDone"`
}

// StartProgressResult is returned by starting (or resuming) a recipe.
type StartProgressResult struct {
	ProgressID  int64             `json:"progressId"`
	Ingredients []IngredientState `json:"ingredients"`
}

// ProgressView merges a progress header with the recipe content it refers to.
type ProgressView struct {
	RecipeID    string            `json:"recipe_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	Steps       []string          `json:"steps"`
	Status      ProgressStatus    `json:"status"`
	CompletedAt *time.Time        `json:"completed_at"`
	Ingredients []IngredientState `json:"ingredients"`
}

// UserProfile partitions the recipes a user has started by status.
type UserProfile struct {
	CompletedRecipes  []Recipe `json:"completedRecipes"`
	UnfinishedRecipes []Recipe `json:"unfinishedRecipes"`
}

// MergeIngredientStates annotates recipe ingredients with the stored flags.
// The result follows recipe order; ingredients without a stored row are
// reported as not done.
func MergeIngredientStates(ingredients []Ingredient, rows []IngredientProgress) []IngredientState {
	done := make(map[string]bool, len(rows))
	for _, row := range rows {
		done[row.IngredientName] = row.IsDone
	}

	states := make([]IngredientState, 0, len(ingredients))
	for _, ingredient := range ingredients {
		states = append(states, IngredientState{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			IsDone:   done[ingredient.Name],
		})
	}
	return states
}
