package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/easeaico/affect-engine/internal/types"
)

// CharacterRepo provides access to the characters table.
type CharacterRepo struct {
	db *gorm.DB
}

// NewCharacterRepo creates a new CharacterRepo.
func NewCharacterRepo(db *gorm.DB) *CharacterRepo {
	return &CharacterRepo{db: db}
}

// GetByID fetches a character by ID.
func (r *CharacterRepo) GetByID(ctx context.Context, id int) (*types.Character, error) {
	var c types.Character
	if err := r.db.WithContext(ctx).Table("characters").First(&c, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get character by id: %w", err)
	}
	return &c, nil
}

// GetDefault fetches the first available character.
func (r *CharacterRepo) GetDefault(ctx context.Context) (*types.Character, error) {
	var c types.Character
	if err := r.db.WithContext(ctx).Table("characters").Order("id ASC").First(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to get default character: %w", err)
	}
	return &c, nil
}

// UpdateAffect writes a character's affect snapshot back to its row.
func (r *CharacterRepo) UpdateAffect(ctx context.Context, id int, record types.AffectRecord) error {
	activations, err := json.Marshal(record.Activations)
	if err != nil {
		return fmt.Errorf("failed to encode activations: %w", err)
	}

	updates := map[string]any{
		"valence":           record.Valence,
		"arousal":           record.Arousal,
		"dominance":         record.Dominance,
		"activations":       string(activations),
		"affect_updated_at": record.UpdatedAt,
		"updated_at":        time.Now(),
	}
	if err := r.db.WithContext(ctx).Table("characters").Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update affect: %w", err)
	}
	return nil
}
