package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Difficulty string

const (
	EasyDifficulty      Difficulty = "easy"
	DifficultDifficulty Difficulty = "difficult"
	HardDifficulty      Difficulty = "hard"
)

// Variant selects the placement rule.
type Variant string

const (
	ClassicVariant Variant = "classic"
	BoundedVariant Variant = "bounded"
)

func ParseDifficulty(value string) (Difficulty, error) {
	switch difficulty := Difficulty(value); difficulty {
	case EasyDifficulty, DifficultDifficulty, HardDifficulty:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

// ParseVariant - an empty value means classic.
func ParseVariant(value string) (Variant, error) {
	switch variant := Variant(value); variant {
	case "":
		return ClassicVariant, nil
	case ClassicVariant, BoundedVariant:
		return variant, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, value)
	}
}

func (that Variant) IsBounded() bool {
	return that == BoundedVariant
}
