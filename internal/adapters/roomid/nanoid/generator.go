package nanoid

import (
	"fmt"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/bnema/nirogya-cli/internal/ports"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the URL-safe nanoid alphabet (64 symbols).
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_-"

type Generator struct {
	length int
}

var _ ports.RoomIDGenerator = (*Generator)(nil)

func NewGenerator(length int) (*Generator, error) {
	if length < domain.MinRoomIDLength {
		return nil, fmt.Errorf("room id length must be at least %d, got %d", domain.MinRoomIDLength, length)
	}

	return &Generator{length: length}, nil
}

func (g *Generator) Generate() (domain.RoomID, error) {
	id, err := gonanoid.Generate(Alphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}

	return domain.RoomID(id), nil
}
