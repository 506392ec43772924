package ports

import "github.com/bnema/nirogya-cli/internal/domain"

type RoomIDGenerator interface {
	Generate() (domain.RoomID, error)
}
