package ports

import (
	"context"

	"github.com/forPelevin/chapsub/internal/types"
)

// Retriever fetches video metadata and downloads one subtitle file into
// stagingDir.
type Retriever interface {
	Retrieve(ctx context.Context, ref, stagingDir string) (types.VideoInfo, error)
}

type DocumentWriter interface {
	WritePDF(path string, doc types.Document) error
}
