package dataset

import (
	"fmt"
	"os"

	"github.com/mager/songstory/config"
	"github.com/mager/songstory/songs"
	"go.uber.org/zap"
)

// ProvideDataset loads the songs CSV named by the config.
func ProvideDataset(logger *zap.SugaredLogger, cfg config.Config) (*songs.Dataset, error) {
	f, err := os.Open(cfg.DatasetPath)
	if err != nil {
		logger.Errorw("Failed to open dataset", "path", cfg.DatasetPath, "error", err)
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	ds, err := songs.Load(f)
	if err != nil {
		logger.Errorw("Failed to load dataset", "path", cfg.DatasetPath, "error", err)
		return nil, err
	}

	logger.Infow("Loaded dataset", "path", cfg.DatasetPath, "songs", ds.Len(), "genres", len(ds.Genres()))
	return ds, nil
}

var Options = ProvideDataset
