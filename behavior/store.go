package behavior

import (
	"github.com/plus3/mono/scene"
	"go.uber.org/zap"
)

// LightStore applies the records saved at Path to the world's lights on its
// first frame, after every light created alongside it has started, and saves
// the lights back when destroyed. Create it before the lights so World.Clear
// destroys it while they are still registered.
type LightStore struct {
	scene.BaseBehavior
	Path string

	loaded  bool
	applied int
}

func (s *LightStore) RealUpdate(*scene.Frame) {
	if s.loaded {
		return
	}
	s.loaded = true

	logger := s.World().Logger().With(zap.String("path", s.Path))
	records, err := LoadLightsFile(s.Path)
	if err != nil {
		logger.Warn("light settings not loaded", zap.Error(err))
		return
	}
	s.applied = ApplyRecords(s.World().Lights(), records)
	logger.Info("light settings loaded", zap.Int("records", len(records)), zap.Int("applied", s.applied))
}

// Applied returns how many records the first frame applied.
func (s *LightStore) Applied() int {
	return s.applied
}

// Save writes the world's lights to Path.
func (s *LightStore) Save() error {
	return SaveLightsFile(s.Path, s.World().Lights())
}

func (s *LightStore) Destroy() {
	if !s.loaded {
		return
	}
	if err := s.Save(); err != nil {
		s.World().Logger().Warn("light settings not saved", zap.String("path", s.Path), zap.Error(err))
	}
}
