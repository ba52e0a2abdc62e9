package diagnosis

import (
	"fmt"

	"github.com/yungbote/agrinet/internal/config"
	"github.com/yungbote/agrinet/internal/diagnosis/engine"
	"github.com/yungbote/agrinet/internal/diagnosis/engine/mock"
	"github.com/yungbote/agrinet/internal/diagnosis/engine/tfserving"
)

// NewEngine constructs the engine named by cfg.Engine.
func NewEngine(cfg config.ModelConfig) (engine.Engine, error) {
	name, err := config.NormalizeEngine(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("model engine: %w", err)
	}
	if name == config.EngineTFServing {
		return tfserving.New(cfg)
	}
	return mock.New(NumClasses()), nil
}
