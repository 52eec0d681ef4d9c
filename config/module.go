package config

import (
	"os"

	"chaindict/lib/logger"
	"chaindict/lib/utils"

	"go.uber.org/fx"
)

const (
	EnvConfigFile = "DICT_CONFIG"
	EnvLogLevel   = "DICT_LOG_LEVEL"
)

// provider 从 DICT_CONFIG 指定的文件读取配置，未设置时使用默认值；
// DICT_LOG_LEVEL 优先于文件中的 log-level
func provider() (*DictProperties, error) {
	p := Defaults()
	if filename := os.Getenv(EnvConfigFile); filename != "" {
		loaded, err := LoadProperties(filename)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	p.LogLevel = utils.EmptyOrElse(os.Getenv(EnvLogLevel), p.LogLevel)
	logger.SetLevel(p.LogLevel)
	return p, nil
}

var Module = fx.Module("config", fx.Provide(provider))
