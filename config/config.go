package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "MAPBENCH_CONFIG"
	EnvLogLevel   = "MAPBENCH_LOG_LEVEL"

	HashBuiltin = "builtin"
	HashSwiss   = "swiss"

	ReportText  = "text"
	ReportTable = "table"
)

var (
	ErrInvalidHash   = errors.New("invalid hash implementation")
	ErrInvalidReport = errors.New("invalid report format")
	ErrInvalidDegree = errors.New("btree degree must be at least 2")
)

type Config struct {
	LogLevel    string `yaml:"log_level"`    // debug, info, warn, error
	Hash        string `yaml:"hash"`         // hash_map的实现: builtin 或 swiss
	BTreeDegree int    `yaml:"btree_degree"` // ordered_map的B树的度
	Report      string `yaml:"report"`       // 结果输出格式: text 或 table
	Verify      bool   `yaml:"verify"`       // 每次测试后校验容器内容与数据集一致
}

func Default() Config {
	return Config{
		LogLevel:    "warn",
		Hash:        HashBuiltin,
		BTreeDegree: 32,
		Report:      ReportText,
	}
}

// Load 在默认配置的基础上依次应用path指定的yaml文件和环境变量
// path为空时跳过文件，文件无效时使用默认配置，环境变量仍然生效
func Load(path string) (Config, error) {
	cfg := Default()
	var err error
	if path != "" {
		err = decode(path, &cfg)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		cfg = Default()
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg, err
}

func decode(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	return errors.Wrapf(yaml.Unmarshal(b, cfg), "decode config %s", path)
}

// FromEnv 使用环境变量MAPBENCH_CONFIG指定的文件加载配置
func FromEnv() (Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

func (c Config) Validate() error {
	switch c.Hash {
	case HashBuiltin, HashSwiss:
	default:
		return errors.Wrapf(ErrInvalidHash, "%q", c.Hash)
	}
	switch c.Report {
	case ReportText, ReportTable:
	default:
		return errors.Wrapf(ErrInvalidReport, "%q", c.Report)
	}
	if c.BTreeDegree < 2 {
		return errors.Wrapf(ErrInvalidDegree, "got %d", c.BTreeDegree)
	}
	return nil
}
